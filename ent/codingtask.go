// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/codingtask"
	"github.com/abhisek/replayz/ent/schema"
)

// CodingTask is the model entity for the CodingTask schema.
type CodingTask struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// Position within the lesson, matches replay task indexes
	TaskOrder int `json:"task_order,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Method the learner implements
	MethodName string `json:"method_name,omitempty"`
	// Template shown before the first code snapshot
	StarterCode string `json:"starter_code,omitempty"`
	// Examples holds the value of the "examples" field.
	Examples     []schema.TaskExample `json:"examples,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CodingTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case codingtask.FieldExamples:
			values[i] = new([]byte)
		case codingtask.FieldID, codingtask.FieldTaskOrder:
			values[i] = new(sql.NullInt64)
		case codingtask.FieldLessonID, codingtask.FieldTitle, codingtask.FieldDifficulty, codingtask.FieldDescription, codingtask.FieldMethodName, codingtask.FieldStarterCode:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CodingTask fields.
func (_m *CodingTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case codingtask.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case codingtask.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case codingtask.FieldTaskOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_order", values[i])
			} else if value.Valid {
				_m.TaskOrder = int(value.Int64)
			}
		case codingtask.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case codingtask.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case codingtask.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case codingtask.FieldMethodName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method_name", values[i])
			} else if value.Valid {
				_m.MethodName = value.String
			}
		case codingtask.FieldStarterCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field starter_code", values[i])
			} else if value.Valid {
				_m.StarterCode = value.String
			}
		case codingtask.FieldExamples:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field examples", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Examples); err != nil {
					return fmt.Errorf("unmarshal field examples: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CodingTask.
// This includes values selected through modifiers, order, etc.
func (_m *CodingTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CodingTask.
// Note that you need to call CodingTask.Unwrap() before calling this method if this CodingTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CodingTask) Update() *CodingTaskUpdateOne {
	return NewCodingTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CodingTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CodingTask) Unwrap() *CodingTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CodingTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CodingTask) String() string {
	var builder strings.Builder
	builder.WriteString("CodingTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("task_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskOrder))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("method_name=")
	builder.WriteString(_m.MethodName)
	builder.WriteString(", ")
	builder.WriteString("starter_code=")
	builder.WriteString(_m.StarterCode)
	builder.WriteString(", ")
	builder.WriteString("examples=")
	builder.WriteString(fmt.Sprintf("%v", _m.Examples))
	builder.WriteByte(')')
	return builder.String()
}

// CodingTasks is a parsable slice of CodingTask.
type CodingTasks []*CodingTask
