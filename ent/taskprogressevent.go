// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/taskprogressevent"
)

// TaskProgressEvent is the model entity for the TaskProgressEvent schema.
type TaskProgressEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Session the event was recorded in
	SessionID string `json:"session_id,omitempty"`
	// Recorded timestamp string, preserved exactly
	Timestamp string `json:"timestamp,omitempty"`
	// TaskIndex holds the value of the "task_index" field.
	TaskIndex int `json:"task_index,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// TestCasesPassed holds the value of the "test_cases_passed" field.
	TestCasesPassed int `json:"test_cases_passed,omitempty"`
	// TotalTestCases holds the value of the "total_test_cases" field.
	TotalTestCases int `json:"total_test_cases,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskProgressEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskprogressevent.FieldCompleted:
			values[i] = new(sql.NullBool)
		case taskprogressevent.FieldID, taskprogressevent.FieldTaskIndex, taskprogressevent.FieldAttempts, taskprogressevent.FieldTestCasesPassed, taskprogressevent.FieldTotalTestCases:
			values[i] = new(sql.NullInt64)
		case taskprogressevent.FieldSessionID, taskprogressevent.FieldTimestamp:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskProgressEvent fields.
func (_m *TaskProgressEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskprogressevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case taskprogressevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case taskprogressevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.String
			}
		case taskprogressevent.FieldTaskIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_index", values[i])
			} else if value.Valid {
				_m.TaskIndex = int(value.Int64)
			}
		case taskprogressevent.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case taskprogressevent.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case taskprogressevent.FieldTestCasesPassed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field test_cases_passed", values[i])
			} else if value.Valid {
				_m.TestCasesPassed = int(value.Int64)
			}
		case taskprogressevent.FieldTotalTestCases:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_test_cases", values[i])
			} else if value.Valid {
				_m.TotalTestCases = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskProgressEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TaskProgressEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TaskProgressEvent.
// Note that you need to call TaskProgressEvent.Unwrap() before calling this method if this TaskProgressEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskProgressEvent) Update() *TaskProgressEventUpdateOne {
	return NewTaskProgressEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskProgressEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskProgressEvent) Unwrap() *TaskProgressEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskProgressEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskProgressEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TaskProgressEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp)
	builder.WriteString(", ")
	builder.WriteString("task_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskIndex))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("test_cases_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestCasesPassed))
	builder.WriteString(", ")
	builder.WriteString("total_test_cases=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTestCases))
	builder.WriteByte(')')
	return builder.String()
}

// TaskProgressEvents is a parsable slice of TaskProgressEvent.
type TaskProgressEvents []*TaskProgressEvent
