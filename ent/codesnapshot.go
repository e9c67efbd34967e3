// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/codesnapshot"
)

// CodeSnapshot is the model entity for the CodeSnapshot schema.
type CodeSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Session the event was recorded in
	SessionID string `json:"session_id,omitempty"`
	// Recorded timestamp string, preserved exactly
	Timestamp string `json:"timestamp,omitempty"`
	// Task the learner was editing
	TaskIndex int `json:"task_index,omitempty"`
	// Method the snapshot belongs to
	MethodID string `json:"method_id,omitempty"`
	// Full editor contents
	CodeContent  string `json:"code_content,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CodeSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case codesnapshot.FieldID, codesnapshot.FieldTaskIndex:
			values[i] = new(sql.NullInt64)
		case codesnapshot.FieldSessionID, codesnapshot.FieldTimestamp, codesnapshot.FieldMethodID, codesnapshot.FieldCodeContent:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CodeSnapshot fields.
func (_m *CodeSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case codesnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case codesnapshot.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case codesnapshot.FieldTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.String
			}
		case codesnapshot.FieldTaskIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_index", values[i])
			} else if value.Valid {
				_m.TaskIndex = int(value.Int64)
			}
		case codesnapshot.FieldMethodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method_id", values[i])
			} else if value.Valid {
				_m.MethodID = value.String
			}
		case codesnapshot.FieldCodeContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code_content", values[i])
			} else if value.Valid {
				_m.CodeContent = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CodeSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *CodeSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CodeSnapshot.
// Note that you need to call CodeSnapshot.Unwrap() before calling this method if this CodeSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CodeSnapshot) Update() *CodeSnapshotUpdateOne {
	return NewCodeSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CodeSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CodeSnapshot) Unwrap() *CodeSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CodeSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CodeSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("CodeSnapshot(")
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
	builder.WriteString("method_id=")
	builder.WriteString(_m.MethodID)
	builder.WriteString(", ")
	builder.WriteString("code_content=")
	builder.WriteString(_m.CodeContent)
	builder.WriteByte(')')
	return builder.String()
}

// CodeSnapshots is a parsable slice of CodeSnapshot.
type CodeSnapshots []*CodeSnapshot
