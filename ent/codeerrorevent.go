// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/codeerrorevent"
)

// CodeErrorEvent is the model entity for the CodeErrorEvent schema.
type CodeErrorEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Session the event was recorded in
	SessionID string `json:"session_id,omitempty"`
	// Recorded timestamp string, preserved exactly
	Timestamp string `json:"timestamp,omitempty"`
	// TaskIndex holds the value of the "task_index" field.
	TaskIndex int `json:"task_index,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CodeErrorEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case codeerrorevent.FieldID, codeerrorevent.FieldTaskIndex:
			values[i] = new(sql.NullInt64)
		case codeerrorevent.FieldSessionID, codeerrorevent.FieldTimestamp, codeerrorevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CodeErrorEvent fields.
func (_m *CodeErrorEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case codeerrorevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case codeerrorevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case codeerrorevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.String
			}
		case codeerrorevent.FieldTaskIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_index", values[i])
			} else if value.Valid {
				_m.TaskIndex = int(value.Int64)
			}
		case codeerrorevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CodeErrorEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CodeErrorEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CodeErrorEvent.
// Note that you need to call CodeErrorEvent.Unwrap() before calling this method if this CodeErrorEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CodeErrorEvent) Update() *CodeErrorEventUpdateOne {
	return NewCodeErrorEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CodeErrorEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CodeErrorEvent) Unwrap() *CodeErrorEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CodeErrorEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CodeErrorEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CodeErrorEvent(")
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
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// CodeErrorEvents is a parsable slice of CodeErrorEvent.
type CodeErrorEvents []*CodeErrorEvent
