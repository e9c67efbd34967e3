// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/navevent"
)

// NavEvent is the model entity for the NavEvent schema.
type NavEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Session the event was recorded in
	SessionID string `json:"session_id,omitempty"`
	// Recorded timestamp string, preserved exactly
	Timestamp string `json:"timestamp,omitempty"`
	// FromTaskIndex holds the value of the "from_task_index" field.
	FromTaskIndex int `json:"from_task_index,omitempty"`
	// ToTaskIndex holds the value of the "to_task_index" field.
	ToTaskIndex int `json:"to_task_index,omitempty"`
	// forward or backward
	NavigationDirection string `json:"navigation_direction,omitempty"`
	selectValues        sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NavEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case navevent.FieldID, navevent.FieldFromTaskIndex, navevent.FieldToTaskIndex:
			values[i] = new(sql.NullInt64)
		case navevent.FieldSessionID, navevent.FieldTimestamp, navevent.FieldNavigationDirection:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NavEvent fields.
func (_m *NavEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case navevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case navevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case navevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.String
			}
		case navevent.FieldFromTaskIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field from_task_index", values[i])
			} else if value.Valid {
				_m.FromTaskIndex = int(value.Int64)
			}
		case navevent.FieldToTaskIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field to_task_index", values[i])
			} else if value.Valid {
				_m.ToTaskIndex = int(value.Int64)
			}
		case navevent.FieldNavigationDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field navigation_direction", values[i])
			} else if value.Valid {
				_m.NavigationDirection = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NavEvent.
// This includes values selected through modifiers, order, etc.
func (_m *NavEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NavEvent.
// Note that you need to call NavEvent.Unwrap() before calling this method if this NavEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NavEvent) Update() *NavEventUpdateOne {
	return NewNavEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NavEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NavEvent) Unwrap() *NavEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NavEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NavEvent) String() string {
	var builder strings.Builder
	builder.WriteString("NavEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp)
	builder.WriteString(", ")
	builder.WriteString("from_task_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromTaskIndex))
	builder.WriteString(", ")
	builder.WriteString("to_task_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToTaskIndex))
	builder.WriteString(", ")
	builder.WriteString("navigation_direction=")
	builder.WriteString(_m.NavigationDirection)
	builder.WriteByte(')')
	return builder.String()
}

// NavEvents is a parsable slice of NavEvent.
type NavEvents []*NavEvent
