// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/panelevent"
)

// PanelEvent is the model entity for the PanelEvent schema.
type PanelEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Session the event was recorded in
	SessionID string `json:"session_id,omitempty"`
	// Recorded timestamp string, preserved exactly
	Timestamp string `json:"timestamp,omitempty"`
	// CurrentTaskIndex holds the value of the "current_task_index" field.
	CurrentTaskIndex int `json:"current_task_index,omitempty"`
	// open or close
	InteractionType string `json:"interaction_type,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PanelEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case panelevent.FieldID, panelevent.FieldCurrentTaskIndex:
			values[i] = new(sql.NullInt64)
		case panelevent.FieldSessionID, panelevent.FieldTimestamp, panelevent.FieldInteractionType:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PanelEvent fields.
func (_m *PanelEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case panelevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case panelevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case panelevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.String
			}
		case panelevent.FieldCurrentTaskIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_task_index", values[i])
			} else if value.Valid {
				_m.CurrentTaskIndex = int(value.Int64)
			}
		case panelevent.FieldInteractionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interaction_type", values[i])
			} else if value.Valid {
				_m.InteractionType = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PanelEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PanelEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PanelEvent.
// Note that you need to call PanelEvent.Unwrap() before calling this method if this PanelEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PanelEvent) Update() *PanelEventUpdateOne {
	return NewPanelEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PanelEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PanelEvent) Unwrap() *PanelEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PanelEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PanelEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PanelEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp)
	builder.WriteString(", ")
	builder.WriteString("current_task_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentTaskIndex))
	builder.WriteString(", ")
	builder.WriteString("interaction_type=")
	builder.WriteString(_m.InteractionType)
	builder.WriteByte(')')
	return builder.String()
}

// PanelEvents is a parsable slice of PanelEvent.
type PanelEvents []*PanelEvent
