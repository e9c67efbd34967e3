// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/schema"
	"github.com/abhisek/replayz/ent/strokeevent"
)

// StrokeEvent is the model entity for the StrokeEvent schema.
type StrokeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Session the event was recorded in
	SessionID string `json:"session_id,omitempty"`
	// Recorded timestamp string, preserved exactly
	Timestamp string `json:"timestamp,omitempty"`
	// Task the stroke was drawn on
	Task string `json:"task,omitempty"`
	// Drawing zone within the workspace
	Zone string `json:"zone,omitempty"`
	// StrokeNumber holds the value of the "stroke_number" field.
	StrokeNumber int `json:"stroke_number,omitempty"`
	// Complete point sequence
	Points       []schema.StrokePoint `json:"points,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StrokeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case strokeevent.FieldPoints:
			values[i] = new([]byte)
		case strokeevent.FieldID, strokeevent.FieldStrokeNumber:
			values[i] = new(sql.NullInt64)
		case strokeevent.FieldSessionID, strokeevent.FieldTimestamp, strokeevent.FieldTask, strokeevent.FieldZone:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StrokeEvent fields.
func (_m *StrokeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case strokeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case strokeevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case strokeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.String
			}
		case strokeevent.FieldTask:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task", values[i])
			} else if value.Valid {
				_m.Task = value.String
			}
		case strokeevent.FieldZone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zone", values[i])
			} else if value.Valid {
				_m.Zone = value.String
			}
		case strokeevent.FieldStrokeNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stroke_number", values[i])
			} else if value.Valid {
				_m.StrokeNumber = int(value.Int64)
			}
		case strokeevent.FieldPoints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field points", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Points); err != nil {
					return fmt.Errorf("unmarshal field points: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StrokeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StrokeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StrokeEvent.
// Note that you need to call StrokeEvent.Unwrap() before calling this method if this StrokeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StrokeEvent) Update() *StrokeEventUpdateOne {
	return NewStrokeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StrokeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StrokeEvent) Unwrap() *StrokeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StrokeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StrokeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StrokeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp)
	builder.WriteString(", ")
	builder.WriteString("task=")
	builder.WriteString(_m.Task)
	builder.WriteString(", ")
	builder.WriteString("zone=")
	builder.WriteString(_m.Zone)
	builder.WriteString(", ")
	builder.WriteString("stroke_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.StrokeNumber))
	builder.WriteString(", ")
	builder.WriteString("points=")
	builder.WriteString(fmt.Sprintf("%v", _m.Points))
	builder.WriteByte(')')
	return builder.String()
}

// StrokeEvents is a parsable slice of StrokeEvent.
type StrokeEvents []*StrokeEvent
