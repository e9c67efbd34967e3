// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/userhighlight"
)

// UserHighlight is the model entity for the UserHighlight schema.
type UserHighlight struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Session the event was recorded in
	SessionID string `json:"session_id,omitempty"`
	// Recorded timestamp string, preserved exactly
	Timestamp string `json:"timestamp,omitempty"`
	// HighlightedText holds the value of the "highlighted_text" field.
	HighlightedText string `json:"highlighted_text,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserHighlight) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userhighlight.FieldID:
			values[i] = new(sql.NullInt64)
		case userhighlight.FieldSessionID, userhighlight.FieldTimestamp, userhighlight.FieldHighlightedText:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserHighlight fields.
func (_m *UserHighlight) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userhighlight.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userhighlight.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case userhighlight.FieldTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.String
			}
		case userhighlight.FieldHighlightedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field highlighted_text", values[i])
			} else if value.Valid {
				_m.HighlightedText = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserHighlight.
// This includes values selected through modifiers, order, etc.
func (_m *UserHighlight) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserHighlight.
// Note that you need to call UserHighlight.Unwrap() before calling this method if this UserHighlight
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserHighlight) Update() *UserHighlightUpdateOne {
	return NewUserHighlightClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserHighlight entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserHighlight) Unwrap() *UserHighlight {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserHighlight is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserHighlight) String() string {
	var builder strings.Builder
	builder.WriteString("UserHighlight(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp)
	builder.WriteString(", ")
	builder.WriteString("highlighted_text=")
	builder.WriteString(_m.HighlightedText)
	builder.WriteByte(')')
	return builder.String()
}

// UserHighlights is a parsable slice of UserHighlight.
type UserHighlights []*UserHighlight
