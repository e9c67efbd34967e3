// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/tutorhighlight"
)

// TutorHighlight is the model entity for the TutorHighlight schema.
type TutorHighlight struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Session the event was recorded in
	SessionID string `json:"session_id,omitempty"`
	// Recorded timestamp string, preserved exactly
	Timestamp string `json:"timestamp,omitempty"`
	// LineNumber holds the value of the "line_number" field.
	LineNumber   int `json:"line_number,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TutorHighlight) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tutorhighlight.FieldID, tutorhighlight.FieldLineNumber:
			values[i] = new(sql.NullInt64)
		case tutorhighlight.FieldSessionID, tutorhighlight.FieldTimestamp:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TutorHighlight fields.
func (_m *TutorHighlight) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tutorhighlight.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case tutorhighlight.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case tutorhighlight.FieldTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.String
			}
		case tutorhighlight.FieldLineNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field line_number", values[i])
			} else if value.Valid {
				_m.LineNumber = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TutorHighlight.
// This includes values selected through modifiers, order, etc.
func (_m *TutorHighlight) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TutorHighlight.
// Note that you need to call TutorHighlight.Unwrap() before calling this method if this TutorHighlight
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TutorHighlight) Update() *TutorHighlightUpdateOne {
	return NewTutorHighlightClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TutorHighlight entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TutorHighlight) Unwrap() *TutorHighlight {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TutorHighlight is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TutorHighlight) String() string {
	var builder strings.Builder
	builder.WriteString("TutorHighlight(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp)
	builder.WriteString(", ")
	builder.WriteString("line_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.LineNumber))
	builder.WriteByte(')')
	return builder.String()
}

// TutorHighlights is a parsable slice of TutorHighlight.
type TutorHighlights []*TutorHighlight
