// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/tutorconversation"
)

// TutorConversation is the model entity for the TutorConversation schema.
type TutorConversation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Voice service conversation id, used to fetch audio
	ConversationID string `json:"conversation_id,omitempty"`
	// Recorded start timestamp string, preserved exactly
	StartTime string `json:"start_time,omitempty"`
	// Recorded end timestamp string; empty when the conversation was still open at session end
	EndTime      string `json:"end_time,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TutorConversation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tutorconversation.FieldID:
			values[i] = new(sql.NullInt64)
		case tutorconversation.FieldSessionID, tutorconversation.FieldConversationID, tutorconversation.FieldStartTime, tutorconversation.FieldEndTime:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TutorConversation fields.
func (_m *TutorConversation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tutorconversation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case tutorconversation.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case tutorconversation.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case tutorconversation.FieldStartTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.String
			}
		case tutorconversation.FieldEndTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TutorConversation.
// This includes values selected through modifiers, order, etc.
func (_m *TutorConversation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TutorConversation.
// Note that you need to call TutorConversation.Unwrap() before calling this method if this TutorConversation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TutorConversation) Update() *TutorConversationUpdateOne {
	return NewTutorConversationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TutorConversation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TutorConversation) Unwrap() *TutorConversation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TutorConversation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TutorConversation) String() string {
	var builder strings.Builder
	builder.WriteString("TutorConversation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("conversation_id=")
	builder.WriteString(_m.ConversationID)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime)
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime)
	builder.WriteByte(')')
	return builder.String()
}

// TutorConversations is a parsable slice of TutorConversation.
type TutorConversations []*TutorConversation
