// Code generated by ent, DO NOT EDIT.

package panelevent

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the panelevent type in the database.
	Label = "panel_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldCurrentTaskIndex holds the string denoting the current_task_index field in the database.
	FieldCurrentTaskIndex = "current_task_index"
	// FieldInteractionType holds the string denoting the interaction_type field in the database.
	FieldInteractionType = "interaction_type"
	// Table holds the table name of the panelevent in the database.
	Table = "panel_events"
)

// Columns holds all SQL columns for panelevent fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTimestamp,
	FieldCurrentTaskIndex,
	FieldInteractionType,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// TimestampValidator is a validator for the "timestamp" field. It is called by the builders before save.
	TimestampValidator func(string) error
	// DefaultCurrentTaskIndex holds the default value on creation for the "current_task_index" field.
	DefaultCurrentTaskIndex int
	// InteractionTypeValidator is a validator for the "interaction_type" field. It is called by the builders before save.
	InteractionTypeValidator func(string) error
)

// OrderOption defines the ordering options for the PanelEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByCurrentTaskIndex orders the results by the current_task_index field.
func ByCurrentTaskIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentTaskIndex, opts...).ToFunc()
}

// ByInteractionType orders the results by the interaction_type field.
func ByInteractionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInteractionType, opts...).ToFunc()
}
