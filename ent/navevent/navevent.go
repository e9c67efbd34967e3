// Code generated by ent, DO NOT EDIT.

package navevent

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the navevent type in the database.
	Label = "nav_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldFromTaskIndex holds the string denoting the from_task_index field in the database.
	FieldFromTaskIndex = "from_task_index"
	// FieldToTaskIndex holds the string denoting the to_task_index field in the database.
	FieldToTaskIndex = "to_task_index"
	// FieldNavigationDirection holds the string denoting the navigation_direction field in the database.
	FieldNavigationDirection = "navigation_direction"
	// Table holds the table name of the navevent in the database.
	Table = "nav_events"
)

// Columns holds all SQL columns for navevent fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTimestamp,
	FieldFromTaskIndex,
	FieldToTaskIndex,
	FieldNavigationDirection,
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
)

// OrderOption defines the ordering options for the NavEvent queries.
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

// ByFromTaskIndex orders the results by the from_task_index field.
func ByFromTaskIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromTaskIndex, opts...).ToFunc()
}

// ByToTaskIndex orders the results by the to_task_index field.
func ByToTaskIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToTaskIndex, opts...).ToFunc()
}

// ByNavigationDirection orders the results by the navigation_direction field.
func ByNavigationDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNavigationDirection, opts...).ToFunc()
}
