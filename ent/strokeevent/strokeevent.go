// Code generated by ent, DO NOT EDIT.

package strokeevent

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the strokeevent type in the database.
	Label = "stroke_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTask holds the string denoting the task field in the database.
	FieldTask = "task"
	// FieldZone holds the string denoting the zone field in the database.
	FieldZone = "zone"
	// FieldStrokeNumber holds the string denoting the stroke_number field in the database.
	FieldStrokeNumber = "stroke_number"
	// FieldPoints holds the string denoting the points field in the database.
	FieldPoints = "points"
	// Table holds the table name of the strokeevent in the database.
	Table = "stroke_events"
)

// Columns holds all SQL columns for strokeevent fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTimestamp,
	FieldTask,
	FieldZone,
	FieldStrokeNumber,
	FieldPoints,
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
	// DefaultStrokeNumber holds the default value on creation for the "stroke_number" field.
	DefaultStrokeNumber int
)

// OrderOption defines the ordering options for the StrokeEvent queries.
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

// ByTask orders the results by the task field.
func ByTask(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTask, opts...).ToFunc()
}

// ByZone orders the results by the zone field.
func ByZone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZone, opts...).ToFunc()
}

// ByStrokeNumber orders the results by the stroke_number field.
func ByStrokeNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrokeNumber, opts...).ToFunc()
}
