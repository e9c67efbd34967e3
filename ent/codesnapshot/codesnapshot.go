// Code generated by ent, DO NOT EDIT.

package codesnapshot

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the codesnapshot type in the database.
	Label = "code_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTaskIndex holds the string denoting the task_index field in the database.
	FieldTaskIndex = "task_index"
	// FieldMethodID holds the string denoting the method_id field in the database.
	FieldMethodID = "method_id"
	// FieldCodeContent holds the string denoting the code_content field in the database.
	FieldCodeContent = "code_content"
	// Table holds the table name of the codesnapshot in the database.
	Table = "code_snapshots"
)

// Columns holds all SQL columns for codesnapshot fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTimestamp,
	FieldTaskIndex,
	FieldMethodID,
	FieldCodeContent,
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

// OrderOption defines the ordering options for the CodeSnapshot queries.
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

// ByTaskIndex orders the results by the task_index field.
func ByTaskIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskIndex, opts...).ToFunc()
}

// ByMethodID orders the results by the method_id field.
func ByMethodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethodID, opts...).ToFunc()
}

// ByCodeContent orders the results by the code_content field.
func ByCodeContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCodeContent, opts...).ToFunc()
}
