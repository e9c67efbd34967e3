// Code generated by ent, DO NOT EDIT.

package userhighlight

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userhighlight type in the database.
	Label = "user_highlight"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldHighlightedText holds the string denoting the highlighted_text field in the database.
	FieldHighlightedText = "highlighted_text"
	// Table holds the table name of the userhighlight in the database.
	Table = "user_highlights"
)

// Columns holds all SQL columns for userhighlight fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTimestamp,
	FieldHighlightedText,
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

// OrderOption defines the ordering options for the UserHighlight queries.
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

// ByHighlightedText orders the results by the highlighted_text field.
func ByHighlightedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHighlightedText, opts...).ToFunc()
}
