// Code generated by ent, DO NOT EDIT.

package taskprogressevent

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the taskprogressevent type in the database.
	Label = "task_progress_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTaskIndex holds the string denoting the task_index field in the database.
	FieldTaskIndex = "task_index"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldTestCasesPassed holds the string denoting the test_cases_passed field in the database.
	FieldTestCasesPassed = "test_cases_passed"
	// FieldTotalTestCases holds the string denoting the total_test_cases field in the database.
	FieldTotalTestCases = "total_test_cases"
	// Table holds the table name of the taskprogressevent in the database.
	Table = "task_progress_events"
)

// Columns holds all SQL columns for taskprogressevent fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTimestamp,
	FieldTaskIndex,
	FieldCompleted,
	FieldAttempts,
	FieldTestCasesPassed,
	FieldTotalTestCases,
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
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultTestCasesPassed holds the default value on creation for the "test_cases_passed" field.
	DefaultTestCasesPassed int
	// DefaultTotalTestCases holds the default value on creation for the "total_test_cases" field.
	DefaultTotalTestCases int
)

// OrderOption defines the ordering options for the TaskProgressEvent queries.
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

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByTestCasesPassed orders the results by the test_cases_passed field.
func ByTestCasesPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestCasesPassed, opts...).ToFunc()
}

// ByTotalTestCases orders the results by the total_test_cases field.
func ByTotalTestCases(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTestCases, opts...).ToFunc()
}
