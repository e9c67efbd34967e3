// Code generated by ent, DO NOT EDIT.

package codingtask

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the codingtask type in the database.
	Label = "coding_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldTaskOrder holds the string denoting the task_order field in the database.
	FieldTaskOrder = "task_order"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldMethodName holds the string denoting the method_name field in the database.
	FieldMethodName = "method_name"
	// FieldStarterCode holds the string denoting the starter_code field in the database.
	FieldStarterCode = "starter_code"
	// FieldExamples holds the string denoting the examples field in the database.
	FieldExamples = "examples"
	// Table holds the table name of the codingtask in the database.
	Table = "coding_tasks"
)

// Columns holds all SQL columns for codingtask fields.
var Columns = []string{
	FieldID,
	FieldLessonID,
	FieldTaskOrder,
	FieldTitle,
	FieldDifficulty,
	FieldDescription,
	FieldMethodName,
	FieldStarterCode,
	FieldExamples,
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
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
)

// OrderOption defines the ordering options for the CodingTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByTaskOrder orders the results by the task_order field.
func ByTaskOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskOrder, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByMethodName orders the results by the method_name field.
func ByMethodName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethodName, opts...).ToFunc()
}

// ByStarterCode orders the results by the starter_code field.
func ByStarterCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStarterCode, opts...).ToFunc()
}
