// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/testcaseresult"
)

// TestCaseResult is the model entity for the TestCaseResult schema.
type TestCaseResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Session the event was recorded in
	SessionID string `json:"session_id,omitempty"`
	// Recorded timestamp string, preserved exactly
	Timestamp string `json:"timestamp,omitempty"`
	// TaskIndex holds the value of the "task_index" field.
	TaskIndex int `json:"task_index,omitempty"`
	// MethodID holds the value of the "method_id" field.
	MethodID string `json:"method_id,omitempty"`
	// TestCaseIndex holds the value of the "test_case_index" field.
	TestCaseIndex int `json:"test_case_index,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// Failure detail, empty when passed
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestCaseResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testcaseresult.FieldPassed:
			values[i] = new(sql.NullBool)
		case testcaseresult.FieldID, testcaseresult.FieldTaskIndex, testcaseresult.FieldTestCaseIndex:
			values[i] = new(sql.NullInt64)
		case testcaseresult.FieldSessionID, testcaseresult.FieldTimestamp, testcaseresult.FieldMethodID, testcaseresult.FieldErrorMessage:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestCaseResult fields.
func (_m *TestCaseResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testcaseresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case testcaseresult.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case testcaseresult.FieldTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.String
			}
		case testcaseresult.FieldTaskIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_index", values[i])
			} else if value.Valid {
				_m.TaskIndex = int(value.Int64)
			}
		case testcaseresult.FieldMethodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method_id", values[i])
			} else if value.Valid {
				_m.MethodID = value.String
			}
		case testcaseresult.FieldTestCaseIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field test_case_index", values[i])
			} else if value.Valid {
				_m.TestCaseIndex = int(value.Int64)
			}
		case testcaseresult.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case testcaseresult.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestCaseResult.
// This includes values selected through modifiers, order, etc.
func (_m *TestCaseResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TestCaseResult.
// Note that you need to call TestCaseResult.Unwrap() before calling this method if this TestCaseResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestCaseResult) Update() *TestCaseResultUpdateOne {
	return NewTestCaseResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestCaseResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestCaseResult) Unwrap() *TestCaseResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TestCaseResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestCaseResult) String() string {
	var builder strings.Builder
	builder.WriteString("TestCaseResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp)
	builder.WriteString(", ")
	builder.WriteString("task_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskIndex))
	builder.WriteString(", ")
	builder.WriteString("method_id=")
	builder.WriteString(_m.MethodID)
	builder.WriteString(", ")
	builder.WriteString("test_case_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestCaseIndex))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// TestCaseResults is a parsable slice of TestCaseResult.
type TestCaseResults []*TestCaseResult
