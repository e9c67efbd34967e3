// Code generated by ent, DO NOT EDIT.

package taskprogressevent

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldSessionID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TaskIndex applies equality check predicate on the "task_index" field. It's identical to TaskIndexEQ.
func TaskIndex(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldTaskIndex, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldCompleted, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldAttempts, v))
}

// TestCasesPassed applies equality check predicate on the "test_cases_passed" field. It's identical to TestCasesPassedEQ.
func TestCasesPassed(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldTestCasesPassed, v))
}

// TotalTestCases applies equality check predicate on the "total_test_cases" field. It's identical to TotalTestCasesEQ.
func TotalTestCases(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldTotalTestCases, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TimestampContains applies the Contains predicate on the "timestamp" field.
func TimestampContains(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldContains(FieldTimestamp, v))
}

// TimestampHasPrefix applies the HasPrefix predicate on the "timestamp" field.
func TimestampHasPrefix(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldHasPrefix(FieldTimestamp, v))
}

// TimestampHasSuffix applies the HasSuffix predicate on the "timestamp" field.
func TimestampHasSuffix(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldHasSuffix(FieldTimestamp, v))
}

// TimestampEqualFold applies the EqualFold predicate on the "timestamp" field.
func TimestampEqualFold(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEqualFold(FieldTimestamp, v))
}

// TimestampContainsFold applies the ContainsFold predicate on the "timestamp" field.
func TimestampContainsFold(v string) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldContainsFold(FieldTimestamp, v))
}

// TaskIndexEQ applies the EQ predicate on the "task_index" field.
func TaskIndexEQ(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldTaskIndex, v))
}

// TaskIndexNEQ applies the NEQ predicate on the "task_index" field.
func TaskIndexNEQ(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNEQ(FieldTaskIndex, v))
}

// TaskIndexIn applies the In predicate on the "task_index" field.
func TaskIndexIn(vs ...int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldIn(FieldTaskIndex, vs...))
}

// TaskIndexNotIn applies the NotIn predicate on the "task_index" field.
func TaskIndexNotIn(vs ...int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNotIn(FieldTaskIndex, vs...))
}

// TaskIndexGT applies the GT predicate on the "task_index" field.
func TaskIndexGT(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldGT(FieldTaskIndex, v))
}

// TaskIndexGTE applies the GTE predicate on the "task_index" field.
func TaskIndexGTE(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldGTE(FieldTaskIndex, v))
}

// TaskIndexLT applies the LT predicate on the "task_index" field.
func TaskIndexLT(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldLT(FieldTaskIndex, v))
}

// TaskIndexLTE applies the LTE predicate on the "task_index" field.
func TaskIndexLTE(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldLTE(FieldTaskIndex, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNEQ(FieldCompleted, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldLTE(FieldAttempts, v))
}

// TestCasesPassedEQ applies the EQ predicate on the "test_cases_passed" field.
func TestCasesPassedEQ(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldTestCasesPassed, v))
}

// TestCasesPassedNEQ applies the NEQ predicate on the "test_cases_passed" field.
func TestCasesPassedNEQ(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNEQ(FieldTestCasesPassed, v))
}

// TestCasesPassedIn applies the In predicate on the "test_cases_passed" field.
func TestCasesPassedIn(vs ...int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldIn(FieldTestCasesPassed, vs...))
}

// TestCasesPassedNotIn applies the NotIn predicate on the "test_cases_passed" field.
func TestCasesPassedNotIn(vs ...int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNotIn(FieldTestCasesPassed, vs...))
}

// TestCasesPassedGT applies the GT predicate on the "test_cases_passed" field.
func TestCasesPassedGT(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldGT(FieldTestCasesPassed, v))
}

// TestCasesPassedGTE applies the GTE predicate on the "test_cases_passed" field.
func TestCasesPassedGTE(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldGTE(FieldTestCasesPassed, v))
}

// TestCasesPassedLT applies the LT predicate on the "test_cases_passed" field.
func TestCasesPassedLT(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldLT(FieldTestCasesPassed, v))
}

// TestCasesPassedLTE applies the LTE predicate on the "test_cases_passed" field.
func TestCasesPassedLTE(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldLTE(FieldTestCasesPassed, v))
}

// TotalTestCasesEQ applies the EQ predicate on the "total_test_cases" field.
func TotalTestCasesEQ(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldEQ(FieldTotalTestCases, v))
}

// TotalTestCasesNEQ applies the NEQ predicate on the "total_test_cases" field.
func TotalTestCasesNEQ(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNEQ(FieldTotalTestCases, v))
}

// TotalTestCasesIn applies the In predicate on the "total_test_cases" field.
func TotalTestCasesIn(vs ...int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldIn(FieldTotalTestCases, vs...))
}

// TotalTestCasesNotIn applies the NotIn predicate on the "total_test_cases" field.
func TotalTestCasesNotIn(vs ...int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldNotIn(FieldTotalTestCases, vs...))
}

// TotalTestCasesGT applies the GT predicate on the "total_test_cases" field.
func TotalTestCasesGT(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldGT(FieldTotalTestCases, v))
}

// TotalTestCasesGTE applies the GTE predicate on the "total_test_cases" field.
func TotalTestCasesGTE(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldGTE(FieldTotalTestCases, v))
}

// TotalTestCasesLT applies the LT predicate on the "total_test_cases" field.
func TotalTestCasesLT(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldLT(FieldTotalTestCases, v))
}

// TotalTestCasesLTE applies the LTE predicate on the "total_test_cases" field.
func TotalTestCasesLTE(v int) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.FieldLTE(FieldTotalTestCases, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskProgressEvent) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskProgressEvent) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskProgressEvent) predicate.TaskProgressEvent {
	return predicate.TaskProgressEvent(sql.NotPredicates(p))
}
