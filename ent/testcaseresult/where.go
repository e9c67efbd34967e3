// Code generated by ent, DO NOT EDIT.

package testcaseresult

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldSessionID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldTimestamp, v))
}

// TaskIndex applies equality check predicate on the "task_index" field. It's identical to TaskIndexEQ.
func TaskIndex(v int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldTaskIndex, v))
}

// MethodID applies equality check predicate on the "method_id" field. It's identical to MethodIDEQ.
func MethodID(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldMethodID, v))
}

// TestCaseIndex applies equality check predicate on the "test_case_index" field. It's identical to TestCaseIndexEQ.
func TestCaseIndex(v int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldTestCaseIndex, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldPassed, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldErrorMessage, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldContainsFold(FieldSessionID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldLTE(FieldTimestamp, v))
}

// TimestampContains applies the Contains predicate on the "timestamp" field.
func TimestampContains(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldContains(FieldTimestamp, v))
}

// TimestampHasPrefix applies the HasPrefix predicate on the "timestamp" field.
func TimestampHasPrefix(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldHasPrefix(FieldTimestamp, v))
}

// TimestampHasSuffix applies the HasSuffix predicate on the "timestamp" field.
func TimestampHasSuffix(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldHasSuffix(FieldTimestamp, v))
}

// TimestampEqualFold applies the EqualFold predicate on the "timestamp" field.
func TimestampEqualFold(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEqualFold(FieldTimestamp, v))
}

// TimestampContainsFold applies the ContainsFold predicate on the "timestamp" field.
func TimestampContainsFold(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldContainsFold(FieldTimestamp, v))
}

// TaskIndexEQ applies the EQ predicate on the "task_index" field.
func TaskIndexEQ(v int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldTaskIndex, v))
}

// TaskIndexNEQ applies the NEQ predicate on the "task_index" field.
func TaskIndexNEQ(v int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNEQ(FieldTaskIndex, v))
}

// TaskIndexIn applies the In predicate on the "task_index" field.
func TaskIndexIn(vs ...int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldIn(FieldTaskIndex, vs...))
}

// TaskIndexNotIn applies the NotIn predicate on the "task_index" field.
func TaskIndexNotIn(vs ...int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNotIn(FieldTaskIndex, vs...))
}

// TaskIndexGT applies the GT predicate on the "task_index" field.
func TaskIndexGT(v int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldGT(FieldTaskIndex, v))
}

// TaskIndexGTE applies the GTE predicate on the "task_index" field.
func TaskIndexGTE(v int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldGTE(FieldTaskIndex, v))
}

// TaskIndexLT applies the LT predicate on the "task_index" field.
func TaskIndexLT(v int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldLT(FieldTaskIndex, v))
}

// TaskIndexLTE applies the LTE predicate on the "task_index" field.
func TaskIndexLTE(v int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldLTE(FieldTaskIndex, v))
}

// MethodIDEQ applies the EQ predicate on the "method_id" field.
func MethodIDEQ(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldMethodID, v))
}

// MethodIDNEQ applies the NEQ predicate on the "method_id" field.
func MethodIDNEQ(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNEQ(FieldMethodID, v))
}

// MethodIDIn applies the In predicate on the "method_id" field.
func MethodIDIn(vs ...string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldIn(FieldMethodID, vs...))
}

// MethodIDNotIn applies the NotIn predicate on the "method_id" field.
func MethodIDNotIn(vs ...string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNotIn(FieldMethodID, vs...))
}

// MethodIDGT applies the GT predicate on the "method_id" field.
func MethodIDGT(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldGT(FieldMethodID, v))
}

// MethodIDGTE applies the GTE predicate on the "method_id" field.
func MethodIDGTE(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldGTE(FieldMethodID, v))
}

// MethodIDLT applies the LT predicate on the "method_id" field.
func MethodIDLT(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldLT(FieldMethodID, v))
}

// MethodIDLTE applies the LTE predicate on the "method_id" field.
func MethodIDLTE(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldLTE(FieldMethodID, v))
}

// MethodIDContains applies the Contains predicate on the "method_id" field.
func MethodIDContains(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldContains(FieldMethodID, v))
}

// MethodIDHasPrefix applies the HasPrefix predicate on the "method_id" field.
func MethodIDHasPrefix(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldHasPrefix(FieldMethodID, v))
}

// MethodIDHasSuffix applies the HasSuffix predicate on the "method_id" field.
func MethodIDHasSuffix(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldHasSuffix(FieldMethodID, v))
}

// MethodIDIsNil applies the IsNil predicate on the "method_id" field.
func MethodIDIsNil() predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldIsNull(FieldMethodID))
}

// MethodIDNotNil applies the NotNil predicate on the "method_id" field.
func MethodIDNotNil() predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNotNull(FieldMethodID))
}

// MethodIDEqualFold applies the EqualFold predicate on the "method_id" field.
func MethodIDEqualFold(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEqualFold(FieldMethodID, v))
}

// MethodIDContainsFold applies the ContainsFold predicate on the "method_id" field.
func MethodIDContainsFold(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldContainsFold(FieldMethodID, v))
}

// TestCaseIndexEQ applies the EQ predicate on the "test_case_index" field.
func TestCaseIndexEQ(v int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldTestCaseIndex, v))
}

// TestCaseIndexNEQ applies the NEQ predicate on the "test_case_index" field.
func TestCaseIndexNEQ(v int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNEQ(FieldTestCaseIndex, v))
}

// TestCaseIndexIn applies the In predicate on the "test_case_index" field.
func TestCaseIndexIn(vs ...int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldIn(FieldTestCaseIndex, vs...))
}

// TestCaseIndexNotIn applies the NotIn predicate on the "test_case_index" field.
func TestCaseIndexNotIn(vs ...int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNotIn(FieldTestCaseIndex, vs...))
}

// TestCaseIndexGT applies the GT predicate on the "test_case_index" field.
func TestCaseIndexGT(v int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldGT(FieldTestCaseIndex, v))
}

// TestCaseIndexGTE applies the GTE predicate on the "test_case_index" field.
func TestCaseIndexGTE(v int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldGTE(FieldTestCaseIndex, v))
}

// TestCaseIndexLT applies the LT predicate on the "test_case_index" field.
func TestCaseIndexLT(v int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldLT(FieldTestCaseIndex, v))
}

// TestCaseIndexLTE applies the LTE predicate on the "test_case_index" field.
func TestCaseIndexLTE(v int) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldLTE(FieldTestCaseIndex, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNEQ(FieldPassed, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestCaseResult) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestCaseResult) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestCaseResult) predicate.TestCaseResult {
	return predicate.TestCaseResult(sql.NotPredicates(p))
}
