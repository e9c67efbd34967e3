// Code generated by ent, DO NOT EDIT.

package codeerrorevent

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldEQ(FieldSessionID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TaskIndex applies equality check predicate on the "task_index" field. It's identical to TaskIndexEQ.
func TaskIndex(v int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldEQ(FieldTaskIndex, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TimestampContains applies the Contains predicate on the "timestamp" field.
func TimestampContains(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldContains(FieldTimestamp, v))
}

// TimestampHasPrefix applies the HasPrefix predicate on the "timestamp" field.
func TimestampHasPrefix(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldHasPrefix(FieldTimestamp, v))
}

// TimestampHasSuffix applies the HasSuffix predicate on the "timestamp" field.
func TimestampHasSuffix(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldHasSuffix(FieldTimestamp, v))
}

// TimestampEqualFold applies the EqualFold predicate on the "timestamp" field.
func TimestampEqualFold(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldEqualFold(FieldTimestamp, v))
}

// TimestampContainsFold applies the ContainsFold predicate on the "timestamp" field.
func TimestampContainsFold(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldContainsFold(FieldTimestamp, v))
}

// TaskIndexEQ applies the EQ predicate on the "task_index" field.
func TaskIndexEQ(v int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldEQ(FieldTaskIndex, v))
}

// TaskIndexNEQ applies the NEQ predicate on the "task_index" field.
func TaskIndexNEQ(v int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldNEQ(FieldTaskIndex, v))
}

// TaskIndexIn applies the In predicate on the "task_index" field.
func TaskIndexIn(vs ...int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldIn(FieldTaskIndex, vs...))
}

// TaskIndexNotIn applies the NotIn predicate on the "task_index" field.
func TaskIndexNotIn(vs ...int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldNotIn(FieldTaskIndex, vs...))
}

// TaskIndexGT applies the GT predicate on the "task_index" field.
func TaskIndexGT(v int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldGT(FieldTaskIndex, v))
}

// TaskIndexGTE applies the GTE predicate on the "task_index" field.
func TaskIndexGTE(v int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldGTE(FieldTaskIndex, v))
}

// TaskIndexLT applies the LT predicate on the "task_index" field.
func TaskIndexLT(v int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldLT(FieldTaskIndex, v))
}

// TaskIndexLTE applies the LTE predicate on the "task_index" field.
func TaskIndexLTE(v int) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldLTE(FieldTaskIndex, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CodeErrorEvent) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CodeErrorEvent) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CodeErrorEvent) predicate.CodeErrorEvent {
	return predicate.CodeErrorEvent(sql.NotPredicates(p))
}
