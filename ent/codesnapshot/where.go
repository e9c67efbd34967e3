// Code generated by ent, DO NOT EDIT.

package codesnapshot

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEQ(FieldSessionID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEQ(FieldTimestamp, v))
}

// TaskIndex applies equality check predicate on the "task_index" field. It's identical to TaskIndexEQ.
func TaskIndex(v int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEQ(FieldTaskIndex, v))
}

// MethodID applies equality check predicate on the "method_id" field. It's identical to MethodIDEQ.
func MethodID(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEQ(FieldMethodID, v))
}

// CodeContent applies equality check predicate on the "code_content" field. It's identical to CodeContentEQ.
func CodeContent(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEQ(FieldCodeContent, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldContainsFold(FieldSessionID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldLTE(FieldTimestamp, v))
}

// TimestampContains applies the Contains predicate on the "timestamp" field.
func TimestampContains(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldContains(FieldTimestamp, v))
}

// TimestampHasPrefix applies the HasPrefix predicate on the "timestamp" field.
func TimestampHasPrefix(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldHasPrefix(FieldTimestamp, v))
}

// TimestampHasSuffix applies the HasSuffix predicate on the "timestamp" field.
func TimestampHasSuffix(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldHasSuffix(FieldTimestamp, v))
}

// TimestampEqualFold applies the EqualFold predicate on the "timestamp" field.
func TimestampEqualFold(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEqualFold(FieldTimestamp, v))
}

// TimestampContainsFold applies the ContainsFold predicate on the "timestamp" field.
func TimestampContainsFold(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldContainsFold(FieldTimestamp, v))
}

// TaskIndexEQ applies the EQ predicate on the "task_index" field.
func TaskIndexEQ(v int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEQ(FieldTaskIndex, v))
}

// TaskIndexNEQ applies the NEQ predicate on the "task_index" field.
func TaskIndexNEQ(v int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldNEQ(FieldTaskIndex, v))
}

// TaskIndexIn applies the In predicate on the "task_index" field.
func TaskIndexIn(vs ...int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldIn(FieldTaskIndex, vs...))
}

// TaskIndexNotIn applies the NotIn predicate on the "task_index" field.
func TaskIndexNotIn(vs ...int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldNotIn(FieldTaskIndex, vs...))
}

// TaskIndexGT applies the GT predicate on the "task_index" field.
func TaskIndexGT(v int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldGT(FieldTaskIndex, v))
}

// TaskIndexGTE applies the GTE predicate on the "task_index" field.
func TaskIndexGTE(v int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldGTE(FieldTaskIndex, v))
}

// TaskIndexLT applies the LT predicate on the "task_index" field.
func TaskIndexLT(v int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldLT(FieldTaskIndex, v))
}

// TaskIndexLTE applies the LTE predicate on the "task_index" field.
func TaskIndexLTE(v int) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldLTE(FieldTaskIndex, v))
}

// MethodIDEQ applies the EQ predicate on the "method_id" field.
func MethodIDEQ(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEQ(FieldMethodID, v))
}

// MethodIDNEQ applies the NEQ predicate on the "method_id" field.
func MethodIDNEQ(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldNEQ(FieldMethodID, v))
}

// MethodIDIn applies the In predicate on the "method_id" field.
func MethodIDIn(vs ...string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldIn(FieldMethodID, vs...))
}

// MethodIDNotIn applies the NotIn predicate on the "method_id" field.
func MethodIDNotIn(vs ...string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldNotIn(FieldMethodID, vs...))
}

// MethodIDGT applies the GT predicate on the "method_id" field.
func MethodIDGT(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldGT(FieldMethodID, v))
}

// MethodIDGTE applies the GTE predicate on the "method_id" field.
func MethodIDGTE(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldGTE(FieldMethodID, v))
}

// MethodIDLT applies the LT predicate on the "method_id" field.
func MethodIDLT(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldLT(FieldMethodID, v))
}

// MethodIDLTE applies the LTE predicate on the "method_id" field.
func MethodIDLTE(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldLTE(FieldMethodID, v))
}

// MethodIDContains applies the Contains predicate on the "method_id" field.
func MethodIDContains(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldContains(FieldMethodID, v))
}

// MethodIDHasPrefix applies the HasPrefix predicate on the "method_id" field.
func MethodIDHasPrefix(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldHasPrefix(FieldMethodID, v))
}

// MethodIDHasSuffix applies the HasSuffix predicate on the "method_id" field.
func MethodIDHasSuffix(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldHasSuffix(FieldMethodID, v))
}

// MethodIDIsNil applies the IsNil predicate on the "method_id" field.
func MethodIDIsNil() predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldIsNull(FieldMethodID))
}

// MethodIDNotNil applies the NotNil predicate on the "method_id" field.
func MethodIDNotNil() predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldNotNull(FieldMethodID))
}

// MethodIDEqualFold applies the EqualFold predicate on the "method_id" field.
func MethodIDEqualFold(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEqualFold(FieldMethodID, v))
}

// MethodIDContainsFold applies the ContainsFold predicate on the "method_id" field.
func MethodIDContainsFold(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldContainsFold(FieldMethodID, v))
}

// CodeContentEQ applies the EQ predicate on the "code_content" field.
func CodeContentEQ(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEQ(FieldCodeContent, v))
}

// CodeContentNEQ applies the NEQ predicate on the "code_content" field.
func CodeContentNEQ(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldNEQ(FieldCodeContent, v))
}

// CodeContentIn applies the In predicate on the "code_content" field.
func CodeContentIn(vs ...string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldIn(FieldCodeContent, vs...))
}

// CodeContentNotIn applies the NotIn predicate on the "code_content" field.
func CodeContentNotIn(vs ...string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldNotIn(FieldCodeContent, vs...))
}

// CodeContentGT applies the GT predicate on the "code_content" field.
func CodeContentGT(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldGT(FieldCodeContent, v))
}

// CodeContentGTE applies the GTE predicate on the "code_content" field.
func CodeContentGTE(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldGTE(FieldCodeContent, v))
}

// CodeContentLT applies the LT predicate on the "code_content" field.
func CodeContentLT(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldLT(FieldCodeContent, v))
}

// CodeContentLTE applies the LTE predicate on the "code_content" field.
func CodeContentLTE(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldLTE(FieldCodeContent, v))
}

// CodeContentContains applies the Contains predicate on the "code_content" field.
func CodeContentContains(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldContains(FieldCodeContent, v))
}

// CodeContentHasPrefix applies the HasPrefix predicate on the "code_content" field.
func CodeContentHasPrefix(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldHasPrefix(FieldCodeContent, v))
}

// CodeContentHasSuffix applies the HasSuffix predicate on the "code_content" field.
func CodeContentHasSuffix(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldHasSuffix(FieldCodeContent, v))
}

// CodeContentEqualFold applies the EqualFold predicate on the "code_content" field.
func CodeContentEqualFold(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldEqualFold(FieldCodeContent, v))
}

// CodeContentContainsFold applies the ContainsFold predicate on the "code_content" field.
func CodeContentContainsFold(v string) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.FieldContainsFold(FieldCodeContent, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CodeSnapshot) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CodeSnapshot) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CodeSnapshot) predicate.CodeSnapshot {
	return predicate.CodeSnapshot(sql.NotPredicates(p))
}
