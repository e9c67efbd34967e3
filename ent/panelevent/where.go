// Code generated by ent, DO NOT EDIT.

package panelevent

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldEQ(FieldSessionID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldEQ(FieldTimestamp, v))
}

// CurrentTaskIndex applies equality check predicate on the "current_task_index" field. It's identical to CurrentTaskIndexEQ.
func CurrentTaskIndex(v int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldEQ(FieldCurrentTaskIndex, v))
}

// InteractionType applies equality check predicate on the "interaction_type" field. It's identical to InteractionTypeEQ.
func InteractionType(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldEQ(FieldInteractionType, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TimestampContains applies the Contains predicate on the "timestamp" field.
func TimestampContains(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldContains(FieldTimestamp, v))
}

// TimestampHasPrefix applies the HasPrefix predicate on the "timestamp" field.
func TimestampHasPrefix(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldHasPrefix(FieldTimestamp, v))
}

// TimestampHasSuffix applies the HasSuffix predicate on the "timestamp" field.
func TimestampHasSuffix(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldHasSuffix(FieldTimestamp, v))
}

// TimestampEqualFold applies the EqualFold predicate on the "timestamp" field.
func TimestampEqualFold(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldEqualFold(FieldTimestamp, v))
}

// TimestampContainsFold applies the ContainsFold predicate on the "timestamp" field.
func TimestampContainsFold(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldContainsFold(FieldTimestamp, v))
}

// CurrentTaskIndexEQ applies the EQ predicate on the "current_task_index" field.
func CurrentTaskIndexEQ(v int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldEQ(FieldCurrentTaskIndex, v))
}

// CurrentTaskIndexNEQ applies the NEQ predicate on the "current_task_index" field.
func CurrentTaskIndexNEQ(v int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldNEQ(FieldCurrentTaskIndex, v))
}

// CurrentTaskIndexIn applies the In predicate on the "current_task_index" field.
func CurrentTaskIndexIn(vs ...int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldIn(FieldCurrentTaskIndex, vs...))
}

// CurrentTaskIndexNotIn applies the NotIn predicate on the "current_task_index" field.
func CurrentTaskIndexNotIn(vs ...int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldNotIn(FieldCurrentTaskIndex, vs...))
}

// CurrentTaskIndexGT applies the GT predicate on the "current_task_index" field.
func CurrentTaskIndexGT(v int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldGT(FieldCurrentTaskIndex, v))
}

// CurrentTaskIndexGTE applies the GTE predicate on the "current_task_index" field.
func CurrentTaskIndexGTE(v int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldGTE(FieldCurrentTaskIndex, v))
}

// CurrentTaskIndexLT applies the LT predicate on the "current_task_index" field.
func CurrentTaskIndexLT(v int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldLT(FieldCurrentTaskIndex, v))
}

// CurrentTaskIndexLTE applies the LTE predicate on the "current_task_index" field.
func CurrentTaskIndexLTE(v int) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldLTE(FieldCurrentTaskIndex, v))
}

// InteractionTypeEQ applies the EQ predicate on the "interaction_type" field.
func InteractionTypeEQ(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldEQ(FieldInteractionType, v))
}

// InteractionTypeNEQ applies the NEQ predicate on the "interaction_type" field.
func InteractionTypeNEQ(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldNEQ(FieldInteractionType, v))
}

// InteractionTypeIn applies the In predicate on the "interaction_type" field.
func InteractionTypeIn(vs ...string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldIn(FieldInteractionType, vs...))
}

// InteractionTypeNotIn applies the NotIn predicate on the "interaction_type" field.
func InteractionTypeNotIn(vs ...string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldNotIn(FieldInteractionType, vs...))
}

// InteractionTypeGT applies the GT predicate on the "interaction_type" field.
func InteractionTypeGT(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldGT(FieldInteractionType, v))
}

// InteractionTypeGTE applies the GTE predicate on the "interaction_type" field.
func InteractionTypeGTE(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldGTE(FieldInteractionType, v))
}

// InteractionTypeLT applies the LT predicate on the "interaction_type" field.
func InteractionTypeLT(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldLT(FieldInteractionType, v))
}

// InteractionTypeLTE applies the LTE predicate on the "interaction_type" field.
func InteractionTypeLTE(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldLTE(FieldInteractionType, v))
}

// InteractionTypeContains applies the Contains predicate on the "interaction_type" field.
func InteractionTypeContains(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldContains(FieldInteractionType, v))
}

// InteractionTypeHasPrefix applies the HasPrefix predicate on the "interaction_type" field.
func InteractionTypeHasPrefix(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldHasPrefix(FieldInteractionType, v))
}

// InteractionTypeHasSuffix applies the HasSuffix predicate on the "interaction_type" field.
func InteractionTypeHasSuffix(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldHasSuffix(FieldInteractionType, v))
}

// InteractionTypeEqualFold applies the EqualFold predicate on the "interaction_type" field.
func InteractionTypeEqualFold(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldEqualFold(FieldInteractionType, v))
}

// InteractionTypeContainsFold applies the ContainsFold predicate on the "interaction_type" field.
func InteractionTypeContainsFold(v string) predicate.PanelEvent {
	return predicate.PanelEvent(sql.FieldContainsFold(FieldInteractionType, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PanelEvent) predicate.PanelEvent {
	return predicate.PanelEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PanelEvent) predicate.PanelEvent {
	return predicate.PanelEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PanelEvent) predicate.PanelEvent {
	return predicate.PanelEvent(sql.NotPredicates(p))
}
