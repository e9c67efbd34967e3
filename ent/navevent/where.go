// Code generated by ent, DO NOT EDIT.

package navevent

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEQ(FieldSessionID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEQ(FieldTimestamp, v))
}

// FromTaskIndex applies equality check predicate on the "from_task_index" field. It's identical to FromTaskIndexEQ.
func FromTaskIndex(v int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEQ(FieldFromTaskIndex, v))
}

// ToTaskIndex applies equality check predicate on the "to_task_index" field. It's identical to ToTaskIndexEQ.
func ToTaskIndex(v int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEQ(FieldToTaskIndex, v))
}

// NavigationDirection applies equality check predicate on the "navigation_direction" field. It's identical to NavigationDirectionEQ.
func NavigationDirection(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEQ(FieldNavigationDirection, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TimestampContains applies the Contains predicate on the "timestamp" field.
func TimestampContains(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldContains(FieldTimestamp, v))
}

// TimestampHasPrefix applies the HasPrefix predicate on the "timestamp" field.
func TimestampHasPrefix(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldHasPrefix(FieldTimestamp, v))
}

// TimestampHasSuffix applies the HasSuffix predicate on the "timestamp" field.
func TimestampHasSuffix(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldHasSuffix(FieldTimestamp, v))
}

// TimestampEqualFold applies the EqualFold predicate on the "timestamp" field.
func TimestampEqualFold(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEqualFold(FieldTimestamp, v))
}

// TimestampContainsFold applies the ContainsFold predicate on the "timestamp" field.
func TimestampContainsFold(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldContainsFold(FieldTimestamp, v))
}

// FromTaskIndexEQ applies the EQ predicate on the "from_task_index" field.
func FromTaskIndexEQ(v int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEQ(FieldFromTaskIndex, v))
}

// FromTaskIndexNEQ applies the NEQ predicate on the "from_task_index" field.
func FromTaskIndexNEQ(v int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldNEQ(FieldFromTaskIndex, v))
}

// FromTaskIndexIn applies the In predicate on the "from_task_index" field.
func FromTaskIndexIn(vs ...int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldIn(FieldFromTaskIndex, vs...))
}

// FromTaskIndexNotIn applies the NotIn predicate on the "from_task_index" field.
func FromTaskIndexNotIn(vs ...int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldNotIn(FieldFromTaskIndex, vs...))
}

// FromTaskIndexGT applies the GT predicate on the "from_task_index" field.
func FromTaskIndexGT(v int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldGT(FieldFromTaskIndex, v))
}

// FromTaskIndexGTE applies the GTE predicate on the "from_task_index" field.
func FromTaskIndexGTE(v int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldGTE(FieldFromTaskIndex, v))
}

// FromTaskIndexLT applies the LT predicate on the "from_task_index" field.
func FromTaskIndexLT(v int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldLT(FieldFromTaskIndex, v))
}

// FromTaskIndexLTE applies the LTE predicate on the "from_task_index" field.
func FromTaskIndexLTE(v int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldLTE(FieldFromTaskIndex, v))
}

// ToTaskIndexEQ applies the EQ predicate on the "to_task_index" field.
func ToTaskIndexEQ(v int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEQ(FieldToTaskIndex, v))
}

// ToTaskIndexNEQ applies the NEQ predicate on the "to_task_index" field.
func ToTaskIndexNEQ(v int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldNEQ(FieldToTaskIndex, v))
}

// ToTaskIndexIn applies the In predicate on the "to_task_index" field.
func ToTaskIndexIn(vs ...int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldIn(FieldToTaskIndex, vs...))
}

// ToTaskIndexNotIn applies the NotIn predicate on the "to_task_index" field.
func ToTaskIndexNotIn(vs ...int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldNotIn(FieldToTaskIndex, vs...))
}

// ToTaskIndexGT applies the GT predicate on the "to_task_index" field.
func ToTaskIndexGT(v int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldGT(FieldToTaskIndex, v))
}

// ToTaskIndexGTE applies the GTE predicate on the "to_task_index" field.
func ToTaskIndexGTE(v int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldGTE(FieldToTaskIndex, v))
}

// ToTaskIndexLT applies the LT predicate on the "to_task_index" field.
func ToTaskIndexLT(v int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldLT(FieldToTaskIndex, v))
}

// ToTaskIndexLTE applies the LTE predicate on the "to_task_index" field.
func ToTaskIndexLTE(v int) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldLTE(FieldToTaskIndex, v))
}

// NavigationDirectionEQ applies the EQ predicate on the "navigation_direction" field.
func NavigationDirectionEQ(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEQ(FieldNavigationDirection, v))
}

// NavigationDirectionNEQ applies the NEQ predicate on the "navigation_direction" field.
func NavigationDirectionNEQ(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldNEQ(FieldNavigationDirection, v))
}

// NavigationDirectionIn applies the In predicate on the "navigation_direction" field.
func NavigationDirectionIn(vs ...string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldIn(FieldNavigationDirection, vs...))
}

// NavigationDirectionNotIn applies the NotIn predicate on the "navigation_direction" field.
func NavigationDirectionNotIn(vs ...string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldNotIn(FieldNavigationDirection, vs...))
}

// NavigationDirectionGT applies the GT predicate on the "navigation_direction" field.
func NavigationDirectionGT(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldGT(FieldNavigationDirection, v))
}

// NavigationDirectionGTE applies the GTE predicate on the "navigation_direction" field.
func NavigationDirectionGTE(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldGTE(FieldNavigationDirection, v))
}

// NavigationDirectionLT applies the LT predicate on the "navigation_direction" field.
func NavigationDirectionLT(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldLT(FieldNavigationDirection, v))
}

// NavigationDirectionLTE applies the LTE predicate on the "navigation_direction" field.
func NavigationDirectionLTE(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldLTE(FieldNavigationDirection, v))
}

// NavigationDirectionContains applies the Contains predicate on the "navigation_direction" field.
func NavigationDirectionContains(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldContains(FieldNavigationDirection, v))
}

// NavigationDirectionHasPrefix applies the HasPrefix predicate on the "navigation_direction" field.
func NavigationDirectionHasPrefix(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldHasPrefix(FieldNavigationDirection, v))
}

// NavigationDirectionHasSuffix applies the HasSuffix predicate on the "navigation_direction" field.
func NavigationDirectionHasSuffix(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldHasSuffix(FieldNavigationDirection, v))
}

// NavigationDirectionIsNil applies the IsNil predicate on the "navigation_direction" field.
func NavigationDirectionIsNil() predicate.NavEvent {
	return predicate.NavEvent(sql.FieldIsNull(FieldNavigationDirection))
}

// NavigationDirectionNotNil applies the NotNil predicate on the "navigation_direction" field.
func NavigationDirectionNotNil() predicate.NavEvent {
	return predicate.NavEvent(sql.FieldNotNull(FieldNavigationDirection))
}

// NavigationDirectionEqualFold applies the EqualFold predicate on the "navigation_direction" field.
func NavigationDirectionEqualFold(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldEqualFold(FieldNavigationDirection, v))
}

// NavigationDirectionContainsFold applies the ContainsFold predicate on the "navigation_direction" field.
func NavigationDirectionContainsFold(v string) predicate.NavEvent {
	return predicate.NavEvent(sql.FieldContainsFold(FieldNavigationDirection, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NavEvent) predicate.NavEvent {
	return predicate.NavEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NavEvent) predicate.NavEvent {
	return predicate.NavEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NavEvent) predicate.NavEvent {
	return predicate.NavEvent(sql.NotPredicates(p))
}
