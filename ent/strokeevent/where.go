// Code generated by ent, DO NOT EDIT.

package strokeevent

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEQ(FieldSessionID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Task applies equality check predicate on the "task" field. It's identical to TaskEQ.
func Task(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEQ(FieldTask, v))
}

// Zone applies equality check predicate on the "zone" field. It's identical to ZoneEQ.
func Zone(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEQ(FieldZone, v))
}

// StrokeNumber applies equality check predicate on the "stroke_number" field. It's identical to StrokeNumberEQ.
func StrokeNumber(v int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEQ(FieldStrokeNumber, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TimestampContains applies the Contains predicate on the "timestamp" field.
func TimestampContains(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldContains(FieldTimestamp, v))
}

// TimestampHasPrefix applies the HasPrefix predicate on the "timestamp" field.
func TimestampHasPrefix(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldHasPrefix(FieldTimestamp, v))
}

// TimestampHasSuffix applies the HasSuffix predicate on the "timestamp" field.
func TimestampHasSuffix(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldHasSuffix(FieldTimestamp, v))
}

// TimestampEqualFold applies the EqualFold predicate on the "timestamp" field.
func TimestampEqualFold(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEqualFold(FieldTimestamp, v))
}

// TimestampContainsFold applies the ContainsFold predicate on the "timestamp" field.
func TimestampContainsFold(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldContainsFold(FieldTimestamp, v))
}

// TaskEQ applies the EQ predicate on the "task" field.
func TaskEQ(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEQ(FieldTask, v))
}

// TaskNEQ applies the NEQ predicate on the "task" field.
func TaskNEQ(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNEQ(FieldTask, v))
}

// TaskIn applies the In predicate on the "task" field.
func TaskIn(vs ...string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldIn(FieldTask, vs...))
}

// TaskNotIn applies the NotIn predicate on the "task" field.
func TaskNotIn(vs ...string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNotIn(FieldTask, vs...))
}

// TaskGT applies the GT predicate on the "task" field.
func TaskGT(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldGT(FieldTask, v))
}

// TaskGTE applies the GTE predicate on the "task" field.
func TaskGTE(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldGTE(FieldTask, v))
}

// TaskLT applies the LT predicate on the "task" field.
func TaskLT(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldLT(FieldTask, v))
}

// TaskLTE applies the LTE predicate on the "task" field.
func TaskLTE(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldLTE(FieldTask, v))
}

// TaskContains applies the Contains predicate on the "task" field.
func TaskContains(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldContains(FieldTask, v))
}

// TaskHasPrefix applies the HasPrefix predicate on the "task" field.
func TaskHasPrefix(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldHasPrefix(FieldTask, v))
}

// TaskHasSuffix applies the HasSuffix predicate on the "task" field.
func TaskHasSuffix(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldHasSuffix(FieldTask, v))
}

// TaskIsNil applies the IsNil predicate on the "task" field.
func TaskIsNil() predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldIsNull(FieldTask))
}

// TaskNotNil applies the NotNil predicate on the "task" field.
func TaskNotNil() predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNotNull(FieldTask))
}

// TaskEqualFold applies the EqualFold predicate on the "task" field.
func TaskEqualFold(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEqualFold(FieldTask, v))
}

// TaskContainsFold applies the ContainsFold predicate on the "task" field.
func TaskContainsFold(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldContainsFold(FieldTask, v))
}

// ZoneEQ applies the EQ predicate on the "zone" field.
func ZoneEQ(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEQ(FieldZone, v))
}

// ZoneNEQ applies the NEQ predicate on the "zone" field.
func ZoneNEQ(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNEQ(FieldZone, v))
}

// ZoneIn applies the In predicate on the "zone" field.
func ZoneIn(vs ...string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldIn(FieldZone, vs...))
}

// ZoneNotIn applies the NotIn predicate on the "zone" field.
func ZoneNotIn(vs ...string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNotIn(FieldZone, vs...))
}

// ZoneGT applies the GT predicate on the "zone" field.
func ZoneGT(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldGT(FieldZone, v))
}

// ZoneGTE applies the GTE predicate on the "zone" field.
func ZoneGTE(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldGTE(FieldZone, v))
}

// ZoneLT applies the LT predicate on the "zone" field.
func ZoneLT(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldLT(FieldZone, v))
}

// ZoneLTE applies the LTE predicate on the "zone" field.
func ZoneLTE(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldLTE(FieldZone, v))
}

// ZoneContains applies the Contains predicate on the "zone" field.
func ZoneContains(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldContains(FieldZone, v))
}

// ZoneHasPrefix applies the HasPrefix predicate on the "zone" field.
func ZoneHasPrefix(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldHasPrefix(FieldZone, v))
}

// ZoneHasSuffix applies the HasSuffix predicate on the "zone" field.
func ZoneHasSuffix(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldHasSuffix(FieldZone, v))
}

// ZoneIsNil applies the IsNil predicate on the "zone" field.
func ZoneIsNil() predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldIsNull(FieldZone))
}

// ZoneNotNil applies the NotNil predicate on the "zone" field.
func ZoneNotNil() predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNotNull(FieldZone))
}

// ZoneEqualFold applies the EqualFold predicate on the "zone" field.
func ZoneEqualFold(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEqualFold(FieldZone, v))
}

// ZoneContainsFold applies the ContainsFold predicate on the "zone" field.
func ZoneContainsFold(v string) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldContainsFold(FieldZone, v))
}

// StrokeNumberEQ applies the EQ predicate on the "stroke_number" field.
func StrokeNumberEQ(v int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldEQ(FieldStrokeNumber, v))
}

// StrokeNumberNEQ applies the NEQ predicate on the "stroke_number" field.
func StrokeNumberNEQ(v int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNEQ(FieldStrokeNumber, v))
}

// StrokeNumberIn applies the In predicate on the "stroke_number" field.
func StrokeNumberIn(vs ...int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldIn(FieldStrokeNumber, vs...))
}

// StrokeNumberNotIn applies the NotIn predicate on the "stroke_number" field.
func StrokeNumberNotIn(vs ...int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNotIn(FieldStrokeNumber, vs...))
}

// StrokeNumberGT applies the GT predicate on the "stroke_number" field.
func StrokeNumberGT(v int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldGT(FieldStrokeNumber, v))
}

// StrokeNumberGTE applies the GTE predicate on the "stroke_number" field.
func StrokeNumberGTE(v int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldGTE(FieldStrokeNumber, v))
}

// StrokeNumberLT applies the LT predicate on the "stroke_number" field.
func StrokeNumberLT(v int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldLT(FieldStrokeNumber, v))
}

// StrokeNumberLTE applies the LTE predicate on the "stroke_number" field.
func StrokeNumberLTE(v int) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldLTE(FieldStrokeNumber, v))
}

// PointsIsNil applies the IsNil predicate on the "points" field.
func PointsIsNil() predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldIsNull(FieldPoints))
}

// PointsNotNil applies the NotNil predicate on the "points" field.
func PointsNotNil() predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.FieldNotNull(FieldPoints))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StrokeEvent) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StrokeEvent) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StrokeEvent) predicate.StrokeEvent {
	return predicate.StrokeEvent(sql.NotPredicates(p))
}
