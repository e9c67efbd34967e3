// Code generated by ent, DO NOT EDIT.

package learningsession

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldSessionID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldLessonID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldStatus, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldDurationMs, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldSessionID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldLessonID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldStatus, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtContains applies the Contains predicate on the "started_at" field.
func StartedAtContains(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContains(FieldStartedAt, v))
}

// StartedAtHasPrefix applies the HasPrefix predicate on the "started_at" field.
func StartedAtHasPrefix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasPrefix(FieldStartedAt, v))
}

// StartedAtHasSuffix applies the HasSuffix predicate on the "started_at" field.
func StartedAtHasSuffix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasSuffix(FieldStartedAt, v))
}

// StartedAtEqualFold applies the EqualFold predicate on the "started_at" field.
func StartedAtEqualFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldStartedAt, v))
}

// StartedAtContainsFold applies the ContainsFold predicate on the "started_at" field.
func StartedAtContainsFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtContains applies the Contains predicate on the "completed_at" field.
func CompletedAtContains(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContains(FieldCompletedAt, v))
}

// CompletedAtHasPrefix applies the HasPrefix predicate on the "completed_at" field.
func CompletedAtHasPrefix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasPrefix(FieldCompletedAt, v))
}

// CompletedAtHasSuffix applies the HasSuffix predicate on the "completed_at" field.
func CompletedAtHasSuffix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasSuffix(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotNull(FieldCompletedAt))
}

// CompletedAtEqualFold applies the EqualFold predicate on the "completed_at" field.
func CompletedAtEqualFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldCompletedAt, v))
}

// CompletedAtContainsFold applies the ContainsFold predicate on the "completed_at" field.
func CompletedAtContainsFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldCompletedAt, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldDurationMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningSession) predicate.LearningSession {
	return predicate.LearningSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningSession) predicate.LearningSession {
	return predicate.LearningSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningSession) predicate.LearningSession {
	return predicate.LearningSession(sql.NotPredicates(p))
}
