// Code generated by ent, DO NOT EDIT.

package userhighlight

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldEQ(FieldSessionID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldEQ(FieldTimestamp, v))
}

// HighlightedText applies equality check predicate on the "highlighted_text" field. It's identical to HighlightedTextEQ.
func HighlightedText(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldEQ(FieldHighlightedText, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldContainsFold(FieldSessionID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldLTE(FieldTimestamp, v))
}

// TimestampContains applies the Contains predicate on the "timestamp" field.
func TimestampContains(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldContains(FieldTimestamp, v))
}

// TimestampHasPrefix applies the HasPrefix predicate on the "timestamp" field.
func TimestampHasPrefix(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldHasPrefix(FieldTimestamp, v))
}

// TimestampHasSuffix applies the HasSuffix predicate on the "timestamp" field.
func TimestampHasSuffix(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldHasSuffix(FieldTimestamp, v))
}

// TimestampEqualFold applies the EqualFold predicate on the "timestamp" field.
func TimestampEqualFold(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldEqualFold(FieldTimestamp, v))
}

// TimestampContainsFold applies the ContainsFold predicate on the "timestamp" field.
func TimestampContainsFold(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldContainsFold(FieldTimestamp, v))
}

// HighlightedTextEQ applies the EQ predicate on the "highlighted_text" field.
func HighlightedTextEQ(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldEQ(FieldHighlightedText, v))
}

// HighlightedTextNEQ applies the NEQ predicate on the "highlighted_text" field.
func HighlightedTextNEQ(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldNEQ(FieldHighlightedText, v))
}

// HighlightedTextIn applies the In predicate on the "highlighted_text" field.
func HighlightedTextIn(vs ...string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldIn(FieldHighlightedText, vs...))
}

// HighlightedTextNotIn applies the NotIn predicate on the "highlighted_text" field.
func HighlightedTextNotIn(vs ...string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldNotIn(FieldHighlightedText, vs...))
}

// HighlightedTextGT applies the GT predicate on the "highlighted_text" field.
func HighlightedTextGT(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldGT(FieldHighlightedText, v))
}

// HighlightedTextGTE applies the GTE predicate on the "highlighted_text" field.
func HighlightedTextGTE(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldGTE(FieldHighlightedText, v))
}

// HighlightedTextLT applies the LT predicate on the "highlighted_text" field.
func HighlightedTextLT(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldLT(FieldHighlightedText, v))
}

// HighlightedTextLTE applies the LTE predicate on the "highlighted_text" field.
func HighlightedTextLTE(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldLTE(FieldHighlightedText, v))
}

// HighlightedTextContains applies the Contains predicate on the "highlighted_text" field.
func HighlightedTextContains(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldContains(FieldHighlightedText, v))
}

// HighlightedTextHasPrefix applies the HasPrefix predicate on the "highlighted_text" field.
func HighlightedTextHasPrefix(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldHasPrefix(FieldHighlightedText, v))
}

// HighlightedTextHasSuffix applies the HasSuffix predicate on the "highlighted_text" field.
func HighlightedTextHasSuffix(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldHasSuffix(FieldHighlightedText, v))
}

// HighlightedTextEqualFold applies the EqualFold predicate on the "highlighted_text" field.
func HighlightedTextEqualFold(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldEqualFold(FieldHighlightedText, v))
}

// HighlightedTextContainsFold applies the ContainsFold predicate on the "highlighted_text" field.
func HighlightedTextContainsFold(v string) predicate.UserHighlight {
	return predicate.UserHighlight(sql.FieldContainsFold(FieldHighlightedText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserHighlight) predicate.UserHighlight {
	return predicate.UserHighlight(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserHighlight) predicate.UserHighlight {
	return predicate.UserHighlight(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserHighlight) predicate.UserHighlight {
	return predicate.UserHighlight(sql.NotPredicates(p))
}
