// Code generated by ent, DO NOT EDIT.

package codingtask

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLTE(FieldID, id))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldLessonID, v))
}

// TaskOrder applies equality check predicate on the "task_order" field. It's identical to TaskOrderEQ.
func TaskOrder(v int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldTaskOrder, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldTitle, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldDifficulty, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldDescription, v))
}

// MethodName applies equality check predicate on the "method_name" field. It's identical to MethodNameEQ.
func MethodName(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldMethodName, v))
}

// StarterCode applies equality check predicate on the "starter_code" field. It's identical to StarterCodeEQ.
func StarterCode(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldStarterCode, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldContainsFold(FieldLessonID, v))
}

// TaskOrderEQ applies the EQ predicate on the "task_order" field.
func TaskOrderEQ(v int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldTaskOrder, v))
}

// TaskOrderNEQ applies the NEQ predicate on the "task_order" field.
func TaskOrderNEQ(v int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNEQ(FieldTaskOrder, v))
}

// TaskOrderIn applies the In predicate on the "task_order" field.
func TaskOrderIn(vs ...int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldIn(FieldTaskOrder, vs...))
}

// TaskOrderNotIn applies the NotIn predicate on the "task_order" field.
func TaskOrderNotIn(vs ...int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNotIn(FieldTaskOrder, vs...))
}

// TaskOrderGT applies the GT predicate on the "task_order" field.
func TaskOrderGT(v int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGT(FieldTaskOrder, v))
}

// TaskOrderGTE applies the GTE predicate on the "task_order" field.
func TaskOrderGTE(v int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGTE(FieldTaskOrder, v))
}

// TaskOrderLT applies the LT predicate on the "task_order" field.
func TaskOrderLT(v int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLT(FieldTaskOrder, v))
}

// TaskOrderLTE applies the LTE predicate on the "task_order" field.
func TaskOrderLTE(v int) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLTE(FieldTaskOrder, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldContainsFold(FieldTitle, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyIsNil applies the IsNil predicate on the "difficulty" field.
func DifficultyIsNil() predicate.CodingTask {
	return predicate.CodingTask(sql.FieldIsNull(FieldDifficulty))
}

// DifficultyNotNil applies the NotNil predicate on the "difficulty" field.
func DifficultyNotNil() predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNotNull(FieldDifficulty))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldContainsFold(FieldDifficulty, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.CodingTask {
	return predicate.CodingTask(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldContainsFold(FieldDescription, v))
}

// MethodNameEQ applies the EQ predicate on the "method_name" field.
func MethodNameEQ(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldMethodName, v))
}

// MethodNameNEQ applies the NEQ predicate on the "method_name" field.
func MethodNameNEQ(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNEQ(FieldMethodName, v))
}

// MethodNameIn applies the In predicate on the "method_name" field.
func MethodNameIn(vs ...string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldIn(FieldMethodName, vs...))
}

// MethodNameNotIn applies the NotIn predicate on the "method_name" field.
func MethodNameNotIn(vs ...string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNotIn(FieldMethodName, vs...))
}

// MethodNameGT applies the GT predicate on the "method_name" field.
func MethodNameGT(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGT(FieldMethodName, v))
}

// MethodNameGTE applies the GTE predicate on the "method_name" field.
func MethodNameGTE(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGTE(FieldMethodName, v))
}

// MethodNameLT applies the LT predicate on the "method_name" field.
func MethodNameLT(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLT(FieldMethodName, v))
}

// MethodNameLTE applies the LTE predicate on the "method_name" field.
func MethodNameLTE(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLTE(FieldMethodName, v))
}

// MethodNameContains applies the Contains predicate on the "method_name" field.
func MethodNameContains(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldContains(FieldMethodName, v))
}

// MethodNameHasPrefix applies the HasPrefix predicate on the "method_name" field.
func MethodNameHasPrefix(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldHasPrefix(FieldMethodName, v))
}

// MethodNameHasSuffix applies the HasSuffix predicate on the "method_name" field.
func MethodNameHasSuffix(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldHasSuffix(FieldMethodName, v))
}

// MethodNameIsNil applies the IsNil predicate on the "method_name" field.
func MethodNameIsNil() predicate.CodingTask {
	return predicate.CodingTask(sql.FieldIsNull(FieldMethodName))
}

// MethodNameNotNil applies the NotNil predicate on the "method_name" field.
func MethodNameNotNil() predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNotNull(FieldMethodName))
}

// MethodNameEqualFold applies the EqualFold predicate on the "method_name" field.
func MethodNameEqualFold(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEqualFold(FieldMethodName, v))
}

// MethodNameContainsFold applies the ContainsFold predicate on the "method_name" field.
func MethodNameContainsFold(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldContainsFold(FieldMethodName, v))
}

// StarterCodeEQ applies the EQ predicate on the "starter_code" field.
func StarterCodeEQ(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEQ(FieldStarterCode, v))
}

// StarterCodeNEQ applies the NEQ predicate on the "starter_code" field.
func StarterCodeNEQ(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNEQ(FieldStarterCode, v))
}

// StarterCodeIn applies the In predicate on the "starter_code" field.
func StarterCodeIn(vs ...string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldIn(FieldStarterCode, vs...))
}

// StarterCodeNotIn applies the NotIn predicate on the "starter_code" field.
func StarterCodeNotIn(vs ...string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNotIn(FieldStarterCode, vs...))
}

// StarterCodeGT applies the GT predicate on the "starter_code" field.
func StarterCodeGT(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGT(FieldStarterCode, v))
}

// StarterCodeGTE applies the GTE predicate on the "starter_code" field.
func StarterCodeGTE(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldGTE(FieldStarterCode, v))
}

// StarterCodeLT applies the LT predicate on the "starter_code" field.
func StarterCodeLT(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLT(FieldStarterCode, v))
}

// StarterCodeLTE applies the LTE predicate on the "starter_code" field.
func StarterCodeLTE(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldLTE(FieldStarterCode, v))
}

// StarterCodeContains applies the Contains predicate on the "starter_code" field.
func StarterCodeContains(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldContains(FieldStarterCode, v))
}

// StarterCodeHasPrefix applies the HasPrefix predicate on the "starter_code" field.
func StarterCodeHasPrefix(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldHasPrefix(FieldStarterCode, v))
}

// StarterCodeHasSuffix applies the HasSuffix predicate on the "starter_code" field.
func StarterCodeHasSuffix(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldHasSuffix(FieldStarterCode, v))
}

// StarterCodeIsNil applies the IsNil predicate on the "starter_code" field.
func StarterCodeIsNil() predicate.CodingTask {
	return predicate.CodingTask(sql.FieldIsNull(FieldStarterCode))
}

// StarterCodeNotNil applies the NotNil predicate on the "starter_code" field.
func StarterCodeNotNil() predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNotNull(FieldStarterCode))
}

// StarterCodeEqualFold applies the EqualFold predicate on the "starter_code" field.
func StarterCodeEqualFold(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldEqualFold(FieldStarterCode, v))
}

// StarterCodeContainsFold applies the ContainsFold predicate on the "starter_code" field.
func StarterCodeContainsFold(v string) predicate.CodingTask {
	return predicate.CodingTask(sql.FieldContainsFold(FieldStarterCode, v))
}

// ExamplesIsNil applies the IsNil predicate on the "examples" field.
func ExamplesIsNil() predicate.CodingTask {
	return predicate.CodingTask(sql.FieldIsNull(FieldExamples))
}

// ExamplesNotNil applies the NotNil predicate on the "examples" field.
func ExamplesNotNil() predicate.CodingTask {
	return predicate.CodingTask(sql.FieldNotNull(FieldExamples))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CodingTask) predicate.CodingTask {
	return predicate.CodingTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CodingTask) predicate.CodingTask {
	return predicate.CodingTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CodingTask) predicate.CodingTask {
	return predicate.CodingTask(sql.NotPredicates(p))
}
