package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// TestCaseResult records the outcome of running one test case.
type TestCaseResult struct {
	ent.Schema
}

func (TestCaseResult) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TestCaseResult) Fields() []ent.Field {
	return []ent.Field{
		field.Int("task_index"),
		field.String("method_id").
			Optional(),
		field.Int("test_case_index"),
		field.Bool("passed"),
		field.String("error_message").
			Optional().
			Comment("Failure detail, empty when passed"),
	}
}
