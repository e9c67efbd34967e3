package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// TaskProgressEvent records a point-in-time progress report for one task.
type TaskProgressEvent struct {
	ent.Schema
}

func (TaskProgressEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TaskProgressEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("task_index"),
		field.Bool("completed").
			Default(false),
		field.Int("attempts").
			Default(0),
		field.Int("test_cases_passed").
			Default(0),
		field.Int("total_test_cases").
			Default(0),
	}
}
