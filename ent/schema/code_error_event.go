package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// CodeErrorEvent records a compile or runtime error shown to the learner.
type CodeErrorEvent struct {
	ent.Schema
}

func (CodeErrorEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CodeErrorEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("task_index"),
		field.Text("error_message"),
	}
}
