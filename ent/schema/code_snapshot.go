package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// CodeSnapshot records the full editor contents at one moment.
type CodeSnapshot struct {
	ent.Schema
}

func (CodeSnapshot) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CodeSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int("task_index").
			Comment("Task the learner was editing"),
		field.String("method_id").
			Optional().
			Comment("Method the snapshot belongs to"),
		field.Text("code_content").
			Comment("Full editor contents"),
	}
}
