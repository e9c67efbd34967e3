package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PanelEvent records the tutor panel being opened or closed.
type PanelEvent struct {
	ent.Schema
}

func (PanelEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PanelEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("current_task_index").
			Default(0),
		field.String("interaction_type").
			NotEmpty().
			Comment("open or close"),
	}
}
