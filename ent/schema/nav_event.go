package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// NavEvent records the learner navigating between tasks. The to_task_index
// of the latest event is the authoritative active task during replay.
type NavEvent struct {
	ent.Schema
}

func (NavEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (NavEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("from_task_index"),
		field.Int("to_task_index"),
		field.String("navigation_direction").
			Optional().
			Comment("forward or backward"),
	}
}
