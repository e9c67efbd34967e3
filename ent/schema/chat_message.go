package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ChatMessage is one chat message between learner and tutor.
type ChatMessage struct {
	ent.Schema
}

func (ChatMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("role").
			NotEmpty().
			Comment("user or assistant"),
		field.Text("content"),
	}
}
