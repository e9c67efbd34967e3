package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UserHighlight records the learner highlighting text in the workspace.
type UserHighlight struct {
	ent.Schema
}

func (UserHighlight) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (UserHighlight) Fields() []ent.Field {
	return []ent.Field{
		field.Text("highlighted_text"),
	}
}
