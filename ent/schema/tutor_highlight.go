package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// TutorHighlight records the tutor highlighting a code line.
type TutorHighlight struct {
	ent.Schema
}

func (TutorHighlight) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TutorHighlight) Fields() []ent.Field {
	return []ent.Field{
		field.Int("line_number"),
	}
}
