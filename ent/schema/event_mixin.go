package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin provides the base fields shared by every recorded event stream.
// The timestamp is stored verbatim as the recording platform produced it:
// an ISO-8601-like string that may or may not carry a timezone suffix. The
// replay layer normalizes it; the store never reinterprets it.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Immutable().
			Comment("Session the event was recorded in"),
		field.String("timestamp").
			NotEmpty().
			Immutable().
			Comment("Recorded timestamp string, preserved exactly"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "timestamp"),
	}
}
