package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TutorConversation is an interval event: one voice conversation with the
// tutor. Unlike the point-event streams it carries its own start and end
// timestamps, so it does not use the EventMixin.
type TutorConversation struct {
	ent.Schema
}

func (TutorConversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("conversation_id").
			NotEmpty().
			Comment("Voice service conversation id, used to fetch audio"),
		field.String("start_time").
			NotEmpty().
			Comment("Recorded start timestamp string, preserved exactly"),
		field.String("end_time").
			Optional().
			Comment("Recorded end timestamp string; empty when the conversation was still open at session end"),
	}
}

func (TutorConversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "start_time"),
	}
}
