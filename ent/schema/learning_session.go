package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningSession is one recorded tutoring session, the root of a replay.
type LearningSession struct {
	ent.Schema
}

func (LearningSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Platform session UUID"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson the session was taken in"),
		field.String("status").
			Default("completed").
			Comment("completed or ongoing"),
		field.String("started_at").
			NotEmpty().
			Comment("Recorded start timestamp string, preserved exactly"),
		field.String("completed_at").
			Optional().
			Comment("Recorded end timestamp string; empty while ongoing"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Duration frozen at import time; stale for ongoing sessions"),
	}
}

func (LearningSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
	}
}
