package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskExample is one input/output example for a coding task, serialized as
// JSON.
type TaskExample struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// CodingTask is the static lesson-structure definition of one task. It is
// not time-dependent; replay consults it to resolve the active task index
// into renderable content.
type CodingTask struct {
	ent.Schema
}

func (CodingTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").
			NotEmpty(),
		field.Int("task_order").
			Comment("Position within the lesson, matches replay task indexes"),
		field.String("title").
			NotEmpty(),
		field.String("difficulty").
			Optional(),
		field.Text("description").
			Optional(),
		field.String("method_name").
			Optional().
			Comment("Method the learner implements"),
		field.Text("starter_code").
			Optional().
			Comment("Template shown before the first code snapshot"),
		field.JSON("examples", []TaskExample{}).
			Optional(),
	}
}

func (CodingTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id", "task_order"),
	}
}
