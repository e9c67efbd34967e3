package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// StrokePoint is one sample of a freehand stroke, serialized as JSON.
type StrokePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// StrokeEvent records one completed freehand drawing stroke.
type StrokeEvent struct {
	ent.Schema
}

func (StrokeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StrokeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("task").
			Optional().
			Comment("Task the stroke was drawn on"),
		field.String("zone").
			Optional().
			Comment("Drawing zone within the workspace"),
		field.Int("stroke_number").
			Default(0),
		field.JSON("points", []StrokePoint{}).
			Optional().
			Comment("Complete point sequence"),
	}
}
