package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records the start and end of a tier assessment.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("tier").NotEmpty(),
		field.String("action").
			Comment("start, complete or abandon"),
		field.Int("questions").Default(0),
		field.Int("correct_answers").Default(0),
		field.Int("percentage").Default(0),
		field.Bool("passed").Default(false),
		field.Int("points").Default(0),
		field.String("skill_level").Default(""),
		field.Int("duration_secs").Default(0),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("tier"),
	}
}
