package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answered question, in an assessment or a
// practice quiz.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("mode").
			Comment("assessment or practice"),
		field.String("question_id").NotEmpty(),
		field.String("category"),
		field.String("difficulty"),
		field.Int("selected").
			Comment("Chosen option index, -1 when time ran out"),
		field.Int("correct_answer"),
		field.Bool("correct"),
		field.Int64("time_ms"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("session_id"),
	}
}
