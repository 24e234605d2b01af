package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded answer within an attempt.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Links to AttemptEvent"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("question_type").
			NotEmpty().
			Comment("mcq, tf, or fill"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.String("category").
			NotEmpty().
			Comment("Question category"),
		field.String("correct_answer").
			Comment("The canonical correct answer"),
		field.String("given_answer").
			Comment("What the user entered or picked"),
		field.String("outcome").
			NotEmpty().
			Comment("correct, partial, or incorrect"),
		field.Int("points").
			Comment("Points awarded"),
		field.Int("time_ms").
			Comment("Milliseconds spent, pauses excluded"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("category"),
		index.Fields("outcome"),
	}
}
