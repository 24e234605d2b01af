package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one completed quiz attempt. Per-question detail
// lives in AnswerEvent rows sharing the attempt_id.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID grouping events of one attempt"),
		field.String("quiz").
			NotEmpty().
			Comment("Quiz title"),
		field.Int("score").
			Comment("Points earned"),
		field.Int("possible").
			Comment("Points available"),
		field.Float("percentage").
			Comment("Final percentage, scoring-mode dependent"),
		field.Bool("passed").
			Comment("Whether the percentage met the pass threshold"),
		field.Int("correct_answers").
			Default(0).
			Comment("Fully correct answers"),
		field.Int("questions_total").
			Default(0).
			Comment("Questions in the attempt"),
		field.Int("duration_secs").
			Default(0).
			Comment("Active time excluding pauses, in seconds"),
		field.Bool("adaptive").
			Default(false).
			Comment("Whether the pool grew adaptively"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("quiz"),
		index.Fields("passed"),
	}
}
