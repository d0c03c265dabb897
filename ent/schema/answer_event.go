package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answer exchange within an attempt.
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
			Comment("Links to SessionEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Server-assigned question id"),
		field.String("answer_kind").
			NotEmpty().
			Comment("mcq or spr"),
		field.String("response").
			Comment("Choice index (mcq) or entered text (spr)"),
		field.Bool("checked").
			Comment("Whether correctness was disclosed"),
		field.Bool("correct").
			Default(false).
			Comment("Verdict, meaningful only when checked"),
		field.Int("time_spent_secs").
			Default(0).
			Comment("Seconds spent on the question"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}
