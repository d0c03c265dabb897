package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records attempt lifecycle events (start/resume/submit/
// complete/fail) for both test and practice attempts.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID grouping events in one attempt"),
		field.String("mode").
			NotEmpty().
			Comment("test or practice"),
		field.String("action").
			NotEmpty().
			Comment("start, resume, submit, complete, or fail"),
		field.String("title").
			Default("").
			Comment("Assessment title (on start only)"),
		field.Int("questions_answered").
			Default(0).
			Comment("Answered count at the time of the event"),
		field.Bool("by_timer").
			Default(false).
			Comment("Whether timer expiry forced the submit"),
		field.String("detail").
			Default("").
			Comment("Error message (on fail only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("action"),
	}
}
