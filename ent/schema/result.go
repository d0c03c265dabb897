package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Result is one completed attempt in the local history. Unlike the
// event tables this is a plain record, queried for the history screen.
type Result struct {
	ent.Schema
}

func (Result) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("UUID of the attempt"),
		field.String("mode").
			NotEmpty().
			Comment("test or practice"),
		field.String("title").
			Comment("Assessment title"),
		field.Float("score_percentage").
			Comment("Final score 0-100"),
		field.Int("questions_correct"),
		field.Int("total_questions"),
		field.Int("time_spent_secs").
			Default(0),
		field.Bool("by_timer").
			Default(false).
			Comment("Submit forced by timer expiry"),
		field.Float("ability_start").
			Default(0).
			Comment("Practice only"),
		field.Float("ability_end").
			Default(0).
			Comment("Practice only"),
		field.Time("taken_at").
			Default(time.Now),
	}
}

func (Result) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("taken_at"),
		index.Fields("mode"),
	}
}
