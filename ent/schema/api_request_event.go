package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIRequestEvent records every platform API exchange for debugging
// and for monitoring the failure rate of best-effort calls.
type APIRequestEvent struct {
	ent.Schema
}

func (APIRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (APIRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("method").
			NotEmpty().
			Comment("HTTP method"),
		field.String("endpoint").
			NotEmpty().
			Comment("Request path, without host"),
		field.Int("status").
			Default(0).
			Comment("HTTP status, 0 when the request never completed"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the exchange"),
		field.Bool("success").
			Comment("Whether the exchange succeeded"),
		field.Bool("best_effort").
			Default(false).
			Comment("Fire-and-forget call whose failure was swallowed"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
	}
}

func (APIRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("endpoint"),
		index.Fields("success"),
		index.Fields("best_effort"),
	}
}
