package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records quiz session lifecycle events
// (start / complete / exhausted / abandon).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("user_id").NotEmpty(),
		field.String("node_id").NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, complete, exhausted, or abandon"),
		field.Int("questions_served").
			Default(0).
			Comment("Questions reached when the session ended (terminal actions only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (terminal actions only)"),
		field.Int("hearts_left").
			Default(0).
			Comment("Hearts remaining when the session ended"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock session length (terminal actions only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("action"),
	}
}
