package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Completion is the durable record that a user finished a node.
// At most one row exists per (user, section, node); a later completion
// replaces the earlier one via upsert.
type Completion struct {
	ent.Schema
}

func (Completion) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("section_id").NotEmpty(),
		field.String("node_id").NotEmpty(),
		field.Int("score").
			NonNegative().
			Comment("0-100; always 100 under the perfect-completion rule"),
		field.Int("xp_earned").NonNegative(),
		field.Time("completed_at").
			Default(time.Now),
	}
}

func (Completion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "section_id", "node_id").Unique(),
		index.Fields("user_id"),
	}
}
