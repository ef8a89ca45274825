package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeStat accumulates lifetime practice totals per user.
type PracticeStat struct {
	ent.Schema
}

func (PracticeStat) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.Int("total_nodes_completed").
			Default(0).
			NonNegative(),
		field.Int("total_xp_earned").
			Default(0).
			NonNegative(),
		field.String("last_practice_date").
			Optional().
			Comment("ISO date (YYYY-MM-DD) of the most recent completion"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (PracticeStat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
