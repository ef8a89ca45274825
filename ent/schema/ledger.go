package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ledger holds a user's persistent XP, level, and streak state.
// One row per user; the recorder rewrites it after each completed session.
type Ledger struct {
	ent.Schema
}

func (Ledger) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.Int("xp").
			Default(0).
			Comment("Always in [0, 100); overflow is consumed into level"),
		field.Int("level").
			Default(1).
			Positive(),
		field.Int("streak_days").
			Default(0).
			NonNegative(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Ledger) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
