// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompletionsColumns holds the columns for the "completions" table.
	CompletionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "section_id", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "xp_earned", Type: field.TypeInt},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// CompletionsTable holds the schema information for the "completions" table.
	CompletionsTable = &schema.Table{
		Name:       "completions",
		Columns:    CompletionsColumns,
		PrimaryKey: []*schema.Column{CompletionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completion_user_id_section_id_node_id",
				Unique:  true,
				Columns: []*schema.Column{CompletionsColumns[1], CompletionsColumns[2], CompletionsColumns[3]},
			},
			{
				Name:    "completion_user_id",
				Unique:  false,
				Columns: []*schema.Column{CompletionsColumns[1]},
			},
		},
	}
	// LedgersColumns holds the columns for the "ledgers" table.
	LedgersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "streak_days", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LedgersTable holds the schema information for the "ledgers" table.
	LedgersTable = &schema.Table{
		Name:       "ledgers",
		Columns:    LedgersColumns,
		PrimaryKey: []*schema.Column{LedgersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ledger_user_id",
				Unique:  true,
				Columns: []*schema.Column{LedgersColumns[1]},
			},
		},
	}
	// PracticeStatsColumns holds the columns for the "practice_stats" table.
	PracticeStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "total_nodes_completed", Type: field.TypeInt, Default: 0},
		{Name: "total_xp_earned", Type: field.TypeInt, Default: 0},
		{Name: "last_practice_date", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PracticeStatsTable holds the schema information for the "practice_stats" table.
	PracticeStatsTable = &schema.Table{
		Name:       "practice_stats",
		Columns:    PracticeStatsColumns,
		PrimaryKey: []*schema.Column{PracticeStatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicestat_user_id",
				Unique:  true,
				Columns: []*schema.Column{PracticeStatsColumns[1]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "questions_served", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "hearts_left", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompletionsTable,
		LedgersTable,
		PracticeStatsTable,
		SessionEventsTable,
	}
)

func init() {
}
