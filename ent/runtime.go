// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lingobee/lingobee/ent/completion"
	"github.com/lingobee/lingobee/ent/ledger"
	"github.com/lingobee/lingobee/ent/practicestat"
	"github.com/lingobee/lingobee/ent/schema"
	"github.com/lingobee/lingobee/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	completionFields := schema.Completion{}.Fields()
	_ = completionFields
	// completionDescUserID is the schema descriptor for user_id field.
	completionDescUserID := completionFields[0].Descriptor()
	// completion.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	completion.UserIDValidator = completionDescUserID.Validators[0].(func(string) error)
	// completionDescSectionID is the schema descriptor for section_id field.
	completionDescSectionID := completionFields[1].Descriptor()
	// completion.SectionIDValidator is a validator for the "section_id" field. It is called by the builders before save.
	completion.SectionIDValidator = completionDescSectionID.Validators[0].(func(string) error)
	// completionDescNodeID is the schema descriptor for node_id field.
	completionDescNodeID := completionFields[2].Descriptor()
	// completion.NodeIDValidator is a validator for the "node_id" field. It is called by the builders before save.
	completion.NodeIDValidator = completionDescNodeID.Validators[0].(func(string) error)
	// completionDescScore is the schema descriptor for score field.
	completionDescScore := completionFields[3].Descriptor()
	// completion.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	completion.ScoreValidator = completionDescScore.Validators[0].(func(int) error)
	// completionDescXpEarned is the schema descriptor for xp_earned field.
	completionDescXpEarned := completionFields[4].Descriptor()
	// completion.XpEarnedValidator is a validator for the "xp_earned" field. It is called by the builders before save.
	completion.XpEarnedValidator = completionDescXpEarned.Validators[0].(func(int) error)
	// completionDescCompletedAt is the schema descriptor for completed_at field.
	completionDescCompletedAt := completionFields[5].Descriptor()
	// completion.DefaultCompletedAt holds the default value on creation for the completed_at field.
	completion.DefaultCompletedAt = completionDescCompletedAt.Default.(func() time.Time)
	ledgerFields := schema.Ledger{}.Fields()
	_ = ledgerFields
	// ledgerDescUserID is the schema descriptor for user_id field.
	ledgerDescUserID := ledgerFields[0].Descriptor()
	// ledger.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	ledger.UserIDValidator = ledgerDescUserID.Validators[0].(func(string) error)
	// ledgerDescXp is the schema descriptor for xp field.
	ledgerDescXp := ledgerFields[1].Descriptor()
	// ledger.DefaultXp holds the default value on creation for the xp field.
	ledger.DefaultXp = ledgerDescXp.Default.(int)
	// ledgerDescLevel is the schema descriptor for level field.
	ledgerDescLevel := ledgerFields[2].Descriptor()
	// ledger.DefaultLevel holds the default value on creation for the level field.
	ledger.DefaultLevel = ledgerDescLevel.Default.(int)
	// ledger.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	ledger.LevelValidator = ledgerDescLevel.Validators[0].(func(int) error)
	// ledgerDescStreakDays is the schema descriptor for streak_days field.
	ledgerDescStreakDays := ledgerFields[3].Descriptor()
	// ledger.DefaultStreakDays holds the default value on creation for the streak_days field.
	ledger.DefaultStreakDays = ledgerDescStreakDays.Default.(int)
	// ledger.StreakDaysValidator is a validator for the "streak_days" field. It is called by the builders before save.
	ledger.StreakDaysValidator = ledgerDescStreakDays.Validators[0].(func(int) error)
	// ledgerDescUpdatedAt is the schema descriptor for updated_at field.
	ledgerDescUpdatedAt := ledgerFields[4].Descriptor()
	// ledger.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ledger.DefaultUpdatedAt = ledgerDescUpdatedAt.Default.(func() time.Time)
	// ledger.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ledger.UpdateDefaultUpdatedAt = ledgerDescUpdatedAt.UpdateDefault.(func() time.Time)
	practicestatFields := schema.PracticeStat{}.Fields()
	_ = practicestatFields
	// practicestatDescUserID is the schema descriptor for user_id field.
	practicestatDescUserID := practicestatFields[0].Descriptor()
	// practicestat.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	practicestat.UserIDValidator = practicestatDescUserID.Validators[0].(func(string) error)
	// practicestatDescTotalNodesCompleted is the schema descriptor for total_nodes_completed field.
	practicestatDescTotalNodesCompleted := practicestatFields[1].Descriptor()
	// practicestat.DefaultTotalNodesCompleted holds the default value on creation for the total_nodes_completed field.
	practicestat.DefaultTotalNodesCompleted = practicestatDescTotalNodesCompleted.Default.(int)
	// practicestat.TotalNodesCompletedValidator is a validator for the "total_nodes_completed" field. It is called by the builders before save.
	practicestat.TotalNodesCompletedValidator = practicestatDescTotalNodesCompleted.Validators[0].(func(int) error)
	// practicestatDescTotalXpEarned is the schema descriptor for total_xp_earned field.
	practicestatDescTotalXpEarned := practicestatFields[2].Descriptor()
	// practicestat.DefaultTotalXpEarned holds the default value on creation for the total_xp_earned field.
	practicestat.DefaultTotalXpEarned = practicestatDescTotalXpEarned.Default.(int)
	// practicestat.TotalXpEarnedValidator is a validator for the "total_xp_earned" field. It is called by the builders before save.
	practicestat.TotalXpEarnedValidator = practicestatDescTotalXpEarned.Validators[0].(func(int) error)
	// practicestatDescUpdatedAt is the schema descriptor for updated_at field.
	practicestatDescUpdatedAt := practicestatFields[4].Descriptor()
	// practicestat.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	practicestat.DefaultUpdatedAt = practicestatDescUpdatedAt.Default.(func() time.Time)
	// practicestat.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	practicestat.UpdateDefaultUpdatedAt = practicestatDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescNodeID is the schema descriptor for node_id field.
	sessioneventDescNodeID := sessioneventFields[2].Descriptor()
	// sessionevent.NodeIDValidator is a validator for the "node_id" field. It is called by the builders before save.
	sessionevent.NodeIDValidator = sessioneventDescNodeID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescHeartsLeft is the schema descriptor for hearts_left field.
	sessioneventDescHeartsLeft := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultHeartsLeft holds the default value on creation for the hearts_left field.
	sessionevent.DefaultHeartsLeft = sessioneventDescHeartsLeft.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
