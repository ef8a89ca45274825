package store

import (
	"context"
	"time"

	"github.com/lingobee/lingobee/internal/ledger"
)

// CompletionRecord is the durable evidence that a user finished a node.
// Keyed by (UserID, SectionID, NodeID); writes replace, never append.
type CompletionRecord struct {
	UserID      string
	SectionID   string
	NodeID      string
	Score       int
	XPEarned    int
	CompletedAt time.Time
}

// PracticeStats are a user's lifetime practice totals.
type PracticeStats struct {
	TotalNodesCompleted int
	TotalXPEarned       int
	LastPracticeDate    string // ISO date (YYYY-MM-DD), empty if never practiced
}

// ProgressWriter is the transactional write surface the recorder uses.
// All three writes happen inside one transaction or not at all.
type ProgressWriter interface {
	// UpsertCompletion inserts the record or replaces the existing row
	// for the same (user, section, node). Last write wins.
	UpsertCompletion(ctx context.Context, rec CompletionRecord) error

	// SaveLedger writes the user's ledger, creating it if absent.
	SaveLedger(ctx context.Context, userID string, l ledger.Ledger) error

	// BumpStats adds one completed node and the earned XP to the user's
	// lifetime totals and stamps the practice date.
	BumpStats(ctx context.Context, userID string, xpEarned int, practiceDate string) error
}

// ProgressRepo provides read access to a user's progression state and a
// transactional unit for the recorder's combined write.
type ProgressRepo interface {
	// CompletedNodeIDs returns the set of node IDs the user has completed.
	CompletedNodeIDs(ctx context.Context, userID string) (map[string]bool, error)

	// Ledger returns the user's ledger, or the fresh-user ledger if the
	// user has never practiced.
	Ledger(ctx context.Context, userID string) (ledger.Ledger, error)

	// Stats returns the user's lifetime practice totals.
	Stats(ctx context.Context, userID string) (PracticeStats, error)

	// InTx runs fn inside a transaction; any error rolls everything back.
	InTx(ctx context.Context, fn func(ProgressWriter) error) error
}

// SessionEventData captures one quiz session lifecycle event.
type SessionEventData struct {
	SessionID       string
	UserID          string
	NodeID          string
	Action          string // start, complete, exhausted, or abandon
	QuestionsServed int
	CorrectAnswers  int
	HeartsLeft      int
	DurationSecs    int
}

// SessionRecord is a finished session as read back for history views.
type SessionRecord struct {
	SessionID       string
	NodeID          string
	Action          string
	QuestionsServed int
	CorrectAnswers  int
	HeartsLeft      int
	DurationSecs    int
	Timestamp       time.Time
}

// EventRepo provides append and query access to the session event log.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// RecentSessions returns the user's most recent terminal session
	// events (complete/exhausted/abandon), newest first.
	RecentSessions(ctx context.Context, userID string, limit int) ([]SessionRecord, error)
}
