package store

import (
	"context"
	"testing"
	"time"

	"github.com/lingobee/lingobee/internal/ledger"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestLedger_FreshUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	l, err := repo.Ledger(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Ledger: %v", err)
	}
	want := ledger.New()
	if l != want {
		t.Errorf("fresh ledger = %+v, want %+v", l, want)
	}
}

func TestInTx_WritesAllOrNothing(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	rec := CompletionRecord{
		UserID:      "u1",
		SectionID:   "s1",
		NodeID:      "n1",
		Score:       100,
		XPEarned:    10,
		CompletedAt: time.Now(),
	}
	l := ledger.Ledger{XP: 10, Level: 1, StreakDays: 1}

	err := repo.InTx(ctx, func(w ProgressWriter) error {
		if err := w.UpsertCompletion(ctx, rec); err != nil {
			return err
		}
		if err := w.SaveLedger(ctx, "u1", l); err != nil {
			return err
		}
		return w.BumpStats(ctx, "u1", 10, "2026-08-31")
	})
	if err != nil {
		t.Fatalf("InTx: %v", err)
	}

	ids, err := repo.CompletedNodeIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("CompletedNodeIDs: %v", err)
	}
	if !ids["n1"] {
		t.Error("n1 not in completed set")
	}

	got, err := repo.Ledger(ctx, "u1")
	if err != nil {
		t.Fatalf("Ledger: %v", err)
	}
	if got != l {
		t.Errorf("ledger = %+v, want %+v", got, l)
	}

	stats, err := repo.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalNodesCompleted != 1 || stats.TotalXPEarned != 10 {
		t.Errorf("stats = %+v, want 1 node / 10 xp", stats)
	}
	if stats.LastPracticeDate != "2026-08-31" {
		t.Errorf("LastPracticeDate = %q", stats.LastPracticeDate)
	}
}

func TestInTx_RollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	boom := context.Canceled
	err := repo.InTx(ctx, func(w ProgressWriter) error {
		if err := w.UpsertCompletion(ctx, CompletionRecord{
			UserID: "u1", SectionID: "s1", NodeID: "n1",
			Score: 100, XPEarned: 10, CompletedAt: time.Now(),
		}); err != nil {
			return err
		}
		return boom
	})
	if err == nil {
		t.Fatal("expected error from InTx")
	}

	ids, err := repo.CompletedNodeIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("CompletedNodeIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("completion leaked past rollback: %v", ids)
	}
}

func TestUpsertCompletion_LastWriteWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	write := func(xp int) error {
		return repo.InTx(ctx, func(w ProgressWriter) error {
			return w.UpsertCompletion(ctx, CompletionRecord{
				UserID: "u1", SectionID: "s1", NodeID: "n1",
				Score: 100, XPEarned: xp, CompletedAt: time.Now(),
			})
		})
	}
	if err := write(10); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := write(20); err != nil {
		t.Fatalf("second write: %v", err)
	}

	rows, err := s.Client().Completion.Query().All(ctx)
	if err != nil {
		t.Fatalf("query completions: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d completion rows, want 1 (replace, not append)", len(rows))
	}
	if rows[0].XpEarned != 20 {
		t.Errorf("XpEarned = %d, want 20 (last write)", rows[0].XpEarned)
	}
}

func TestSessionEvents_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "a", UserID: "u1", NodeID: "n1", Action: "start"},
		{SessionID: "a", UserID: "u1", NodeID: "n1", Action: "complete", QuestionsServed: 3, CorrectAnswers: 3, HeartsLeft: 5, DurationSecs: 60},
		{SessionID: "b", UserID: "u1", NodeID: "n2", Action: "start"},
		{SessionID: "b", UserID: "u1", NodeID: "n2", Action: "exhausted", QuestionsServed: 5, CorrectAnswers: 0, HeartsLeft: 0, DurationSecs: 90},
		{SessionID: "c", UserID: "u2", NodeID: "n1", Action: "complete"},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %s/%s: %v", e.SessionID, e.Action, err)
		}
	}

	recent, err := repo.RecentSessions(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d records, want 2 (terminal events for u1 only)", len(recent))
	}
	// Newest first.
	if recent[0].SessionID != "b" || recent[0].Action != "exhausted" {
		t.Errorf("recent[0] = %+v, want session b exhausted", recent[0])
	}
	if recent[1].SessionID != "a" || recent[1].Action != "complete" {
		t.Errorf("recent[1] = %+v, want session a complete", recent[1])
	}
}

func TestResetUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	events := s.EventRepo()
	ctx := context.Background()

	err := repo.InTx(ctx, func(w ProgressWriter) error {
		if err := w.UpsertCompletion(ctx, CompletionRecord{
			UserID: "u1", SectionID: "s1", NodeID: "n1",
			Score: 100, XPEarned: 10, CompletedAt: time.Now(),
		}); err != nil {
			return err
		}
		if err := w.SaveLedger(ctx, "u1", ledger.Ledger{XP: 10, Level: 1}); err != nil {
			return err
		}
		return w.BumpStats(ctx, "u1", 10, "2026-08-31")
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := events.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "a", UserID: "u1", NodeID: "n1", Action: "complete",
	}); err != nil {
		t.Fatalf("seed event: %v", err)
	}

	if err := s.ResetUser(ctx, "u1"); err != nil {
		t.Fatalf("ResetUser: %v", err)
	}

	ids, _ := repo.CompletedNodeIDs(ctx, "u1")
	if len(ids) != 0 {
		t.Errorf("completions remain: %v", ids)
	}
	l, _ := repo.Ledger(ctx, "u1")
	if l != ledger.New() {
		t.Errorf("ledger not reset: %+v", l)
	}
	recent, _ := events.RecentSessions(ctx, "u1", 10)
	if len(recent) != 0 {
		t.Errorf("events remain: %v", recent)
	}
}
