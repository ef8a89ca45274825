package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lingobee/lingobee/internal/curriculum"
	"github.com/lingobee/lingobee/internal/ledger"
	"github.com/lingobee/lingobee/internal/quiz"
	"github.com/lingobee/lingobee/internal/store"
)

type fakeWriter struct {
	completions []store.CompletionRecord
	ledgers     map[string]ledger.Ledger
	statXP      int
	statNodes   int
	statDate    string
}

func (w *fakeWriter) UpsertCompletion(_ context.Context, rec store.CompletionRecord) error {
	w.completions = append(w.completions, rec)
	return nil
}

func (w *fakeWriter) SaveLedger(_ context.Context, userID string, l ledger.Ledger) error {
	w.ledgers[userID] = l
	return nil
}

func (w *fakeWriter) BumpStats(_ context.Context, _ string, xpEarned int, practiceDate string) error {
	w.statNodes++
	w.statXP += xpEarned
	w.statDate = practiceDate
	return nil
}

type fakeRepo struct {
	writer    fakeWriter
	ledgerErr error
	txErr     error
}

func (r *fakeRepo) CompletedNodeIDs(context.Context, string) (map[string]bool, error) {
	return nil, nil
}

func (r *fakeRepo) Ledger(_ context.Context, userID string) (ledger.Ledger, error) {
	if r.ledgerErr != nil {
		return ledger.Ledger{}, r.ledgerErr
	}
	if l, ok := r.writer.ledgers[userID]; ok {
		return l, nil
	}
	return ledger.New(), nil
}

func (r *fakeRepo) Stats(context.Context, string) (store.PracticeStats, error) {
	return store.PracticeStats{}, nil
}

func (r *fakeRepo) InTx(_ context.Context, fn func(store.ProgressWriter) error) error {
	if r.txErr != nil {
		return r.txErr
	}
	return fn(&r.writer)
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{writer: fakeWriter{ledgers: map[string]ledger.Ledger{}}}
}

func testNode() *curriculum.Node {
	return &curriculum.Node{
		ID:       "n1",
		Title:    "Greetings",
		XPReward: 10,
		Questions: []curriculum.Question{{
			ID:             "q1",
			Sentence:       "Aku suka lebah",
			Instruction:    "Translate this sentence",
			AvailableWords: []string{"I", "love", "bees"},
			CorrectAnswer:  []string{"I", "love", "bees"},
		}},
	}
}

func completedSession(t *testing.T, node *curriculum.Node) *quiz.Session {
	t.Helper()
	s, err := quiz.NewSession(node.Questions, quiz.IdentityShuffler{})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	for _, w := range node.Questions[0].CorrectAnswer {
		s.SelectWord(w)
	}
	if _, err := s.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if s.Result() != quiz.Complete {
		t.Fatalf("session result = %v, want complete", s.Result())
	}
	return s
}

func TestApply(t *testing.T) {
	tests := []struct {
		name            string
		before          ledger.Ledger
		xp              int
		streakContinued bool
		want            Result
	}{
		{
			name:   "no level up",
			before: ledger.Ledger{XP: 10, Level: 1},
			xp:     20,
			want: Result{
				LedgerAfter: ledger.Ledger{XP: 30, Level: 1},
				XPGained:    20,
			},
		},
		{
			name:   "level up carries remainder",
			before: ledger.Ledger{XP: 95, Level: 2},
			xp:     10,
			want: Result{
				LedgerAfter: ledger.Ledger{XP: 5, Level: 3},
				XPGained:    10,
				LeveledUp:   true,
			},
		},
		{
			name:            "streak continued adds a day",
			before:          ledger.Ledger{XP: 0, Level: 1, StreakDays: 3},
			xp:              10,
			streakContinued: true,
			want: Result{
				LedgerAfter: ledger.Ledger{XP: 10, Level: 1, StreakDays: 4},
				XPGained:    10,
			},
		},
		{
			name:   "streak untouched otherwise",
			before: ledger.Ledger{XP: 0, Level: 1, StreakDays: 3},
			xp:     10,
			want: Result{
				LedgerAfter: ledger.Ledger{XP: 10, Level: 1, StreakDays: 3},
				XPGained:    10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.before, tt.xp, tt.streakContinued)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApply_NegativeXP(t *testing.T) {
	_, err := Apply(ledger.New(), -1, false)
	if !errors.Is(err, ledger.ErrNegativeXP) {
		t.Errorf("err = %v, want ErrNegativeXP", err)
	}
}

func TestStreakContinued(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	if !StreakContinued("", now) {
		t.Error("first practice ever should extend the streak")
	}
	if !StreakContinued("2026-08-30", now) {
		t.Error("first practice of a new day should extend the streak")
	}
	if StreakContinued("2026-08-31", now) {
		t.Error("second practice on the same day should not extend the streak")
	}
}

func TestRecord_PersistsEverything(t *testing.T) {
	repo := newFakeRepo()
	repo.writer.ledgers["u1"] = ledger.Ledger{XP: 95, Level: 1, StreakDays: 2}

	node := testNode()
	sess := completedSession(t, node)

	r := NewRecorder(repo)
	r.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }

	res, err := r.Record(context.Background(), "u1", node, "s1", sess, true)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	want := ledger.Ledger{XP: 5, Level: 2, StreakDays: 3}
	if res.LedgerAfter != want {
		t.Errorf("LedgerAfter = %+v, want %+v", res.LedgerAfter, want)
	}
	if !res.LeveledUp {
		t.Error("expected LeveledUp")
	}
	if res.XPGained != 10 {
		t.Errorf("XPGained = %d, want 10", res.XPGained)
	}

	if len(repo.writer.completions) != 1 {
		t.Fatalf("got %d completions, want 1", len(repo.writer.completions))
	}
	rec := repo.writer.completions[0]
	if rec.UserID != "u1" || rec.SectionID != "s1" || rec.NodeID != "n1" {
		t.Errorf("completion keys = %s/%s/%s", rec.UserID, rec.SectionID, rec.NodeID)
	}
	if rec.Score != 100 {
		t.Errorf("Score = %d, want 100", rec.Score)
	}
	if rec.XPEarned != 10 {
		t.Errorf("XPEarned = %d, want 10", rec.XPEarned)
	}

	if got := repo.writer.ledgers["u1"]; got != want {
		t.Errorf("saved ledger = %+v, want %+v", got, want)
	}
	if repo.writer.statNodes != 1 || repo.writer.statXP != 10 {
		t.Errorf("stats bump = %d nodes / %d xp", repo.writer.statNodes, repo.writer.statXP)
	}
	if repo.writer.statDate != "2026-08-31" {
		t.Errorf("practice date = %q", repo.writer.statDate)
	}
}

func TestRecord_RejectsUnfinishedSession(t *testing.T) {
	repo := newFakeRepo()
	node := testNode()
	sess, err := quiz.NewSession(node.Questions, quiz.IdentityShuffler{})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	_, err = NewRecorder(repo).Record(context.Background(), "u1", node, "s1", sess, false)
	if !errors.Is(err, ErrSessionNotComplete) {
		t.Errorf("err = %v, want ErrSessionNotComplete", err)
	}
	if len(repo.writer.completions) != 0 {
		t.Error("unfinished session must not write anything")
	}
}

func TestRecord_TxErrorPropagates(t *testing.T) {
	repo := newFakeRepo()
	repo.txErr = errors.New("disk full")

	node := testNode()
	sess := completedSession(t, node)

	_, err := NewRecorder(repo).Record(context.Background(), "u1", node, "s1", sess, false)
	if err == nil || !errors.Is(err, repo.txErr) {
		t.Errorf("err = %v, want tx error", err)
	}
}
