// Package progress records the outcome of a finished quiz session: the
// completion row, the XP ledger update, and the lifetime stats bump, all
// committed together.
package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lingobee/lingobee/internal/curriculum"
	"github.com/lingobee/lingobee/internal/ledger"
	"github.com/lingobee/lingobee/internal/quiz"
	"github.com/lingobee/lingobee/internal/store"
)

// ErrSessionNotComplete is returned when Record is called for a session
// that did not end with every question answered correctly.
var ErrSessionNotComplete = errors.New("progress: session is not complete")

// Result describes what a recorded completion changed.
type Result struct {
	LedgerAfter ledger.Ledger
	XPGained    int
	LeveledUp   bool
}

// Apply computes the ledger after awarding xpReward, without persisting
// anything. streakContinued extends the streak by one day; a false value
// leaves it untouched.
func Apply(before ledger.Ledger, xpReward int, streakContinued bool) (Result, error) {
	after, err := ledger.ApplyXP(before, xpReward)
	if err != nil {
		return Result{}, err
	}
	if streakContinued {
		after.StreakDays++
	}
	return Result{
		LedgerAfter: after,
		XPGained:    xpReward,
		LeveledUp:   after.Level > before.Level,
	}, nil
}

// StreakContinued reports whether completing practice now extends the
// daily streak. The first completion of a calendar day does; repeat
// completions on the same day do not.
func StreakContinued(lastPracticeDate string, now time.Time) bool {
	return lastPracticeDate != now.Format("2006-01-02")
}

// Recorder persists session outcomes through a ProgressRepo.
type Recorder struct {
	repo store.ProgressRepo
	now  func() time.Time
}

// NewRecorder returns a Recorder writing through repo.
func NewRecorder(repo store.ProgressRepo) *Recorder {
	return &Recorder{repo: repo, now: time.Now}
}

// Record persists the completion of node by userID. The session must have
// finished with ResultComplete; a perfect run is the only way to earn the
// node's XP reward. The completion row, ledger update, and stats bump are
// written in one transaction.
func (r *Recorder) Record(ctx context.Context, userID string, node *curriculum.Node, sectionID string, sess *quiz.Session, streakContinued bool) (Result, error) {
	if sess.Result() != quiz.Complete {
		return Result{}, ErrSessionNotComplete
	}

	before, err := r.repo.Ledger(ctx, userID)
	if err != nil {
		return Result{}, fmt.Errorf("load ledger: %w", err)
	}

	res, err := Apply(before, node.XPReward, streakContinued)
	if err != nil {
		return Result{}, err
	}

	now := r.now()
	rec := store.CompletionRecord{
		UserID:      userID,
		SectionID:   sectionID,
		NodeID:      node.ID,
		Score:       100,
		XPEarned:    node.XPReward,
		CompletedAt: now,
	}

	err = r.repo.InTx(ctx, func(w store.ProgressWriter) error {
		if err := w.UpsertCompletion(ctx, rec); err != nil {
			return fmt.Errorf("upsert completion: %w", err)
		}
		if err := w.SaveLedger(ctx, userID, res.LedgerAfter); err != nil {
			return fmt.Errorf("save ledger: %w", err)
		}
		if err := w.BumpStats(ctx, userID, node.XPReward, now.Format("2006-01-02")); err != nil {
			return fmt.Errorf("bump stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
