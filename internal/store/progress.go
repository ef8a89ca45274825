package store

import (
	"context"
	"fmt"

	"github.com/lingobee/lingobee/ent"
	"github.com/lingobee/lingobee/ent/completion"
	entledger "github.com/lingobee/lingobee/ent/ledger"
	"github.com/lingobee/lingobee/ent/practicestat"
	"github.com/lingobee/lingobee/ent/sessionevent"
	"github.com/lingobee/lingobee/internal/ledger"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) CompletedNodeIDs(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := r.client.Completion.Query().
		Where(completion.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completions: %w", err)
	}

	ids := make(map[string]bool, len(rows))
	for _, c := range rows {
		ids[c.NodeID] = true
	}
	return ids, nil
}

func (r *progressRepo) Ledger(ctx context.Context, userID string) (ledger.Ledger, error) {
	row, err := r.client.Ledger.Query().
		Where(entledger.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ledger.New(), nil
		}
		return ledger.Ledger{}, fmt.Errorf("query ledger: %w", err)
	}
	return ledger.Ledger{XP: row.Xp, Level: row.Level, StreakDays: row.StreakDays}, nil
}

func (r *progressRepo) Stats(ctx context.Context, userID string) (PracticeStats, error) {
	row, err := r.client.PracticeStat.Query().
		Where(practicestat.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return PracticeStats{}, nil
		}
		return PracticeStats{}, fmt.Errorf("query practice stats: %w", err)
	}
	return PracticeStats{
		TotalNodesCompleted: row.TotalNodesCompleted,
		TotalXPEarned:       row.TotalXpEarned,
		LastPracticeDate:    row.LastPracticeDate,
	}, nil
}

func (r *progressRepo) InTx(ctx context.Context, fn func(ProgressWriter) error) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(&progressWriter{tx: tx}); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// progressWriter implements ProgressWriter against an open transaction.
type progressWriter struct {
	tx *ent.Tx
}

func (w *progressWriter) UpsertCompletion(ctx context.Context, rec CompletionRecord) error {
	err := w.tx.Completion.Create().
		SetUserID(rec.UserID).
		SetSectionID(rec.SectionID).
		SetNodeID(rec.NodeID).
		SetScore(rec.Score).
		SetXpEarned(rec.XPEarned).
		SetCompletedAt(rec.CompletedAt).
		OnConflictColumns(completion.FieldUserID, completion.FieldSectionID, completion.FieldNodeID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert completion: %w", err)
	}
	return nil
}

func (w *progressWriter) SaveLedger(ctx context.Context, userID string, l ledger.Ledger) error {
	row, err := w.tx.Ledger.Query().
		Where(entledger.UserID(userID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query ledger: %w", err)
		}
		_, err = w.tx.Ledger.Create().
			SetUserID(userID).
			SetXp(l.XP).
			SetLevel(l.Level).
			SetStreakDays(l.StreakDays).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create ledger: %w", err)
		}
		return nil
	}

	_, err = w.tx.Ledger.UpdateOne(row).
		SetXp(l.XP).
		SetLevel(l.Level).
		SetStreakDays(l.StreakDays).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update ledger: %w", err)
	}
	return nil
}

func (w *progressWriter) BumpStats(ctx context.Context, userID string, xpEarned int, practiceDate string) error {
	row, err := w.tx.PracticeStat.Query().
		Where(practicestat.UserID(userID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query practice stats: %w", err)
		}
		_, err = w.tx.PracticeStat.Create().
			SetUserID(userID).
			SetTotalNodesCompleted(1).
			SetTotalXpEarned(xpEarned).
			SetLastPracticeDate(practiceDate).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create practice stats: %w", err)
		}
		return nil
	}

	_, err = w.tx.PracticeStat.UpdateOne(row).
		AddTotalNodesCompleted(1).
		AddTotalXpEarned(xpEarned).
		SetLastPracticeDate(practiceDate).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update practice stats: %w", err)
	}
	return nil
}

// ResetUser deletes every row belonging to userID: completions, ledger,
// stats, and session events. Used by the reset command.
func (s *Store) ResetUser(ctx context.Context, userID string) error {
	if _, err := s.client.Completion.Delete().
		Where(completion.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete completions: %w", err)
	}
	if _, err := s.client.Ledger.Delete().
		Where(entledger.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete ledger: %w", err)
	}
	if _, err := s.client.PracticeStat.Delete().
		Where(practicestat.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete practice stats: %w", err)
	}
	if _, err := s.client.SessionEvent.Delete().
		Where(sessionevent.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete session events: %w", err)
	}
	return nil
}
