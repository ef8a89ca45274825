package store

import (
	"context"
	"fmt"

	"github.com/lingobee/lingobee/ent"
	"github.com/lingobee/lingobee/ent/sessionevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetNodeID(data.NodeID).
		SetAction(data.Action).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetHeartsLeft(data.HeartsLeft).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, userID string, limit int) ([]SessionRecord, error) {
	query := r.client.SessionEvent.Query().
		Where(
			sessionevent.UserID(userID),
			sessionevent.ActionIn("complete", "exhausted", "abandon"),
		).
		Order(ent.Desc(sessionevent.FieldSequence))

	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	records := make([]SessionRecord, len(events))
	for i, e := range events {
		records[i] = SessionRecord{
			SessionID:       e.SessionID,
			NodeID:          e.NodeID,
			Action:          e.Action,
			QuestionsServed: e.QuestionsServed,
			CorrectAnswers:  e.CorrectAnswers,
			HeartsLeft:      e.HeartsLeft,
			DurationSecs:    e.DurationSecs,
			Timestamp:       e.Timestamp,
		}
	}
	return records, nil
}
