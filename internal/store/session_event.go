package store

import (
	"context"
	"fmt"

	"github.com/ritankar/lakshya/ent"
	"github.com/ritankar/lakshya/ent/studysessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendStudySession(ctx context.Context, data StudySessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.StudySessionEvent.Create().
		SetSequence(seqNum).
		SetAccountID(data.AccountID).
		SetSubject(data.Subject).
		SetSeconds(data.Seconds).
		SetMinutes(data.Minutes).
		SetMode(data.Mode).
		SetXpGained(data.XPGained).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save study session event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryStudySessions(ctx context.Context, accountID string, opts QueryOpts) ([]StudySessionEvent, error) {
	q := r.client.StudySessionEvent.Query().
		Where(studysessionevent.AccountID(accountID)).
		Order(ent.Desc(studysessionevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(studysessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(studysessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(studysessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(studysessionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query study session events: %w", err)
	}

	out := make([]StudySessionEvent, 0, len(events))
	for _, e := range events {
		out = append(out, StudySessionEvent{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			StudySessionEventData: StudySessionEventData{
				AccountID: e.AccountID,
				Subject:   e.Subject,
				Seconds:   e.Seconds,
				Minutes:   e.Minutes,
				Mode:      e.Mode,
				XPGained:  e.XpGained,
			},
		})
	}
	return out, nil
}
