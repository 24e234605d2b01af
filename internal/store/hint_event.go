package store

import (
	"context"
	"fmt"

	"quizdeck/ent/hintevent"
)

func (r *eventRepo) AppendHintEvent(ctx context.Context, data HintEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.HintEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetQuestionText(data.QuestionText).
		SetHintText(data.HintText).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}

func (r *eventRepo) HintCount(ctx context.Context, attemptID string) (int, error) {
	n, err := r.client.HintEvent.Query().
		Where(hintevent.AttemptID(attemptID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count hints: %w", err)
	}
	return n, nil
}
