package store

import (
	"context"
	"fmt"

	"quizdeck/ent"
	"quizdeck/ent/attemptevent"
	"quizdeck/internal/quiz"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetQuiz(data.Quiz).
		SetScore(data.Score).
		SetPossible(data.Possible).
		SetPercentage(data.Percentage).
		SetPassed(data.Passed).
		SetCorrectAnswers(data.Correct).
		SetQuestionsTotal(data.Total).
		SetDurationSecs(data.DurationSecs).
		SetAdaptive(data.Adaptive).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	query := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(attemptevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]AttemptRecord, len(events))
	for i, e := range events {
		records[i] = AttemptRecord{
			AttemptEventData: AttemptEventData{
				AttemptID:    e.AttemptID,
				Quiz:         e.Quiz,
				Score:        e.Score,
				Possible:     e.Possible,
				Percentage:   e.Percentage,
				Passed:       e.Passed,
				Correct:      e.CorrectAnswers,
				Total:        e.QuestionsTotal,
				DurationSecs: e.DurationSecs,
				Adaptive:     e.Adaptive,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

// RecordResult persists a completed session: one attempt event plus an
// answer event per graded question, in pool order.
func (r *eventRepo) RecordResult(ctx context.Context, res *quiz.Result, adaptive bool) error {
	err := r.AppendAttemptEvent(ctx, AttemptEventData{
		AttemptID:    res.SessionID,
		Quiz:         res.Quiz,
		Score:        res.Score,
		Possible:     res.Possible,
		Percentage:   res.Percentage,
		Passed:       res.Passed,
		Correct:      res.CorrectCount,
		Total:        res.Total,
		DurationSecs: int(res.TimeSpent.Seconds()),
		Adaptive:     adaptive,
	})
	if err != nil {
		return err
	}

	for i, q := range res.Questions {
		rec := res.Records[i]
		if rec == nil {
			continue
		}
		err := r.AppendAnswerEvent(ctx, AnswerEventData{
			AttemptID:     res.SessionID,
			QuestionText:  q.Text,
			QuestionType:  string(q.Type),
			Difficulty:    string(q.Difficulty),
			Category:      q.Category,
			CorrectAnswer: q.CorrectAnswerText(),
			GivenAnswer:   givenAnswerText(q, rec.Answer),
			Outcome:       string(rec.Outcome),
			Points:        rec.Points,
			TimeMs:        int(rec.TimeSpent.Milliseconds()),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *eventRepo) Stats(ctx context.Context) (*StatsSummary, error) {
	attempts, err := r.client.AttemptEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}

	s := &StatsSummary{CategoryAcc: make(map[string]float64)}
	if len(attempts) == 0 {
		return s, nil
	}

	var pctSum float64
	for _, a := range attempts {
		s.Attempts++
		if a.Passed {
			s.Passed++
		}
		pctSum += a.Percentage
		if a.Percentage >= s.BestPct {
			s.BestPct = a.Percentage
			s.BestQuiz = a.Quiz
		}
	}
	s.AvgPercentage = pctSum / float64(len(attempts))

	acc, err := r.categoryAccuracy(ctx)
	if err != nil {
		return nil, err
	}
	s.CategoryAcc = acc
	return s, nil
}
