package store

import (
	"context"
	"fmt"
	"strconv"

	"quizdeck/ent"
	"quizdeck/ent/answerevent"
	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetQuestionText(data.QuestionText).
		SetQuestionType(data.QuestionType).
		SetDifficulty(data.Difficulty).
		SetCategory(data.Category).
		SetCorrectAnswer(data.CorrectAnswer).
		SetGivenAnswer(data.GivenAnswer).
		SetOutcome(data.Outcome).
		SetPoints(data.Points).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswersForAttempt(ctx context.Context, attemptID string) ([]AnswerRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.AttemptID(attemptID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}

	records := make([]AnswerRecord, len(events))
	for i, e := range events {
		records[i] = AnswerRecord{
			AnswerEventData: AnswerEventData{
				AttemptID:     e.AttemptID,
				QuestionText:  e.QuestionText,
				QuestionType:  e.QuestionType,
				Difficulty:    e.Difficulty,
				Category:      e.Category,
				CorrectAnswer: e.CorrectAnswer,
				GivenAnswer:   e.GivenAnswer,
				Outcome:       e.Outcome,
				Points:        e.Points,
				TimeMs:        e.TimeMs,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

// categoryAccuracy computes the fully-correct rate per category across the
// whole answer history.
func (r *eventRepo) categoryAccuracy(ctx context.Context) (map[string]float64, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query category accuracy: %w", err)
	}

	correct := make(map[string]int)
	total := make(map[string]int)
	for _, e := range events {
		total[e.Category]++
		if e.Outcome == string(quiz.Correct) {
			correct[e.Category]++
		}
	}

	acc := make(map[string]float64, len(total))
	for cat, n := range total {
		acc[cat] = float64(correct[cat]) / float64(n)
	}
	return acc, nil
}

// givenAnswerText renders the user's answer in the same form the correct
// answer is stored in.
func givenAnswerText(q question.Question, a quiz.Answer) string {
	switch q.Type {
	case question.TypeMCQ:
		if a.Option >= 0 && a.Option < len(q.Options) {
			return q.Options[a.Option]
		}
		return ""
	case question.TypeTF:
		return strconv.FormatBool(a.Flag)
	default:
		return a.Text
	}
}
