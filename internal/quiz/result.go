package quiz

import (
	"math"
	"time"

	"quizdeck/internal/question"
)

// Result is the final scoreboard of a completed session.
type Result struct {
	SessionID string
	Quiz      string

	Score    int
	Possible int

	Percentage float64
	Passed     bool

	CorrectCount  int
	PartialCount  int
	AnsweredCount int
	Total         int

	CategoryScore   map[string]int
	DifficultyScore map[question.Difficulty]int
	DifficultyStats map[question.Difficulty]DifficultyStat

	TimeSpent time.Duration

	Questions []question.Question
	Records   []*AnswerRecord
}

// DifficultyStat counts outcomes per difficulty tier.
type DifficultyStat struct {
	Correct int
	Total   int
}

func (s *Session) result() *Result {
	r := &Result{
		SessionID:       s.ID,
		Quiz:            s.Quiz,
		Score:           s.Score,
		Total:           len(s.Pool),
		CategoryScore:   s.CategoryScore,
		DifficultyScore: s.DifficultyScore,
		DifficultyStats: make(map[question.Difficulty]DifficultyStat),
		TimeSpent:       s.Elapsed(),
		Questions:       s.Pool,
		Records:         s.Answers,
	}

	for i, q := range s.Pool {
		r.Possible += q.Points
		st := r.DifficultyStats[q.Difficulty]
		st.Total++
		if rec := s.Answers[i]; rec != nil {
			r.AnsweredCount++
			switch rec.Outcome {
			case Correct:
				r.CorrectCount++
				st.Correct++
			case Partial:
				r.PartialCount++
			}
		}
		r.DifficultyStats[q.Difficulty] = st
	}

	if s.Cfg.CountByPoints {
		if r.Possible > 0 {
			r.Percentage = float64(r.Score) / float64(r.Possible) * 100
		}
	} else {
		if r.Total > 0 {
			r.Percentage = float64(r.CorrectCount) / float64(r.Total) * 100
		}
	}
	r.Percentage = math.Round(r.Percentage*100) / 100
	r.Passed = r.Percentage >= s.Cfg.PassingScore

	return r
}
