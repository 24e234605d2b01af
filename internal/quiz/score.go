package quiz

import (
	"math"
	"strings"

	"quizdeck/internal/question"
)

// Outcome classifies a graded answer.
type Outcome string

const (
	Correct   Outcome = "correct"
	Partial   Outcome = "partial"
	Incorrect Outcome = "incorrect"
)

// Answer is the user's response to a single question. Exactly one field is
// meaningful depending on the question type: Option for mcq, Flag for tf,
// Text for fill.
type Answer struct {
	Option int    `json:"option"`
	Flag   bool   `json:"flag"`
	Text   string `json:"text"`
}

// Score grades an answer against its question and returns the points earned.
//
// A fully correct answer earns the question's point value. A partial answer
// (a designated mcq option, or a fill response matching one of the accepted
// partial texts case-insensitively) earns half, rounded to the nearest whole
// point. Anything else earns zero. True/false questions have no partial path.
func Score(q question.Question, a Answer) (int, Outcome) {
	switch q.Type {
	case question.TypeMCQ:
		if a.Option == q.CorrectIndex {
			return q.Points, Correct
		}
		if q.IsPartialIndex(a.Option) {
			return halfPoints(q.Points), Partial
		}
	case question.TypeTF:
		if a.Flag == q.CorrectBool {
			return q.Points, Correct
		}
	case question.TypeFill:
		got := strings.TrimSpace(a.Text)
		if strings.EqualFold(got, strings.TrimSpace(q.CorrectText)) {
			return q.Points, Correct
		}
		if q.IsPartialText(got) {
			return halfPoints(q.Points), Partial
		}
	}
	return 0, Incorrect
}

func halfPoints(points int) int {
	return int(math.Round(float64(points) * 0.5))
}
