package quiz

import (
	"testing"

	"quizdeck/internal/question"
)

func TestScore(t *testing.T) {
	mcq := question.Question{
		Type:           question.TypeMCQ,
		Text:           "What is 2 + 2?",
		Options:        []string{"3", "4", "5", "22"},
		CorrectIndex:   1,
		PartialIndices: []int{3},
		Points:         5,
	}
	tf := question.Question{
		Type:        question.TypeTF,
		Text:        "The sky is green.",
		CorrectBool: false,
		Points:      2,
	}
	fill := question.Question{
		Type:         question.TypeFill,
		Text:         "Capital of France?",
		CorrectText:  "Paris",
		PartialTexts: []string{"paris, texas"},
		Points:       3,
	}

	tests := []struct {
		name    string
		q       question.Question
		a       Answer
		points  int
		outcome Outcome
	}{
		{"mcq correct", mcq, Answer{Option: 1}, 5, Correct},
		{"mcq partial", mcq, Answer{Option: 3}, 3, Partial},
		{"mcq wrong", mcq, Answer{Option: 0}, 0, Incorrect},
		{"tf correct", tf, Answer{Flag: false}, 2, Correct},
		{"tf wrong", tf, Answer{Flag: true}, 0, Incorrect},
		{"fill exact", fill, Answer{Text: "Paris"}, 3, Correct},
		{"fill case and space insensitive", fill, Answer{Text: "  pARis "}, 3, Correct},
		{"fill partial", fill, Answer{Text: "Paris, Texas"}, 2, Partial},
		{"fill wrong", fill, Answer{Text: "Lyon"}, 0, Incorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, out := Score(tt.q, tt.a)
			if pts != tt.points || out != tt.outcome {
				t.Errorf("Score() = (%d, %s), want (%d, %s)", pts, out, tt.points, tt.outcome)
			}
		})
	}
}

func TestHalfPointsRounds(t *testing.T) {
	for _, tt := range []struct{ in, want int }{
		{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {10, 5},
	} {
		if got := halfPoints(tt.in); got != tt.want {
			t.Errorf("halfPoints(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
