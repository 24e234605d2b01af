package question

import "strings"

// Type identifies the answer mechanics of a question.
type Type string

const (
	TypeMCQ  Type = "mcq"  // multiple choice, answered by option index
	TypeTF   Type = "tf"   // true/false
	TypeFill Type = "fill" // free text, compared case-insensitively
)

// Difficulty is the question difficulty tier. Tiers are totally ordered:
// easy < medium < hard.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ladder orders the tiers for adaptive stepping.
var ladder = []Difficulty{Easy, Medium, Hard}

// Rank returns the position of d on the difficulty ladder (0-based).
// Unknown values rank as easy.
func (d Difficulty) Rank() int {
	for i, t := range ladder {
		if t == d {
			return i
		}
	}
	return 0
}

// Step moves one tier up (harder) or down (easier), clamping at the ends.
func (d Difficulty) Step(harder bool) Difficulty {
	r := d.Rank()
	if harder && r < len(ladder)-1 {
		r++
	}
	if !harder && r > 0 {
		r--
	}
	return ladder[r]
}

// Feedback holds the per-outcome explanation strings for a question.
type Feedback struct {
	Correct   string `json:"correct,omitempty"`
	Incorrect string `json:"incorrect,omitempty"`
	Partial   string `json:"partial,omitempty"`
}

// Question is the canonical question shape produced by Normalize.
// The Correct* fields are populated according to Type; the others are zero.
type Question struct {
	Type    Type     `json:"type"`
	Text    string   `json:"question"`
	Options []string `json:"options,omitempty"`

	CorrectIndex int    `json:"correct_index"`          // mcq: index into Options
	CorrectBool  bool   `json:"correct_bool"`           // tf
	CorrectText  string `json:"correct_text,omitempty"` // fill

	// PartialIndices (mcq) and PartialTexts (fill) list answers that earn
	// half credit. Empty means no partial-credit path.
	PartialIndices []int    `json:"partial_indices,omitempty"`
	PartialTexts   []string `json:"partial_texts,omitempty"`

	Difficulty Difficulty `json:"difficulty"`
	Category   string     `json:"category"`
	Points     int        `json:"points"`
	Feedback   Feedback   `json:"feedback,omitempty"`
	Hint       string     `json:"hint,omitempty"`
}

// Valid reports whether the question satisfies its structural invariants:
// non-empty text, and per-type answer shape (mcq needs >= 2 options with an
// in-range correct index; fill needs a non-empty correct text).
func (q *Question) Valid() bool {
	if strings.TrimSpace(q.Text) == "" {
		return false
	}
	switch q.Type {
	case TypeMCQ:
		return len(q.Options) >= 2 && q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options)
	case TypeTF:
		return true
	case TypeFill:
		return strings.TrimSpace(q.CorrectText) != ""
	}
	return false
}

// CorrectAnswerText returns the display form of the correct answer.
func (q *Question) CorrectAnswerText() string {
	switch q.Type {
	case TypeMCQ:
		if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
			return q.Options[q.CorrectIndex]
		}
		return ""
	case TypeTF:
		if q.CorrectBool {
			return "True"
		}
		return "False"
	default:
		return q.CorrectText
	}
}

// IsPartialIndex reports whether the given option index is on the
// half-credit list. Always false for the correct index itself.
func (q *Question) IsPartialIndex(i int) bool {
	if i == q.CorrectIndex {
		return false
	}
	for _, p := range q.PartialIndices {
		if p == i {
			return true
		}
	}
	return false
}

// IsPartialText reports whether the given text matches a half-credit answer,
// compared case-insensitively after trimming.
func (q *Question) IsPartialText(s string) bool {
	s = strings.TrimSpace(s)
	for _, p := range q.PartialTexts {
		if strings.EqualFold(strings.TrimSpace(p), s) {
			return true
		}
	}
	return false
}
