// Package quizgen produces complete quizzes from a topic or source notes
// using the LLM provider, normalizing the output into playable questions.
package quizgen

import "quizdeck/internal/question"

// GenerateInput describes the quiz to produce.
type GenerateInput struct {
	// Topic is the subject of the quiz, e.g. "photosynthesis".
	Topic string

	// Notes is optional source material the questions must be drawn from.
	// When set, the generator is instructed not to invent facts beyond it.
	Notes string

	// Count is the number of questions to generate.
	Count int

	// Categories optionally constrains question categories.
	Categories []string
}

// GeneratedQuiz is the normalized output of one generation run.
type GeneratedQuiz struct {
	Title     string
	Questions []question.Question
}

// Validator checks a generated quiz before it is accepted.
type Validator interface {
	Name() string
	Validate(q *GeneratedQuiz, input GenerateInput) *ValidationError
}

// ValidationError describes a rejected generation. Retryable errors are
// worth regenerating; the rest indicate a bad request.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return e.Validator + ": " + e.Message
}
