package quizgen

import "fmt"

// StructuralValidator checks that the generated quiz has the requested
// shape: the right question count and structurally playable questions.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *GeneratedQuiz, input GenerateInput) *ValidationError {
	if len(q.Questions) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "no usable questions survived normalization",
			Retryable: true,
		}
	}
	if input.Count > 0 && len(q.Questions) < input.Count {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("asked for %d questions, got %d", input.Count, len(q.Questions)),
			Retryable: true,
		}
	}

	seen := make(map[string]bool, len(q.Questions))
	for i, qq := range q.Questions {
		if !qq.Valid() {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d is not playable", i+1),
				Retryable: true,
			}
		}
		if len(qq.Text) > 500 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d exceeds 500 characters", i+1),
				Retryable: true,
			}
		}
		if seen[qq.Text] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d duplicates an earlier question", i+1),
				Retryable: true,
			}
		}
		seen[qq.Text] = true
	}
	return nil
}
