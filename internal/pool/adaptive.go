package pool

import (
	"errors"
	"math/rand/v2"

	"quizdeck/internal/question"
)

// ErrExhausted indicates the reserve has no unused questions left.
// Callers treat this as a normal completion trigger, not a failure.
var ErrExhausted = errors.New("question reserve exhausted")

// SelectNext picks the index of the next adaptive question from the reserve.
//
// The target difficulty is one step harder than the last question's when the
// last answer was correct, one step easier when it was not, clamped at the
// ladder's ends. Candidates are unused reserve entries at the target
// difficulty; when none exist the search degrades to any unused entry. The
// pick among candidates is uniform.
func SelectNext(last question.Difficulty, wasCorrect bool, used map[int]bool, reserve []question.Question, rng *rand.Rand) (int, error) {
	target := last.Step(wasCorrect)

	candidates := make([]int, 0, len(reserve))
	for i, q := range reserve {
		if !used[i] && q.Difficulty == target {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		for i := range reserve {
			if !used[i] {
				candidates = append(candidates, i)
			}
		}
	}
	if len(candidates) == 0 {
		return 0, ErrExhausted
	}

	return candidates[rng.IntN(len(candidates))], nil
}
