// Package pool assembles the working question set for a session and picks
// adaptive follow-up questions from the reserve.
package pool

import (
	"errors"
	"math/rand/v2"

	"quizdeck/internal/question"
)

// ErrEmptyPool indicates no structurally valid questions survived filtering.
// Callers show an empty-state message instead of starting a session.
var ErrEmptyPool = errors.New("no valid questions in pool")

// Pool is the outcome of a build: the initial working set shown to the user
// and the full shuffled reserve used for adaptive growth. Working is always
// a prefix of Reserve.
type Pool struct {
	Working []question.Question
	Reserve []question.Question
}

// Build filters out invalid questions, shuffles the rest uniformly, and caps
// the working set at requested (0 means use all). Options of mcq questions
// are reshuffled per build so repeated attempts don't memorize positions.
func Build(qs []question.Question, requested int, rng *rand.Rand) (*Pool, error) {
	valid := make([]question.Question, 0, len(qs))
	for _, q := range qs {
		if q.Valid() {
			valid = append(valid, ShuffleOptions(q, rng))
		}
	}
	if len(valid) == 0 {
		return nil, ErrEmptyPool
	}

	shuffle(valid, rng)

	n := len(valid)
	if requested > 0 && requested < n {
		n = requested
	}

	return &Pool{
		Working: valid[:n],
		Reserve: valid,
	}, nil
}

// shuffle performs an in-place Fisher-Yates shuffle.
func shuffle(qs []question.Question, rng *rand.Rand) {
	for i := len(qs) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		qs[i], qs[j] = qs[j], qs[i]
	}
}

// ShuffleOptions returns a copy of an mcq question with its options
// permuted and the correct/partial indices remapped to match. Non-mcq
// questions are returned unchanged.
func ShuffleOptions(q question.Question, rng *rand.Rand) question.Question {
	if q.Type != question.TypeMCQ || len(q.Options) < 2 {
		return q
	}

	perm := rng.Perm(len(q.Options))

	opts := make([]string, len(q.Options))
	remap := make([]int, len(q.Options)) // old index -> new index
	for newIdx, oldIdx := range perm {
		opts[newIdx] = q.Options[oldIdx]
		remap[oldIdx] = newIdx
	}

	q.Options = opts
	q.CorrectIndex = remap[q.CorrectIndex]
	if len(q.PartialIndices) > 0 {
		partial := make([]int, len(q.PartialIndices))
		for i, p := range q.PartialIndices {
			partial[i] = remap[p]
		}
		q.PartialIndices = partial
	}
	return q
}
