package pool

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"quizdeck/internal/question"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func tfQuestions(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			Type:       question.TypeTF,
			Text:       fmt.Sprintf("statement %d", i),
			Difficulty: question.Easy,
			Category:   "General",
			Points:     1,
		}
	}
	return qs
}

func TestBuild_RequestedCount(t *testing.T) {
	src := tfQuestions(20)
	p, err := Build(src, 5, testRNG())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(p.Working) != 5 {
		t.Fatalf("working set = %d, want 5", len(p.Working))
	}
	if len(p.Reserve) != 20 {
		t.Fatalf("reserve = %d, want 20", len(p.Reserve))
	}

	// Every working entry is a member of the source set, with no duplicates.
	seen := make(map[string]bool)
	valid := make(map[string]bool)
	for _, q := range src {
		valid[q.Text] = true
	}
	for _, q := range p.Working {
		if !valid[q.Text] {
			t.Errorf("question %q not in source set", q.Text)
		}
		if seen[q.Text] {
			t.Errorf("duplicate question %q", q.Text)
		}
		seen[q.Text] = true
	}
}

func TestBuild_ZeroMeansAll(t *testing.T) {
	p, err := Build(tfQuestions(7), 0, testRNG())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(p.Working) != 7 {
		t.Fatalf("working set = %d, want all 7", len(p.Working))
	}
}

func TestBuild_FiltersInvalid(t *testing.T) {
	qs := append(tfQuestions(3), question.Question{
		Type: question.TypeMCQ, Text: "broken", Options: []string{"only"},
	})
	p, err := Build(qs, 0, testRNG())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(p.Reserve) != 3 {
		t.Fatalf("invalid question not filtered, reserve = %d", len(p.Reserve))
	}
}

func TestBuild_EmptyPool(t *testing.T) {
	_, err := Build(nil, 0, testRNG())
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}

	_, err = Build([]question.Question{{Type: question.TypeFill, Text: "q"}}, 0, testRNG())
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("all-invalid input should yield ErrEmptyPool, got %v", err)
	}
}

func TestBuild_WorkingIsReservePrefix(t *testing.T) {
	p, err := Build(tfQuestions(10), 4, testRNG())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i, q := range p.Working {
		if p.Reserve[i].Text != q.Text {
			t.Fatalf("working set must be a prefix of the reserve")
		}
	}
}

func TestShuffleOptions_RemapsIndices(t *testing.T) {
	q := question.Question{
		Type:           question.TypeMCQ,
		Text:           "pick",
		Options:        []string{"a", "b", "c", "d"},
		CorrectIndex:   2,
		PartialIndices: []int{0, 3},
	}

	rng := testRNG()
	for i := 0; i < 50; i++ {
		s := ShuffleOptions(q, rng)
		if s.Options[s.CorrectIndex] != "c" {
			t.Fatalf("correct index lost track of its option: %+v", s)
		}
		want := map[string]bool{"a": true, "d": true}
		for _, p := range s.PartialIndices {
			if !want[s.Options[p]] {
				t.Fatalf("partial index points at wrong option: %+v", s)
			}
		}
		if len(s.PartialIndices) != 2 {
			t.Fatalf("partial indices count changed: %+v", s)
		}
	}

	// Original must be untouched.
	if q.CorrectIndex != 2 || q.Options[2] != "c" {
		t.Fatalf("input question mutated: %+v", q)
	}
}
