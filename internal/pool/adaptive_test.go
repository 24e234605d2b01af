package pool

import (
	"errors"
	"testing"

	"quizdeck/internal/question"
)

func reserveWith(diffs ...question.Difficulty) []question.Question {
	qs := make([]question.Question, len(diffs))
	for i, d := range diffs {
		qs[i] = question.Question{Type: question.TypeTF, Text: "q", Difficulty: d}
	}
	return qs
}

func TestSelectNext_StepsHarderOnCorrect(t *testing.T) {
	reserve := reserveWith(question.Easy, question.Medium, question.Hard)
	idx, err := SelectNext(question.Easy, true, map[int]bool{}, reserve, testRNG())
	if err != nil {
		t.Fatalf("SelectNext: %v", err)
	}
	if reserve[idx].Difficulty != question.Medium {
		t.Errorf("after a correct easy answer the target is medium, got %s", reserve[idx].Difficulty)
	}
}

func TestSelectNext_StepsEasierOnWrong(t *testing.T) {
	reserve := reserveWith(question.Easy, question.Medium, question.Hard)
	idx, err := SelectNext(question.Hard, false, map[int]bool{}, reserve, testRNG())
	if err != nil {
		t.Fatalf("SelectNext: %v", err)
	}
	if reserve[idx].Difficulty != question.Medium {
		t.Errorf("after a wrong hard answer the target is medium, got %s", reserve[idx].Difficulty)
	}
}

func TestSelectNext_ClampsAtBoundaries(t *testing.T) {
	reserve := reserveWith(question.Easy, question.Medium, question.Hard)

	idx, err := SelectNext(question.Hard, true, map[int]bool{}, reserve, testRNG())
	if err != nil {
		t.Fatal(err)
	}
	if reserve[idx].Difficulty != question.Hard {
		t.Errorf("correct at hard must stay hard, got %s", reserve[idx].Difficulty)
	}

	idx, err = SelectNext(question.Easy, false, map[int]bool{}, reserve, testRNG())
	if err != nil {
		t.Fatal(err)
	}
	if reserve[idx].Difficulty != question.Easy {
		t.Errorf("wrong at easy must stay easy, got %s", reserve[idx].Difficulty)
	}
}

func TestSelectNext_NeverReturnsUsed(t *testing.T) {
	reserve := reserveWith(
		question.Medium, question.Medium, question.Medium,
		question.Hard, question.Hard,
	)
	used := map[int]bool{0: true, 3: true}

	rng := testRNG()
	for i := 0; i < 100; i++ {
		idx, err := SelectNext(question.Medium, true, used, reserve, rng)
		if err != nil {
			t.Fatalf("SelectNext: %v", err)
		}
		if used[idx] {
			t.Fatalf("returned used index %d", idx)
		}
	}
}

func TestSelectNext_FallsBackAcrossDifficulties(t *testing.T) {
	// No hard questions left; any unused question is acceptable.
	reserve := reserveWith(question.Easy, question.Easy)
	used := map[int]bool{0: true}

	idx, err := SelectNext(question.Hard, true, used, reserve, testRNG())
	if err != nil {
		t.Fatalf("SelectNext: %v", err)
	}
	if idx != 1 {
		t.Errorf("fallback should pick the only unused question, got %d", idx)
	}
}

func TestSelectNext_Exhausted(t *testing.T) {
	reserve := reserveWith(question.Easy)
	used := map[int]bool{0: true}

	_, err := SelectNext(question.Easy, true, used, reserve, testRNG())
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}
