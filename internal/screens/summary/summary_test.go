package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
)

func testResult() *quiz.Result {
	return &quiz.Result{
		SessionID:     "0d9f1a2b-3c4d-5e6f-7a8b-9c0d1e2f3a4b",
		Quiz:          "World Capitals",
		Score:         35,
		Possible:      50,
		Percentage:    70,
		Passed:        true,
		CorrectCount:  6,
		PartialCount:  1,
		AnsweredCount: 8,
		Total:         10,
		CategoryScore: map[string]int{"geography": 25, "history": 10},
		DifficultyStats: map[question.Difficulty]quiz.DifficultyStat{
			question.Easy:   {Correct: 4, Total: 4},
			question.Medium: {Correct: 2, Total: 4},
		},
		TimeSpent: 4*time.Minute + 30*time.Second,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Passed!", "35 / 50 points", "geography", "4:30"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_FailedVerdict(t *testing.T) {
	r := testResult()
	r.Passed = false
	s := New(r)
	if !strings.Contains(s.View(80, 24), "Not passed") {
		t.Error("expected failed verdict in view")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testResult())
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Errorf("expected a pop command for key %q", code)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testResult())
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
}

func TestExportPath(t *testing.T) {
	got := exportPath(testResult(), "csv")
	want := "world-capitals-results-0d9f1a2b.csv"
	if got != want {
		t.Errorf("exportPath = %q, want %q", got, want)
	}
}
