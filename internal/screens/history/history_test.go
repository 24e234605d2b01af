package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"quizdeck/internal/quiz"
	"quizdeck/internal/router"
	"quizdeck/internal/store"
)

// mockEventRepo implements store.EventRepo backed by canned records.
type mockEventRepo struct {
	attempts    []store.AttemptRecord
	answers     map[string][]store.AnswerRecord
	queryErr    error
	answerCalls int
}

func (m *mockEventRepo) AppendAttemptEvent(_ context.Context, _ store.AttemptEventData) error {
	return nil
}
func (m *mockEventRepo) QueryAttempts(_ context.Context, _ store.QueryOpts) ([]store.AttemptRecord, error) {
	return m.attempts, m.queryErr
}
func (m *mockEventRepo) RecordResult(_ context.Context, _ *quiz.Result, _ bool) error {
	return nil
}
func (m *mockEventRepo) Stats(_ context.Context) (*store.StatsSummary, error) {
	return &store.StatsSummary{}, nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AnswersForAttempt(_ context.Context, attemptID string) ([]store.AnswerRecord, error) {
	m.answerCalls++
	return m.answers[attemptID], nil
}
func (m *mockEventRepo) AppendHintEvent(_ context.Context, _ store.HintEventData) error {
	return nil
}
func (m *mockEventRepo) HintCount(_ context.Context, _ string) (int, error) {
	return 0, nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func attempt(id, quizName string, passed bool) store.AttemptRecord {
	return store.AttemptRecord{
		AttemptEventData: store.AttemptEventData{
			AttemptID:    id,
			Quiz:         quizName,
			Score:        35,
			Possible:     50,
			Percentage:   70,
			Passed:       passed,
			Correct:      7,
			Total:        10,
			DurationSecs: 270,
		},
		Timestamp: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func loadedScreen(t *testing.T, repo *mockEventRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init returned no command")
	}
	next, _ := s.Update(cmd())
	return next.(*HistoryScreen)
}

func TestTitle(t *testing.T) {
	s := New(&mockEventRepo{})
	if s.Title() != "History" {
		t.Errorf("Title = %q, want History", s.Title())
	}
}

func TestInitLoadsAttempts(t *testing.T) {
	repo := &mockEventRepo{attempts: []store.AttemptRecord{
		attempt("a1", "World Capitals", true),
		attempt("a2", "Rivers", false),
	}}
	s := loadedScreen(t, repo)

	if !s.loaded {
		t.Error("screen not marked loaded")
	}
	if len(s.attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(s.attempts))
	}

	view := s.View(100, 30)
	if !strings.Contains(view, "World Capitals") {
		t.Error("view missing quiz title")
	}
	if !strings.Contains(view, "35/50 pts") {
		t.Error("view missing score")
	}
	if !strings.Contains(view, "passed") || !strings.Contains(view, "failed") {
		t.Error("view missing verdicts")
	}
}

func TestInitError(t *testing.T) {
	repo := &mockEventRepo{queryErr: errors.New("db locked")}
	s := loadedScreen(t, repo)

	view := s.View(100, 30)
	if !strings.Contains(view, "db locked") {
		t.Errorf("view does not surface the error: %q", view)
	}
}

func TestEmptyHistory(t *testing.T) {
	s := loadedScreen(t, &mockEventRepo{})

	view := s.View(100, 30)
	if !strings.Contains(view, "No attempts yet") {
		t.Errorf("view = %q, want empty-state message", view)
	}
}

func TestNavigationClamps(t *testing.T) {
	repo := &mockEventRepo{attempts: []store.AttemptRecord{
		attempt("a1", "A", true),
		attempt("a2", "B", true),
	}}
	s := loadedScreen(t, repo)

	s.Update(specialKey(tea.KeyUp))
	if s.selected != 0 {
		t.Errorf("selected = %d after up at top, want 0", s.selected)
	}
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	if s.selected != 1 {
		t.Errorf("selected = %d after down past bottom, want 1", s.selected)
	}
}

func TestExpandLoadsAnswers(t *testing.T) {
	repo := &mockEventRepo{
		attempts: []store.AttemptRecord{attempt("a1", "World Capitals", true)},
		answers: map[string][]store.AnswerRecord{
			"a1": {{AnswerEventData: store.AnswerEventData{
				AttemptID:    "a1",
				QuestionText: "What is the capital of France?",
				GivenAnswer:  "Paris",
				Outcome:      "correct",
				Points:       5,
			}}},
		},
	}
	s := loadedScreen(t, repo)

	next, cmd := s.Update(specialKey(tea.KeyEnter))
	s = next.(*HistoryScreen)
	if !s.expanded[0] {
		t.Fatal("attempt not expanded after enter")
	}
	if cmd == nil {
		t.Fatal("no load command issued for answers")
	}
	next, _ = s.Update(cmd())
	s = next.(*HistoryScreen)

	view := s.View(100, 30)
	if !strings.Contains(view, "capital of France") {
		t.Error("view missing answer question text")
	}
	if !strings.Contains(view, "Paris") {
		t.Error("view missing given answer")
	}

	// Collapsing and re-expanding reuses the cached answers.
	s.Update(specialKey(tea.KeyEnter))
	_, cmd = s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected cached answers, got a reload command")
	}
	if repo.answerCalls != 1 {
		t.Errorf("AnswersForAttempt called %d times, want 1", repo.answerCalls)
	}
}

func TestEscPops(t *testing.T) {
	s := loadedScreen(t, &mockEventRepo{})
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("esc produced no command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc did not pop the screen")
	}
}

func TestKeyHints(t *testing.T) {
	s := New(&mockEventRepo{})
	if got := len(s.KeyHints()); got != 3 {
		t.Errorf("got %d key hints, want 3", got)
	}
}
