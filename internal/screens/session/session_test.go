package session

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"quizdeck/internal/pool"
	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
	"quizdeck/internal/router"
	"quizdeck/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	results    []*quiz.Result
	hintEvents []store.HintEventData
}

func (m *mockEventRepo) AppendAttemptEvent(_ context.Context, _ store.AttemptEventData) error {
	return nil
}
func (m *mockEventRepo) QueryAttempts(_ context.Context, _ store.QueryOpts) ([]store.AttemptRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) RecordResult(_ context.Context, r *quiz.Result, _ bool) error {
	m.results = append(m.results, r)
	return nil
}
func (m *mockEventRepo) Stats(_ context.Context) (*store.StatsSummary, error) {
	return &store.StatsSummary{}, nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AnswersForAttempt(_ context.Context, _ string) ([]store.AnswerRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendHintEvent(_ context.Context, data store.HintEventData) error {
	m.hintEvents = append(m.hintEvents, data)
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

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func mcq(text string, hint string) question.Question {
	return question.Question{
		Type:         question.TypeMCQ,
		Text:         text,
		Options:      []string{"Paris", "London", "Berlin", "Madrid"},
		CorrectIndex: 1,
		Difficulty:   question.Easy,
		Category:     "geography",
		Points:       5,
		Hint:         hint,
	}
}

// testSessionScreen builds a started screen over a fixed two-question pool.
func testSessionScreen(t *testing.T) (*SessionScreen, *mockEventRepo) {
	t.Helper()
	p := &pool.Pool{Working: []question.Question{
		mcq("First capital?", "It hosted the 2012 Olympics."),
		mcq("Second capital?", ""),
	}}
	sess := quiz.New("Capitals", p, quiz.DefaultConfig())
	events := &mockEventRepo{}

	s := New(sess, events)
	if cmd := s.Init(); cmd == nil {
		t.Fatal("expected Init to return a command")
	}
	if s.errMsg != "" {
		t.Fatalf("unexpected init error: %s", s.errMsg)
	}
	return s, events
}

// drain runs a command chain until it stops producing messages, feeding each
// message back into the screen the way the program loop would.
func drain(scr router.Screen, cmd tea.Cmd) (router.Screen, tea.Msg) {
	var last tea.Msg
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			break
		}
		last = msg
		if _, ok := msg.(router.ReplaceScreenMsg); ok {
			break
		}
		scr, cmd = scr.Update(msg)
	}
	return scr, last
}

func TestSessionScreen_Title(t *testing.T) {
	s, _ := testSessionScreen(t)
	if s.Title() != "Capitals" {
		t.Errorf("Title = %q, want %q", s.Title(), "Capitals")
	}
}

func TestSessionScreen_HeaderStatus(t *testing.T) {
	s, _ := testSessionScreen(t)
	status := s.HeaderStatus()
	if status == "" {
		t.Fatal("expected a header status while in progress")
	}
	if got, want := status[:5], "Q 1/2"; got != want {
		t.Errorf("status prefix = %q, want %q", got, want)
	}
}

func TestSessionScreen_View(t *testing.T) {
	s, _ := testSessionScreen(t)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}
}

func TestSessionScreen_SubmitShowsFeedback(t *testing.T) {
	s, _ := testSessionScreen(t)

	// Select the second option, then submit.
	var scr router.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	ss := scr.(*SessionScreen)
	if !ss.showingFeedback {
		t.Fatal("expected feedback after submit")
	}
	rec := ss.sess.Record()
	if rec == nil {
		t.Fatal("expected a graded record")
	}
	if rec.Outcome != quiz.Correct {
		t.Errorf("outcome = %q, want correct", rec.Outcome)
	}
	if ss.sess.Score != 5 {
		t.Errorf("score = %d, want 5", ss.sess.Score)
	}
}

func TestSessionScreen_EnterWithoutSelectionSubmitsFirstOption(t *testing.T) {
	s, _ := testSessionScreen(t)

	var scr router.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	ss := scr.(*SessionScreen)
	rec := ss.sess.Record()
	if rec == nil {
		t.Fatal("expected a graded record")
	}
	if rec.Outcome != quiz.Incorrect {
		t.Errorf("outcome = %q, want incorrect", rec.Outcome)
	}
}

func TestSessionScreen_FeedbackEnterAdvances(t *testing.T) {
	s, _ := testSessionScreen(t)

	var scr router.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	ss := scr.(*SessionScreen)
	if ss.showingFeedback {
		t.Error("expected feedback to be dismissed")
	}
	if ss.sess.Current != 1 {
		t.Errorf("current = %d, want 1", ss.sess.Current)
	}
}

func TestSessionScreen_FinishAfterLastQuestion(t *testing.T) {
	s, events := testSessionScreen(t)

	var scr router.Screen = s
	// Answer both questions, advancing through feedback each time.
	for i := 0; i < 2; i++ {
		scr, _ = scr.Update(keyPress('2'))
		scr, _ = scr.Update(specialKey(tea.KeyEnter))
		var cmd tea.Cmd
		scr, cmd = scr.Update(specialKey(tea.KeyEnter))
		if cmd != nil {
			var last tea.Msg
			scr, last = drain(scr, cmd)
			if i == 1 {
				if _, ok := last.(router.ReplaceScreenMsg); !ok {
					t.Fatalf("expected handoff to summary, got %T", last)
				}
			}
		}
	}

	ss := scr.(*SessionScreen)
	if !ss.done {
		t.Error("expected session to be done")
	}
	if len(events.results) != 1 {
		t.Fatalf("recorded results = %d, want 1", len(events.results))
	}
	if events.results[0].Score != 10 {
		t.Errorf("recorded score = %d, want 10", events.results[0].Score)
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _ := testSessionScreen(t)

	var scr router.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.quitConfirm {
		t.Fatal("expected quit confirmation after Esc")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.quitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s, events := testSessionScreen(t)

	var scr router.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	scr, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming finish")
	}
	scr, last := drain(scr, cmd)

	ss := scr.(*SessionScreen)
	if !ss.done {
		t.Error("expected session to be done")
	}
	if _, ok := last.(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected handoff to summary, got %T", last)
	}
	if len(events.results) != 1 {
		t.Errorf("recorded results = %d, want 1", len(events.results))
	}
	// Unanswered questions score zero.
	if events.results[0].Score != 0 {
		t.Errorf("recorded score = %d, want 0", events.results[0].Score)
	}
}

func TestSessionScreen_PauseAndResume(t *testing.T) {
	s, _ := testSessionScreen(t)

	var scr router.Screen = s
	scr, _ = scr.Update(keyPress('p'))
	ss := scr.(*SessionScreen)
	if ss.sess.Phase != quiz.Paused {
		t.Fatalf("phase = %v, want paused", ss.sess.Phase)
	}

	// Answer keys are ignored while paused.
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)
	if ss.sess.Record() != nil {
		t.Error("expected no grading while paused")
	}

	scr, _ = ss.Update(keyPress('p'))
	ss = scr.(*SessionScreen)
	if ss.sess.Phase != quiz.InProgress {
		t.Errorf("phase = %v, want in progress", ss.sess.Phase)
	}
}

func TestSessionScreen_HintRecordedOnce(t *testing.T) {
	s, events := testSessionScreen(t)

	var scr router.Screen = s
	for i := 0; i < 2; i++ {
		var cmd tea.Cmd
		scr, cmd = scr.Update(keyPress('h'))
		if cmd != nil {
			cmd()
		}
	}

	if len(events.hintEvents) != 1 {
		t.Fatalf("hint events = %d, want 1", len(events.hintEvents))
	}
	if events.hintEvents[0].HintText != "It hosted the 2012 Olympics." {
		t.Errorf("hint text = %q", events.hintEvents[0].HintText)
	}
}

func TestSessionScreen_TimerExpiryCompletes(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	p := &pool.Pool{Working: []question.Question{mcq("Only question?", "")}}
	cfg := quiz.DefaultConfig()
	cfg.TimeLimit = 30 * time.Second
	sess := quiz.New("Timed", p, cfg, quiz.WithClock(now))
	events := &mockEventRepo{}

	s := New(sess, events)
	s.Init()

	clock = clock.Add(time.Minute)
	var scr router.Screen = s
	scr, cmd := scr.Update(timerTickMsg(clock))
	if cmd == nil {
		t.Fatal("expected a command when the countdown expires")
	}
	scr, last := drain(scr, cmd)

	ss := scr.(*SessionScreen)
	if !ss.done {
		t.Error("expected session to be done after expiry")
	}
	if _, ok := last.(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected handoff to summary, got %T", last)
	}
	if len(events.results) != 1 {
		t.Errorf("recorded results = %d, want 1", len(events.results))
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := testSessionScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}

	s.quitConfirm = true
	if len(s.KeyHints()) != 2 {
		t.Errorf("quit confirm hints = %d, want 2", len(s.KeyHints()))
	}
}
