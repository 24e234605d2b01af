package quiz

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"quizdeck/internal/pool"
	"quizdeck/internal/question"
)

// fakeClock hands out a controllable time source.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// memSaver records every snapshot written, like the store does.
type memSaver struct {
	last    *Snapshot
	saves   int
	cleared bool
}

func (m *memSaver) Save(s *Snapshot) error {
	// Round-trip through JSON so the snapshot is a deep copy, the same
	// way the real store detaches it from the live session.
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	var cp Snapshot
	if err := json.Unmarshal(data, &cp); err != nil {
		return err
	}
	m.last = &cp
	m.saves++
	return nil
}

func (m *memSaver) Clear() error {
	m.last = nil
	m.cleared = true
	return nil
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func mathQuestion() question.Question {
	return question.Question{
		Type:         question.TypeMCQ,
		Text:         "What is 2 + 2?",
		Options:      []string{"3", "4", "5", "6"},
		CorrectIndex: 1,
		Difficulty:   question.Easy,
		Category:     "math",
		Points:       5,
	}
}

func poolOf(t *testing.T, qs ...question.Question) *pool.Pool {
	t.Helper()
	p, err := pool.Build(qs, 0, testRNG())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func startSession(t *testing.T, p *pool.Pool, cfg Config, opts ...Option) *Session {
	t.Helper()
	s := New("Test Quiz", p, cfg, opts...)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestSession_SingleCorrectAnswer(t *testing.T) {
	clock := newFakeClock()
	p := &pool.Pool{Working: []question.Question{mathQuestion()}, Reserve: []question.Question{mathQuestion()}}
	s := startSession(t, p, DefaultConfig(), WithClock(clock.now), WithRNG(testRNG()))

	if err := s.SubmitAnswer(Answer{Option: 1}); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if s.Score != 5 {
		t.Errorf("score = %d, want 5", s.Score)
	}
	if s.CategoryScore["math"] != 5 {
		t.Errorf("category score = %v, want math:5", s.CategoryScore)
	}
	if s.DifficultyScore[question.Easy] != 5 {
		t.Errorf("difficulty score = %v, want easy:5", s.DifficultyScore)
	}

	r, err := s.Complete()
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if r.Percentage != 100 {
		t.Errorf("percentage = %v, want 100", r.Percentage)
	}
	if !r.Passed {
		t.Error("a perfect score must pass")
	}
	if r.CorrectCount != 1 || r.AnsweredCount != 1 {
		t.Errorf("counts = %d correct / %d answered, want 1/1", r.CorrectCount, r.AnsweredCount)
	}
}

func TestSession_WrongAnswerScoresZero(t *testing.T) {
	q := question.Question{
		Type: question.TypeTF, Text: "true?", CorrectBool: true,
		Difficulty: question.Easy, Category: "General", Points: 2,
	}
	p := poolOf(t, q)
	s := startSession(t, p, DefaultConfig(), WithClock(newFakeClock().now))

	if err := s.SubmitAnswer(Answer{Flag: false}); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
	if s.Record().Outcome != Incorrect {
		t.Errorf("outcome = %s, want incorrect", s.Record().Outcome)
	}
}

func TestSession_AnsweredOnce(t *testing.T) {
	p := poolOf(t, mathQuestion())
	s := startSession(t, p, DefaultConfig(), WithClock(newFakeClock().now))

	if err := s.SubmitAnswer(Answer{Option: 1}); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	// A second submit, even with a different choice, must change nothing.
	if err := s.SubmitAnswer(Answer{Option: 0}); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if s.Score != 5 {
		t.Errorf("score changed on re-submit: %d", s.Score)
	}
	if s.Record().Answer.Option != 1 {
		t.Errorf("recorded answer changed on re-submit: %+v", s.Record())
	}
}

func TestSession_RejectsEmptyAnswer(t *testing.T) {
	fill := question.Question{
		Type: question.TypeFill, Text: "capital?", CorrectText: "Paris",
		Difficulty: question.Easy, Category: "General", Points: 1,
	}
	p := poolOf(t, fill)
	s := startSession(t, p, DefaultConfig(), WithClock(newFakeClock().now))

	if err := s.SubmitAnswer(Answer{}); !errors.Is(err, ErrNoAnswer) {
		t.Fatalf("expected ErrNoAnswer, got %v", err)
	}

	mc := poolOf(t, mathQuestion())
	s2 := startSession(t, mc, DefaultConfig(), WithClock(newFakeClock().now))
	if err := s2.SubmitAnswer(Answer{Option: -1}); !errors.Is(err, ErrNoAnswer) {
		t.Fatalf("expected ErrNoAnswer for out-of-range option, got %v", err)
	}
}

func TestSession_PauseExcludedFromTiming(t *testing.T) {
	clock := newFakeClock()
	p := poolOf(t, mathQuestion())
	s := startSession(t, p, DefaultConfig(), WithClock(clock.now))

	clock.advance(3 * time.Second)
	if err := s.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	clock.advance(10 * time.Second)
	if err := s.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	clock.advance(2 * time.Second)

	if err := s.SubmitAnswer(Answer{Option: 1}); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if got := s.Record().TimeSpent; got != 5*time.Second {
		t.Errorf("question time = %v, want 5s (10s pause excluded)", got)
	}
	if got := s.Elapsed(); got != 5*time.Second {
		t.Errorf("session elapsed = %v, want 5s", got)
	}
}

func TestSession_PauseBlocksMutations(t *testing.T) {
	p := poolOf(t, mathQuestion())
	s := startSession(t, p, DefaultConfig(), WithClock(newFakeClock().now))

	if err := s.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if err := s.SubmitAnswer(Answer{Option: 1}); !errors.Is(err, ErrNotInProgress) {
		t.Fatalf("submit while paused: %v", err)
	}
	if _, err := s.GoNext(); !errors.Is(err, ErrNotInProgress) {
		t.Fatalf("next while paused: %v", err)
	}
}

func TestSession_TickExpiryCompletes(t *testing.T) {
	clock := newFakeClock()
	p := poolOf(t, mathQuestion())
	cfg := DefaultConfig()
	cfg.TimeLimit = 2 * time.Second
	sv := &memSaver{}
	s := startSession(t, p, cfg, WithClock(clock.now), WithSaver(sv))

	r, err := s.Tick()
	if err != nil || r != nil {
		t.Fatalf("first tick: result=%v err=%v", r, err)
	}
	r, err = s.Tick()
	if err != nil {
		t.Fatalf("second tick: %v", err)
	}
	if r == nil {
		t.Fatal("countdown expiry must complete the session")
	}
	if s.Phase != Completed {
		t.Errorf("phase = %s, want completed", s.Phase)
	}
	if !sv.cleared {
		t.Error("completion must clear the resume snapshot")
	}
	// Ticking a completed session is inert.
	if r2, err := s.Tick(); r2 != nil || err != nil {
		t.Errorf("tick after completion: result=%v err=%v", r2, err)
	}
}

func TestSession_AdaptiveGrowth(t *testing.T) {
	qs := []question.Question{
		{Type: question.TypeTF, Text: "e1", CorrectBool: true, Difficulty: question.Easy, Category: "General", Points: 1},
		{Type: question.TypeTF, Text: "m1", CorrectBool: true, Difficulty: question.Medium, Category: "General", Points: 2},
		{Type: question.TypeTF, Text: "m2", CorrectBool: true, Difficulty: question.Medium, Category: "General", Points: 2},
		{Type: question.TypeTF, Text: "h1", CorrectBool: true, Difficulty: question.Hard, Category: "General", Points: 3},
	}
	p, err := pool.Build(qs, 1, testRNG())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Adaptive = true
	cfg.QuestionCount = 3
	s := startSession(t, p, cfg, WithClock(newFakeClock().now), WithRNG(testRNG()))

	for i := 0; i < 2; i++ {
		if err := s.SubmitAnswer(Answer{Flag: s.Question().CorrectBool}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		ok, err := s.GoNext()
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("pool should grow at step %d", i)
		}
	}

	if len(s.Pool) != 3 {
		t.Fatalf("pool length = %d, want 3", len(s.Pool))
	}
	seen := make(map[string]bool)
	for _, q := range s.Pool {
		if seen[q.Text] {
			t.Fatalf("adaptive growth repeated question %q", q.Text)
		}
		seen[q.Text] = true
	}

	// At the target count the session refuses to grow further.
	if err := s.SubmitAnswer(Answer{Flag: s.Question().CorrectBool}); err != nil {
		t.Fatalf("final submit: %v", err)
	}
	ok, err := s.GoNext()
	if err != nil {
		t.Fatalf("final next: %v", err)
	}
	if ok {
		t.Error("session must stop growing at the configured count")
	}
}

func TestSession_GoPrevIsReviewOnly(t *testing.T) {
	p := poolOf(t, mathQuestion(), question.Question{
		Type: question.TypeTF, Text: "t", CorrectBool: true,
		Difficulty: question.Easy, Category: "General", Points: 1,
	})
	s := startSession(t, p, DefaultConfig(), WithClock(newFakeClock().now))

	if err := s.GoPrev(); err != nil {
		t.Fatalf("GoPrev at index 0: %v", err)
	}
	if s.Current != 0 {
		t.Errorf("GoPrev at the first question moved to %d", s.Current)
	}

	first := s.Question().Text
	if err := s.SubmitAnswer(answerFor(s.Question())); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := s.GoNext(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := s.GoPrev(); err != nil {
		t.Fatalf("prev: %v", err)
	}
	if s.Question().Text != first {
		t.Errorf("prev shows %q, want %q", s.Question().Text, first)
	}
	// The earlier answer is locked in.
	if s.Record() == nil {
		t.Fatal("record lost after navigating back")
	}
}

func answerFor(q question.Question) Answer {
	switch q.Type {
	case question.TypeMCQ:
		return Answer{Option: q.CorrectIndex}
	case question.TypeTF:
		return Answer{Flag: q.CorrectBool}
	default:
		return Answer{Text: q.CorrectText}
	}
}

func TestSession_SnapshotRoundTrip(t *testing.T) {
	clock := newFakeClock()
	sv := &memSaver{}
	p := poolOf(t, mathQuestion(), question.Question{
		Type: question.TypeTF, Text: "t", CorrectBool: true,
		Difficulty: question.Medium, Category: "logic", Points: 2,
	})
	s := startSession(t, p, DefaultConfig(), WithClock(clock.now), WithSaver(sv))

	clock.advance(4 * time.Second)
	if err := s.SubmitAnswer(answerFor(s.Question())); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := s.GoNext(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if sv.last == nil {
		t.Fatal("no snapshot persisted")
	}

	restored, err := Restore(sv.last, WithClock(clock.now), WithSaver(sv))
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if restored.ID != s.ID || restored.Quiz != s.Quiz {
		t.Errorf("identity lost: %s/%s vs %s/%s", restored.ID, restored.Quiz, s.ID, s.Quiz)
	}
	if restored.Current != s.Current || restored.Score != s.Score {
		t.Errorf("progress lost: current %d score %d, want %d/%d",
			restored.Current, restored.Score, s.Current, s.Score)
	}
	for d, pts := range s.DifficultyScore {
		if restored.DifficultyScore[d] != pts {
			t.Errorf("difficulty score = %v, want %v", restored.DifficultyScore, s.DifficultyScore)
		}
	}
	if restored.TimeRemaining != s.TimeRemaining {
		t.Errorf("time remaining = %v, want %v", restored.TimeRemaining, s.TimeRemaining)
	}
	if restored.Elapsed() != s.Elapsed() {
		t.Errorf("elapsed = %v, want %v", restored.Elapsed(), s.Elapsed())
	}
	if restored.Answers[0] == nil || restored.Answers[0].Points != s.Answers[0].Points {
		t.Errorf("answer records lost: %+v", restored.Answers)
	}

	// The restored session keeps working: finish it.
	if err := restored.SubmitAnswer(answerFor(restored.Question())); err != nil {
		t.Fatalf("submit after restore: %v", err)
	}
	r, err := restored.Complete()
	if err != nil {
		t.Fatalf("complete after restore: %v", err)
	}
	if r.Score != 7 {
		t.Errorf("final score = %d, want 7", r.Score)
	}
	if r.DifficultyScore[question.Easy] != 5 || r.DifficultyScore[question.Medium] != 2 {
		t.Errorf("final difficulty score = %v, want easy:5 medium:2", r.DifficultyScore)
	}
}

func TestRestore_RejectsBadSnapshots(t *testing.T) {
	tests := []struct {
		name string
		snap *Snapshot
	}{
		{"nil", nil},
		{"wrong version", &Snapshot{Version: 99}},
		{"empty pool", &Snapshot{Version: SnapshotVersion}},
		{"answer length mismatch", &Snapshot{
			Version: SnapshotVersion,
			Pool:    []question.Question{mathQuestion()},
			Answers: []*AnswerRecord{nil, nil},
		}},
		{"current out of range", &Snapshot{
			Version: SnapshotVersion,
			Pool:    []question.Question{mathQuestion()},
			Answers: []*AnswerRecord{nil},
			Current: 3,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Restore(tt.snap); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSession_PersistsOnEveryMutation(t *testing.T) {
	sv := &memSaver{}
	p := poolOf(t, mathQuestion(), question.Question{
		Type: question.TypeTF, Text: "t", CorrectBool: true,
		Difficulty: question.Easy, Category: "General", Points: 1,
	})
	s := startSession(t, p, DefaultConfig(), WithClock(newFakeClock().now), WithSaver(sv))

	before := sv.saves
	_ = s.SubmitAnswer(answerFor(s.Question()))
	_, _ = s.GoNext()
	_ = s.Pause()
	_ = s.Resume()
	_, _ = s.Tick()
	if sv.saves != before+5 {
		t.Errorf("saves = %d after 5 mutations, want %d", sv.saves-before, 5)
	}
}

func TestSession_CompleteIsIdempotent(t *testing.T) {
	clock := newFakeClock()
	p := poolOf(t, mathQuestion())
	s := startSession(t, p, DefaultConfig(), WithClock(clock.now))

	_ = s.SubmitAnswer(Answer{Option: 1})
	clock.advance(30 * time.Second)
	r1, err := s.Complete()
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	// The clock keeps running after completion; the result must not.
	clock.advance(time.Minute)
	r2, err := s.Complete()
	if err != nil {
		t.Fatalf("second Complete: %v", err)
	}
	if r1.Score != r2.Score || r1.Percentage != r2.Percentage {
		t.Errorf("results differ: %+v vs %+v", r1, r2)
	}
	if r1.TimeSpent != 30*time.Second || r2.TimeSpent != r1.TimeSpent {
		t.Errorf("time spent = %v then %v, want a stable 30s", r1.TimeSpent, r2.TimeSpent)
	}
}

func TestResult_CountModePercentage(t *testing.T) {
	p := poolOf(t,
		question.Question{Type: question.TypeTF, Text: "a", CorrectBool: true, Difficulty: question.Easy, Category: "General", Points: 10},
		question.Question{Type: question.TypeTF, Text: "b", CorrectBool: true, Difficulty: question.Easy, Category: "General", Points: 1},
	)
	cfg := DefaultConfig()
	cfg.CountByPoints = false
	cfg.PassingScore = 50
	s := startSession(t, p, cfg, WithClock(newFakeClock().now))

	// Answer only the first question correctly.
	_ = s.SubmitAnswer(Answer{Flag: true})
	r, err := s.Complete()
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if r.Percentage != 50 {
		t.Errorf("count-mode percentage = %v, want 50", r.Percentage)
	}
	if !r.Passed {
		t.Error("50%% at a 50%% threshold passes")
	}
}
