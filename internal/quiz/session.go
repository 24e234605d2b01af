// Package quiz runs a single quiz attempt: question sequencing, grading,
// the countdown clock, and pause/resume bookkeeping.
package quiz

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"quizdeck/internal/pool"
	"quizdeck/internal/question"
)

// Phase is the lifecycle stage of a session.
type Phase string

const (
	NotStarted Phase = "not_started"
	InProgress Phase = "in_progress"
	Paused     Phase = "paused"
	Completed  Phase = "completed"
)

var (
	// ErrNoAnswer means the submitted answer carries no concrete choice.
	ErrNoAnswer = errors.New("no answer selected")
	// ErrNotInProgress means the operation needs a running session.
	ErrNotInProgress = errors.New("session is not in progress")
)

// AnswerRecord is the graded outcome of one question, kept in pool order.
// A nil record means the question has not been answered yet.
type AnswerRecord struct {
	Answer    Answer        `json:"answer"`
	Outcome   Outcome       `json:"outcome"`
	Points    int           `json:"points"`
	TimeSpent time.Duration `json:"time_spent"`
}

// Saver persists a session snapshot so an interrupted attempt can resume.
type Saver interface {
	Save(*Snapshot) error
	Clear() error
}

// Session is one quiz attempt. It is not safe for concurrent use; the UI
// drives it from a single goroutine.
type Session struct {
	ID    string
	Quiz  string
	Cfg   Config
	Phase Phase

	Current         int
	Score           int
	CategoryScore   map[string]int
	DifficultyScore map[question.Difficulty]int

	Pool    []question.Question
	Reserve []question.Question
	Used    map[int]bool
	Answers []*AnswerRecord

	TimeRemaining time.Duration

	startedAt       time.Time
	pausedAt        time.Time
	completedAt     time.Time
	totalPaused     time.Duration
	questionShownAt time.Time
	questionPaused  time.Duration

	now   func() time.Time
	rng   *rand.Rand
	saver Saver
}

// Option configures a new session.
type Option func(*Session)

// WithClock overrides the session's time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithRNG overrides the session's randomness source.
func WithRNG(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithSaver attaches a persistence backend. Without one the session runs
// in memory only.
func WithSaver(sv Saver) Option {
	return func(s *Session) { s.saver = sv }
}

// New builds a session over an already-built pool. The working set becomes
// the question list; in adaptive mode it is the seed the reserve grows from.
func New(quizTitle string, p *pool.Pool, cfg Config, opts ...Option) *Session {
	s := &Session{
		ID:              uuid.NewString(),
		Quiz:            quizTitle,
		Cfg:             cfg,
		Phase:           NotStarted,
		CategoryScore:   make(map[string]int),
		DifficultyScore: make(map[question.Difficulty]int),
		Pool:            append([]question.Question(nil), p.Working...),
		Reserve:         p.Reserve,
		Used:            make(map[int]bool),
		Answers:         make([]*AnswerRecord, len(p.Working)),
		TimeRemaining:   cfg.TimeLimit,
	}
	// The working set occupies the reserve's prefix.
	for i := range p.Working {
		s.Used[i] = true
	}
	for _, o := range opts {
		o(s)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Start begins the attempt and the countdown. Calling it on a session that
// already started is a no-op.
func (s *Session) Start() error {
	if s.Phase != NotStarted {
		return nil
	}
	s.Phase = InProgress
	s.startedAt = s.now()
	s.questionShownAt = s.startedAt
	return s.persist()
}

// Question returns the currently shown question.
func (s *Session) Question() question.Question {
	return s.Pool[s.Current]
}

// Record returns the graded record for the current question, or nil while it
// is unanswered.
func (s *Session) Record() *AnswerRecord {
	return s.Answers[s.Current]
}

// Answered reports how many questions have a graded record.
func (s *Session) Answered() int {
	n := 0
	for _, r := range s.Answers {
		if r != nil {
			n++
		}
	}
	return n
}

// SubmitAnswer grades the current question. A question accepts exactly one
// answer: repeated submissions are silently ignored so the first grade stands.
func (s *Session) SubmitAnswer(a Answer) error {
	if s.Phase != InProgress {
		return ErrNotInProgress
	}
	if s.Answers[s.Current] != nil {
		return nil
	}

	q := s.Pool[s.Current]
	switch q.Type {
	case question.TypeMCQ:
		if a.Option < 0 || a.Option >= len(q.Options) {
			return ErrNoAnswer
		}
	case question.TypeFill:
		if len(a.Text) == 0 {
			return ErrNoAnswer
		}
	}

	spent := s.now().Sub(s.questionShownAt) - s.questionPaused
	if spent < 0 {
		spent = 0
	}

	pts, outcome := Score(q, a)
	s.Answers[s.Current] = &AnswerRecord{
		Answer:    a,
		Outcome:   outcome,
		Points:    pts,
		TimeSpent: spent,
	}
	s.Score += pts
	s.CategoryScore[q.Category] += pts
	s.DifficultyScore[q.Difficulty] += pts

	return s.persist()
}

// GoNext advances to the next question. At the end of the pool it either
// grows the pool adaptively (when configured and under the target count) or
// reports false, signalling the caller to complete the session.
func (s *Session) GoNext() (bool, error) {
	if s.Phase != InProgress {
		return false, ErrNotInProgress
	}

	if s.Current+1 >= len(s.Pool) {
		if !s.growPool() {
			return false, nil
		}
	}
	s.Current++
	if s.Answers[s.Current] == nil {
		s.questionShownAt = s.now()
		s.questionPaused = 0
	}
	return true, s.persist()
}

// growPool appends the next adaptive question. It reports false when the
// session reached its target length or the reserve ran dry.
func (s *Session) growPool() bool {
	if !s.Cfg.Adaptive {
		return false
	}
	if s.Cfg.QuestionCount > 0 && len(s.Pool) >= s.Cfg.QuestionCount {
		return false
	}
	last := s.Answers[s.Current]
	if last == nil {
		return false
	}
	idx, err := pool.SelectNext(
		s.Pool[s.Current].Difficulty,
		last.Outcome == Correct,
		s.Used, s.Reserve, s.rng,
	)
	if err != nil {
		// Exhausted reserve ends the attempt normally.
		return false
	}
	s.Used[idx] = true
	s.Pool = append(s.Pool, s.Reserve[idx])
	s.Answers = append(s.Answers, nil)
	return true
}

// GoPrev steps back to an earlier question for review. Answered questions
// stay locked; only navigation changes.
func (s *Session) GoPrev() error {
	if s.Phase != InProgress {
		return ErrNotInProgress
	}
	if s.Current == 0 {
		return nil
	}
	s.Current--
	return s.persist()
}

// Pause freezes the countdown and per-question clocks.
func (s *Session) Pause() error {
	if s.Phase != InProgress {
		return ErrNotInProgress
	}
	s.Phase = Paused
	s.pausedAt = s.now()
	return s.persist()
}

// Resume restarts the clocks, crediting the paused interval so it never
// counts against the question or the session.
func (s *Session) Resume() error {
	if s.Phase != Paused {
		return nil
	}
	d := s.now().Sub(s.pausedAt)
	s.totalPaused += d
	s.questionPaused += d
	s.Phase = InProgress
	return s.persist()
}

// Tick advances the countdown by one second. When time runs out the session
// is completed in place and the final result is returned.
func (s *Session) Tick() (*Result, error) {
	if s.Phase != InProgress {
		return nil, nil
	}
	s.TimeRemaining -= time.Second
	if s.TimeRemaining <= 0 {
		s.TimeRemaining = 0
		r, err := s.Complete()
		return r, err
	}
	return nil, s.persist()
}

// Complete finalizes the attempt, clears the resume snapshot, and returns
// the scored result. Completing twice returns the same result.
func (s *Session) Complete() (*Result, error) {
	if s.Phase == Completed {
		return s.result(), nil
	}
	if s.Phase == Paused {
		if err := s.Resume(); err != nil {
			return nil, err
		}
	}
	s.Phase = Completed
	s.completedAt = s.now()
	if s.saver != nil {
		if err := s.saver.Clear(); err != nil {
			return nil, err
		}
	}
	return s.result(), nil
}

// Elapsed is active session time: wall clock since start minus every paused
// interval.
func (s *Session) Elapsed() time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}
	end := s.now()
	switch s.Phase {
	case Paused:
		end = s.pausedAt
	case Completed:
		end = s.completedAt
	}
	return end.Sub(s.startedAt) - s.totalPaused
}

func (s *Session) persist() error {
	if s.saver == nil {
		return nil
	}
	return s.saver.Save(s.snapshot())
}
