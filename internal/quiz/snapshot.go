package quiz

import (
	"errors"
	"math/rand/v2"
	"time"

	"quizdeck/internal/question"
)

// SnapshotVersion is bumped whenever the snapshot layout changes. A stored
// snapshot with a different version is treated as absent.
const SnapshotVersion = 1

// ErrSnapshotVersion means a stored snapshot was written by an incompatible
// layout and cannot be resumed.
var ErrSnapshotVersion = errors.New("incompatible snapshot version")

// Snapshot is the full serializable state of an interrupted session. It is
// written after every mutation so a crash loses at most the in-flight step.
type Snapshot struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	Quiz    string `json:"quiz"`
	Cfg     Config `json:"config"`

	Current         int                         `json:"current"`
	Score           int                         `json:"score"`
	CategoryScore   map[string]int              `json:"category_score"`
	DifficultyScore map[question.Difficulty]int `json:"difficulty_score"`

	Pool    []question.Question `json:"pool"`
	Reserve []question.Question `json:"reserve"`
	Used    map[int]bool        `json:"used"`
	Answers []*AnswerRecord     `json:"answers"`

	TimeRemaining time.Duration `json:"time_remaining"`
	Elapsed       time.Duration `json:"elapsed"`
	SavedAt       time.Time     `json:"saved_at"`
}

func (s *Session) snapshot() *Snapshot {
	return &Snapshot{
		Version:         SnapshotVersion,
		ID:              s.ID,
		Quiz:            s.Quiz,
		Cfg:             s.Cfg,
		Current:         s.Current,
		Score:           s.Score,
		CategoryScore:   s.CategoryScore,
		DifficultyScore: s.DifficultyScore,
		Pool:            s.Pool,
		Reserve:         s.Reserve,
		Used:            s.Used,
		Answers:         s.Answers,
		TimeRemaining:   s.TimeRemaining,
		Elapsed:         s.Elapsed(),
		SavedAt:         s.now(),
	}
}

// Restore rebuilds a running session from a snapshot. The current question's
// clock restarts at the moment of restore; the session clock resumes from the
// recorded elapsed time.
func Restore(snap *Snapshot, opts ...Option) (*Session, error) {
	if snap == nil {
		return nil, errors.New("nil snapshot")
	}
	if snap.Version != SnapshotVersion {
		return nil, ErrSnapshotVersion
	}
	if len(snap.Pool) == 0 || len(snap.Answers) != len(snap.Pool) ||
		snap.Current < 0 || snap.Current >= len(snap.Pool) {
		return nil, errors.New("malformed snapshot")
	}

	s := &Session{
		ID:              snap.ID,
		Quiz:            snap.Quiz,
		Cfg:             snap.Cfg,
		Phase:           InProgress,
		Current:         snap.Current,
		Score:           snap.Score,
		CategoryScore:   snap.CategoryScore,
		DifficultyScore: snap.DifficultyScore,
		Pool:            snap.Pool,
		Reserve:         snap.Reserve,
		Used:            snap.Used,
		Answers:         snap.Answers,
		TimeRemaining:   snap.TimeRemaining,
	}
	if s.CategoryScore == nil {
		s.CategoryScore = make(map[string]int)
	}
	if s.DifficultyScore == nil {
		s.DifficultyScore = make(map[question.Difficulty]int)
	}
	if s.Used == nil {
		s.Used = make(map[int]bool)
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

	now := s.now()
	s.startedAt = now.Add(-snap.Elapsed)
	s.questionShownAt = now
	s.questionPaused = 0
	return s, nil
}
