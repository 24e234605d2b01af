package store

import (
	"context"
	"time"

	"quizdeck/internal/quiz"
)

// ResumeSlot is the single resume slot the app uses today. The schema is
// keyed so concurrent profiles could get their own slots later.
const ResumeSlot = "default"

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotRepo manages the resume snapshot slot.
type SnapshotRepo interface {
	// Save upserts the resume slot with the given session snapshot.
	Save(ctx context.Context, snap *quiz.Snapshot) error

	// Load returns the stored snapshot, or nil when the slot is empty,
	// malformed, or written by an incompatible layout version.
	Load(ctx context.Context) (*quiz.Snapshot, error)

	// Clear empties the resume slot.
	Clear(ctx context.Context) error
}

// AttemptEventData captures one completed quiz attempt.
type AttemptEventData struct {
	AttemptID    string
	Quiz         string
	Score        int
	Possible     int
	Percentage   float64
	Passed       bool
	Correct      int
	Total        int
	DurationSecs int
	Adaptive     bool
}

// AttemptRecord is a stored attempt with its event metadata.
type AttemptRecord struct {
	AttemptEventData
	Sequence  int64
	Timestamp time.Time
}

// AnswerEventData captures one graded answer within an attempt.
type AnswerEventData struct {
	AttemptID     string
	QuestionText  string
	QuestionType  string
	Difficulty    string
	Category      string
	CorrectAnswer string
	GivenAnswer   string
	Outcome       string
	Points        int
	TimeMs        int
}

// AnswerRecord is a stored answer with its event metadata.
type AnswerRecord struct {
	AnswerEventData
	Sequence  int64
	Timestamp time.Time
}

// HintEventData captures a hint reveal during an attempt.
type HintEventData struct {
	AttemptID    string
	QuestionText string
	HintText     string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestRecord is a stored LLM request with its event metadata.
type LLMRequestRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// StatsSummary aggregates attempt history for the stats view.
type StatsSummary struct {
	Attempts      int
	Passed        int
	AvgPercentage float64
	BestQuiz      string
	BestPct       float64
	CategoryAcc   map[string]float64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttemptEvent records a completed attempt.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// QueryAttempts returns attempts, newest first.
	QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// RecordResult writes the attempt event and its answer events in one call.
	RecordResult(ctx context.Context, r *quiz.Result, adaptive bool) error

	// Stats aggregates attempt history.
	Stats(ctx context.Context) (*StatsSummary, error)

	// AppendAnswerEvent records a single graded answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AnswersForAttempt returns an attempt's answers in pool order.
	AnswersForAttempt(ctx context.Context, attemptID string) ([]AnswerRecord, error)

	// AppendHintEvent records that a hint was revealed.
	AppendHintEvent(ctx context.Context, data HintEventData) error

	// HintCount returns how many hints an attempt used.
	HintCount(ctx context.Context, attemptID string) (int, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// LLMUsageByPurpose aggregates calls and tokens per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates calls and tokens per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
