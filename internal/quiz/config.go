package quiz

import "time"

// Config holds the tunables for one quiz session.
type Config struct {
	// QuestionCount is the target number of questions. 0 means the whole
	// working pool. In adaptive mode this is the fixed target the pool
	// grows toward.
	QuestionCount int `json:"question_count"`

	// TimeLimit is the whole-session countdown.
	TimeLimit time.Duration `json:"time_limit"`

	// PassingScore is the pass threshold as a percentage.
	PassingScore float64 `json:"passing_score"`

	// Adaptive grows the pool one question at a time based on the previous
	// answer's correctness.
	Adaptive bool `json:"adaptive"`

	// CountByPoints computes the final percentage from earned points over
	// possible points. When false it is correct answers over total questions.
	CountByPoints bool `json:"count_by_points"`
}

// DefaultConfig returns the standard session settings: ten questions,
// ten minutes, 70% to pass.
func DefaultConfig() Config {
	return Config{
		QuestionCount: 10,
		TimeLimit:     10 * time.Minute,
		PassingScore:  70,
		CountByPoints: true,
	}
}
