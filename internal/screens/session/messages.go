package session

import (
	"time"

	"quizdeck/internal/quiz"
)

// timerTickMsg is sent every second to drive the countdown.
type timerTickMsg time.Time

// attemptDoneMsg is sent when the attempt has been finalized and its result
// recorded, carrying the summary payload.
type attemptDoneMsg struct {
	Result *quiz.Result
	Err    error
}
