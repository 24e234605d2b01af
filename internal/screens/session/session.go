package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
	"quizdeck/internal/router"
	"quizdeck/internal/screens/summary"
	"quizdeck/internal/store"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/layout"
)

// SessionScreen drives a single quiz attempt: it renders the current
// question, grades answers through the session, and ticks the countdown.
type SessionScreen struct {
	sess   *quiz.Session
	events store.EventRepo

	choice components.Choice
	input  components.TextInput

	showingFeedback bool
	quitConfirm     bool
	hintShown       map[int]bool
	done            bool
	errMsg          string
}

var _ router.Screen = (*SessionScreen)(nil)
var _ router.KeyHintProvider = (*SessionScreen)(nil)
var _ router.StatusProvider = (*SessionScreen)(nil)

// New wraps an already-built session. The caller decides whether it is a
// fresh attempt or one restored from a snapshot.
func New(sess *quiz.Session, events store.EventRepo) *SessionScreen {
	return &SessionScreen{
		sess:      sess,
		events:    events,
		hintShown: make(map[int]bool),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	if err := s.sess.Start(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.syncWidgets()
	return tea.Batch(s.input.Init(), tickCmd())
}

func (s *SessionScreen) Title() string {
	return s.sess.Quiz
}

// HeaderStatus shows position, score, and the countdown in the header.
func (s *SessionScreen) HeaderStatus() string {
	if s.done {
		return ""
	}
	remaining := s.sess.TimeRemaining
	if remaining < 0 {
		remaining = 0
	}
	mins := int(remaining.Minutes())
	secs := int(remaining.Seconds()) % 60

	status := fmt.Sprintf("Q %d/%d  %d pts  %d:%02d",
		s.sess.Current+1, len(s.sess.Pool), s.sess.Score, mins, secs)
	if s.sess.Phase == quiz.Paused {
		status += "  PAUSED"
	}
	return status
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Finish now"},
			{Key: "N", Description: "Keep going"},
		}
	case s.sess.Phase == quiz.Paused:
		return []layout.KeyHint{
			{Key: "P", Description: "Resume"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "←", Description: "Review"},
			{Key: "Esc", Description: "Finish"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "←→", Description: "Navigate"},
			{Key: "H", Description: "Hint"},
			{Key: "P", Description: "Pause"},
			{Key: "Esc", Description: "Finish"},
		}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()

	case attemptDoneMsg:
		return s.handleDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and the like go to the text input while it is live.
	if s.fillActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SessionScreen) handleTick() (router.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}
	res, err := s.sess.Tick()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if res != nil {
		// Countdown hit zero; the session completed itself.
		s.done = true
		return s, s.recordCmd(res)
	}
	return s, tickCmd()
}

func (s *SessionScreen) handleDone(msg attemptDoneMsg) (router.Screen, tea.Cmd) {
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(msg.Result)}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.done {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s.finish()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.sess.Phase == quiz.Paused {
		if key == "p" || key == "P" {
			if err := s.sess.Resume(); err != nil {
				s.errMsg = err.Error()
			}
		}
		return s, nil
	}

	if s.showingFeedback {
		switch key {
		case "enter", "space", "right", "n":
			s.showingFeedback = false
			return s.advance()
		case "left":
			s.showingFeedback = false
			return s.stepBack()
		case "esc":
			s.quitConfirm = true
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "enter":
		return s.submit()
	case "left":
		return s.stepBack()
	case "right":
		// Moving past the last question requires an answer first.
		if s.sess.Record() == nil && s.sess.Current+1 >= len(s.sess.Pool) {
			return s, nil
		}
		return s.advance()
	}

	if s.fillActive() {
		switch key {
		case "ctrl+p":
			if err := s.sess.Pause(); err != nil {
				s.errMsg = err.Error()
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch key {
	case "p", "P":
		if err := s.sess.Pause(); err != nil {
			s.errMsg = err.Error()
		}
		return s, nil
	case "h", "H":
		return s.showHint()
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

// submit grades the current question and flips into feedback mode.
func (s *SessionScreen) submit() (router.Screen, tea.Cmd) {
	if s.sess.Record() != nil {
		// Already graded; Enter moves on instead.
		return s.advance()
	}

	q := s.sess.Question()
	var ans quiz.Answer
	switch q.Type {
	case question.TypeMCQ:
		ans = quiz.Answer{Option: s.choice.Selected}
	case question.TypeTF:
		ans = quiz.Answer{Flag: s.choice.Selected == 0}
	case question.TypeFill:
		ans = quiz.Answer{Text: s.input.Value()}
	}

	if err := s.sess.SubmitAnswer(ans); err != nil {
		if errors.Is(err, quiz.ErrNoAnswer) {
			return s, nil
		}
		s.errMsg = err.Error()
		return s, nil
	}

	s.lockWidgets(s.sess.Record())
	s.showingFeedback = true
	return s, nil
}

// advance moves to the next question, completing the attempt when the
// session reports there is none.
func (s *SessionScreen) advance() (router.Screen, tea.Cmd) {
	ok, err := s.sess.GoNext()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if !ok {
		return s.finish()
	}
	s.syncWidgets()
	return s, s.input.Init()
}

func (s *SessionScreen) stepBack() (router.Screen, tea.Cmd) {
	if err := s.sess.GoPrev(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.syncWidgets()
	return s, nil
}

func (s *SessionScreen) showHint() (router.Screen, tea.Cmd) {
	q := s.sess.Question()
	if q.Hint == "" {
		return s, nil
	}
	if s.hintShown[s.sess.Current] {
		return s, nil
	}
	s.hintShown[s.sess.Current] = true

	if s.events == nil {
		return s, nil
	}
	events := s.events
	data := store.HintEventData{
		AttemptID:    s.sess.ID,
		QuestionText: q.Text,
		HintText:     q.Hint,
	}
	return s, func() tea.Msg {
		_ = events.AppendHintEvent(context.Background(), data)
		return nil
	}
}

// finish completes the attempt and records it before handing off to the
// summary screen.
func (s *SessionScreen) finish() (router.Screen, tea.Cmd) {
	res, err := s.sess.Complete()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.done = true
	return s, s.recordCmd(res)
}

func (s *SessionScreen) recordCmd(res *quiz.Result) tea.Cmd {
	events := s.events
	adaptive := s.sess.Cfg.Adaptive
	return func() tea.Msg {
		if events != nil {
			// A history write failure should not hide the result.
			_ = events.RecordResult(context.Background(), res, adaptive)
		}
		return attemptDoneMsg{Result: res}
	}
}

// syncWidgets rebuilds the answer widget for the current question, restoring
// the locked state when the question was already graded.
func (s *SessionScreen) syncWidgets() {
	q := s.sess.Question()
	switch q.Type {
	case question.TypeMCQ:
		s.choice = components.NewChoice(q.Options, q.CorrectIndex)
		s.choice.PartialIndex = q.IsPartialIndex
	case question.TypeTF:
		correct := 1
		if q.CorrectBool {
			correct = 0
		}
		s.choice = components.NewChoice([]string{"True", "False"}, correct)
	case question.TypeFill:
		s.input = components.NewTextInput("Type your answer...", 120)
	}

	if rec := s.sess.Record(); rec != nil {
		s.lockWidgets(rec)
	}
}

func (s *SessionScreen) lockWidgets(rec *quiz.AnswerRecord) {
	q := s.sess.Question()
	switch q.Type {
	case question.TypeMCQ:
		s.choice.Lock(rec.Answer.Option)
	case question.TypeTF:
		chosen := 1
		if rec.Answer.Flag {
			chosen = 0
		}
		s.choice.Lock(chosen)
	case question.TypeFill:
		s.input = components.NewTextInput("", 120)
		s.input.Model.SetValue(rec.Answer.Text)
		s.input.Submit(string(rec.Outcome))
	}
}

// fillActive reports whether keystrokes belong to the free-text input.
func (s *SessionScreen) fillActive() bool {
	return !s.done &&
		s.sess.Phase == quiz.InProgress &&
		!s.showingFeedback && !s.quitConfirm &&
		s.sess.Question().Type == question.TypeFill &&
		s.sess.Record() == nil
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
