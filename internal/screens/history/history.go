package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"quizdeck/internal/router"
	"quizdeck/internal/store"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Err      error
}

type answersLoadedMsg struct {
	AttemptID string
	Answers   []store.AnswerRecord
	Err       error
}

// HistoryScreen lists past attempts and expands them into their per-question
// answers on demand.
type HistoryScreen struct {
	events   store.EventRepo
	attempts []store.AttemptRecord
	answers  map[string][]store.AnswerRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ router.Screen = (*HistoryScreen)(nil)
var _ router.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		events:   events,
		answers:  make(map[string][]store.AnswerRecord),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	events := s.events
	return func() tea.Msg {
		if events == nil {
			return historyLoadedMsg{}
		}
		attempts, err := events.QueryAttempts(context.Background(), store.QueryOpts{Limit: 50})
		return historyLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err == nil {
			s.answers[msg.AttemptID] = msg.Answers
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s.toggleDetails()
		}
	}
	return s, nil
}

// toggleDetails expands the selected attempt, loading its answers on first open.
func (s *HistoryScreen) toggleDetails() (router.Screen, tea.Cmd) {
	if s.selected >= len(s.attempts) {
		return s, nil
	}
	s.expanded[s.selected] = !s.expanded[s.selected]

	attemptID := s.attempts[s.selected].AttemptID
	if _, ok := s.answers[attemptID]; ok || !s.expanded[s.selected] {
		return s, nil
	}

	events := s.events
	return s, func() tea.Msg {
		answers, err := events.AnswersForAttempt(context.Background(), attemptID)
		return answersLoadedMsg{AttemptID: attemptID, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Pick a quiz and play!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, at := range s.attempts {
		dateStr := at.Timestamp.Format("Jan 02, 2006")
		mins := at.DurationSecs / 60
		secs := at.DurationSecs % 60

		verdict := "failed"
		vStyle := theme.Error
		if at.Passed {
			verdict = "passed"
			vStyle = theme.Success
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d/%d pts  %.0f%%  %d:%02d  ",
			prefix, dateStr, at.Quiz, at.Score, at.Possible, at.Percentage, mins, secs)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		rendered := style.Render(line) +
			lipgloss.NewStyle().Foreground(vStyle).Render(verdict)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rendered))
		b.WriteString("\n")

		if s.expanded[i] {
			s.renderAnswers(&b, at.AttemptID, width)
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderAnswers(b *strings.Builder, attemptID string, width int) {
	answers, ok := s.answers[attemptID]
	if !ok {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    Loading answers...")))
		b.WriteString("\n")
		return
	}
	if len(answers) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    No answers recorded")))
		b.WriteString("\n")
		return
	}

	for _, a := range answers {
		mark := "✗"
		style := lipgloss.NewStyle().Foreground(theme.Error)
		switch a.Outcome {
		case "correct":
			mark = "✓"
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case "partial":
			mark = "~"
			style = lipgloss.NewStyle().Foreground(theme.Warning)
		}

		text := a.QuestionText
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		line := fmt.Sprintf("    %s %-50s %s (+%d)", mark, text, a.GivenAnswer, a.Points)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
}
