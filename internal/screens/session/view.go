package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.done:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Scoring your attempt...")
	case s.quitConfirm:
		return renderQuitConfirm(width)
	case s.sess.Phase == quiz.Paused:
		return renderPaused(width)
	case s.showingFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderQuestion(width)
	}
}

// renderQuestion renders the active question with its answer widget.
func (s *SessionScreen) renderQuestion(width int) string {
	q := s.sess.Question()

	var b strings.Builder

	// Progress line.
	answered := s.sess.Answered()
	total := len(s.sess.Pool)
	bar := components.NewProgressBar("", float64(answered)/float64(total), false, min(width-20, 40))

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", q.Category, q.Difficulty))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d answered  ", answered, total))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text.
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("worth %d points", q.Points)))
	b.WriteString("\n\n")

	// Answer widget.
	switch q.Type {
	case question.TypeFill:
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
	default:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	}

	// Hint.
	if s.hintShown[s.sess.Current] && q.Hint != "" {
		b.WriteString("\n\n")
		hint := theme.Hint.Width(min(width-8, 70)).Render("Hint: " + q.Hint)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
	} else if q.Hint != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press H for a hint"))
	}

	return b.String()
}

// renderFeedback renders the graded outcome of the question just answered.
func (s *SessionScreen) renderFeedback(width int) string {
	q := s.sess.Question()
	rec := s.sess.Record()
	if rec == nil {
		return s.renderQuestion(width)
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n")

	switch rec.Outcome {
	case quiz.Correct:
		b.WriteString(center.Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("Correct!  +%d points", rec.Points)))
	case quiz.Partial:
		b.WriteString(center.Foreground(theme.Warning).Bold(true).
			Render(fmt.Sprintf("Close!  +%d points (partial credit)", rec.Points)))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("Full answer: %s", q.CorrectAnswerText())))
	default:
		b.WriteString(center.Foreground(theme.Error).Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", q.CorrectAnswerText())))
	}

	b.WriteString("\n\n")

	// Per-outcome explanation from the quiz author.
	if exp := feedbackText(q, rec.Outcome); exp != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(exp)))
		b.WriteString("\n\n")
	}

	b.WriteString(center.Foreground(theme.TextDim).
		Render("Enter for the next question, ← to review"))

	return b.String()
}

func feedbackText(q question.Question, o quiz.Outcome) string {
	switch o {
	case quiz.Correct:
		return q.Feedback.Correct
	case quiz.Partial:
		if q.Feedback.Partial != "" {
			return q.Feedback.Partial
		}
		return q.Feedback.Incorrect
	default:
		return q.Feedback.Incorrect
	}
}

// renderPaused renders the paused overlay. The question stays hidden so the
// clock cannot be gamed.
func renderPaused(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Accent).Bold(true).Render("Paused"))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("The clock is stopped. Press P to resume."))
	return b.String()
}

// renderQuitConfirm renders the early-finish confirmation dialog.
func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Finish the quiz now?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Unanswered questions score zero."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Render("[Y] Yes, show my results"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
