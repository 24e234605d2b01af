package summary

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
	"quizdeck/internal/results"
	"quizdeck/internal/router"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

// exportDoneMsg reports the outcome of a CSV or HTML export.
type exportDoneMsg struct {
	Path string
	Err  error
}

// SummaryScreen displays the final scoreboard of a completed attempt and
// offers CSV and HTML exports.
type SummaryScreen struct {
	result    *quiz.Result
	exportMsg string
}

var _ router.Screen = (*SummaryScreen)(nil)
var _ router.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result *quiz.Result) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "C", Description: "Export CSV"},
		{Key: "R", Description: "Export report"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.Err != nil {
			s.exportMsg = "Export failed: " + msg.Err.Error()
		} else {
			s.exportMsg = "Saved " + msg.Path
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "c", "C":
			return s, s.exportCmd("csv")
		case "r", "R":
			return s, s.exportCmd("html")
		}
	}
	return s, nil
}

func (s *SummaryScreen) exportCmd(format string) tea.Cmd {
	r := s.result
	return func() tea.Msg {
		path := exportPath(r, format)
		var err error
		if format == "csv" {
			err = results.ExportCSV(path, r)
		} else {
			err = results.ExportHTML(path, r)
		}
		return exportDoneMsg{Path: path, Err: err}
	}
}

// exportPath derives a filesystem-safe filename from the quiz title and the
// attempt ID.
func exportPath(r *quiz.Result, ext string) string {
	slug := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			return c
		case c >= 'A' && c <= 'Z':
			return c + ('a' - 'A')
		default:
			return '-'
		}
	}, r.Quiz)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "quiz"
	}
	id := r.SessionID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s-results-%s.%s", slug, id, ext)
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	if r == nil {
		return ""
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	// Verdict.
	if r.Passed {
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("Passed!"))
	} else {
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Not passed"))
	}
	b.WriteString("\n\n")

	// Score line.
	b.WriteString(center.Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%d / %d points  (%.1f%%)", r.Score, r.Possible, r.Percentage)))
	b.WriteString("\n")

	mins := int(r.TimeSpent.Minutes())
	secs := int(r.TimeSpent.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d correct · %d partial · %d of %d answered · %d:%02d",
			r.CorrectCount, r.PartialCount, r.AnsweredCount, r.Total, mins, secs)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Category breakdown.
	if len(r.CategoryScore) > 0 {
		b.WriteString(center.Foreground(theme.TextDim).Render("Categories"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		cats := make([]string, 0, len(r.CategoryScore))
		for c := range r.CategoryScore {
			cats = append(cats, c)
		}
		sort.Strings(cats)
		for _, c := range cats {
			line := fmt.Sprintf("  %-20s %d pts", c, r.CategoryScore[c])
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Difficulty breakdown.
	if len(r.DifficultyStats) > 0 {
		b.WriteString(center.Foreground(theme.TextDim).Render("Difficulty"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, d := range []question.Difficulty{question.Easy, question.Medium, question.Hard} {
			st, ok := r.DifficultyStats[d]
			if !ok {
				continue
			}
			line := fmt.Sprintf("  %-8s %d/%d correct", d, st.Correct, st.Total)
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if st.Correct == st.Total && st.Total > 0 {
				style = style.Foreground(theme.Success)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if s.exportMsg != "" {
		b.WriteString(center.Foreground(theme.Accent).Render(s.exportMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
