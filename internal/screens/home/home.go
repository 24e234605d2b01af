package home

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/pool"
	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
	"quizdeck/internal/router"
	"quizdeck/internal/screens/history"
	sessionscreen "quizdeck/internal/screens/session"
	"quizdeck/internal/store"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/theme"
)

// Deps carries everything the home screen needs to launch attempts.
type Deps struct {
	QuizDir   string
	Entries   []question.IndexEntry
	Config    quiz.Config
	Snapshots store.SnapshotRepo
	Events    store.EventRepo
	Saver     quiz.Saver
}

// homeDataMsg delivers the resume snapshot and history stats loaded at init.
type homeDataMsg struct {
	Snapshot *quiz.Snapshot
	Stats    *store.StatsSummary
}

// startFailedMsg reports that a quiz could not be started.
type startFailedMsg struct {
	Err error
}

// HomeScreen is the quiz picker and entry point of the application.
type HomeScreen struct {
	deps     Deps
	menu     components.Menu
	snapshot *quiz.Snapshot
	stats    *store.StatsSummary
	errMsg   string
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	deps := h.deps
	return func() tea.Msg {
		ctx := context.Background()

		var msg homeDataMsg
		if deps.Snapshots != nil {
			// A broken or stale snapshot reads as absent.
			msg.Snapshot, _ = deps.Snapshots.Load(ctx)
		}
		if deps.Events != nil {
			msg.Stats, _ = deps.Events.Stats(ctx)
		}
		return msg
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case homeDataMsg:
		h.snapshot = msg.Snapshot
		h.stats = msg.Stats
		h.menu = components.NewMenu(h.menuItems())
		return h, nil

	case startFailedMsg:
		h.errMsg = msg.Err.Error()
		return h, nil

	case tea.KeyMsg:
		if h.errMsg != "" {
			h.errMsg = ""
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// menuItems builds the menu: an optional resume slot, one entry per quiz,
// then history and exit.
func (h *HomeScreen) menuItems() []components.MenuItem {
	var items []components.MenuItem

	if snap := h.snapshot; snap != nil {
		detail := fmt.Sprintf("question %d of %d", snap.Current+1, len(snap.Pool))
		items = append(items, components.MenuItem{
			Label:  "RESUME: " + snap.Quiz,
			Detail: detail,
			Action: h.resumeCmd(snap),
		})
	}

	for _, entry := range h.deps.Entries {
		items = append(items, components.MenuItem{
			Label:  "PLAY: " + entry.Title,
			Action: h.startCmd(entry),
		})
	}

	items = append(items,
		components.MenuItem{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.deps.Events)}
			}
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	return items
}

// startCmd loads the quiz file and launches a fresh attempt.
func (h *HomeScreen) startCmd(entry question.IndexEntry) func() tea.Cmd {
	deps := h.deps
	return func() tea.Cmd {
		return func() tea.Msg {
			qs, err := question.LoadFile(filepath.Join(deps.QuizDir, entry.File))
			if err != nil {
				return startFailedMsg{Err: err}
			}

			// Adaptive attempts seed with one question and grow toward the
			// target; fixed attempts take the full count up front.
			requested := deps.Config.QuestionCount
			if deps.Config.Adaptive {
				requested = 1
			}

			rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			p, err := pool.Build(qs, requested, rng)
			if err != nil {
				return startFailedMsg{Err: err}
			}

			sess := quiz.New(entry.Title, p, deps.Config, quiz.WithSaver(deps.Saver))
			return router.PushScreenMsg{
				Screen: sessionscreen.New(sess, deps.Events),
			}
		}
	}
}

// resumeCmd rebuilds the interrupted attempt from its snapshot.
func (h *HomeScreen) resumeCmd(snap *quiz.Snapshot) func() tea.Cmd {
	deps := h.deps
	return func() tea.Cmd {
		return func() tea.Msg {
			sess, err := quiz.Restore(snap, quiz.WithSaver(deps.Saver))
			if err != nil {
				return startFailedMsg{Err: err}
			}
			return router.PushScreenMsg{
				Screen: sessionscreen.New(sess, deps.Events),
			}
		}
	}
}

func (h *HomeScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("QuizDeck"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Pick a quiz to begin"))
	b.WriteString("\n\n")

	if h.errMsg != "" {
		b.WriteString(center.Foreground(theme.Error).Render("Error: " + h.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if st := h.stats; st != nil && st.Attempts > 0 {
		b.WriteString("\n")
		line := fmt.Sprintf("%d attempts · %d passed · %.0f%% average",
			st.Attempts, st.Passed, st.AvgPercentage)
		b.WriteString(center.Foreground(theme.TextDim).Render(line))
	}

	return b.String()
}
