package home

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
	"quizdeck/internal/router"
)

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snap *quiz.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *quiz.Snapshot) error {
	m.snap = snap
	return nil
}
func (m *mockSnapshotRepo) Load(_ context.Context) (*quiz.Snapshot, error) {
	return m.snap, nil
}
func (m *mockSnapshotRepo) Clear(_ context.Context) error {
	m.snap = nil
	return nil
}

func writeQuizFile(t *testing.T) (dir string, entry question.IndexEntry) {
	t.Helper()
	dir = t.TempDir()

	data := []byte(`{"questions": [{
		"type": "mcq",
		"question": "What is the capital of France?",
		"options": ["Paris", "London"],
		"correct": 0,
		"difficulty": "easy",
		"category": "geography",
		"points": 5
	}]}`)
	if err := os.WriteFile(filepath.Join(dir, "capitals.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, question.IndexEntry{File: "capitals.json", Title: "Capitals"}
}

func testDeps(t *testing.T) Deps {
	dir, entry := writeQuizFile(t)
	return Deps{
		QuizDir: dir,
		Entries: []question.IndexEntry{entry},
		Config:  quiz.DefaultConfig(),
	}
}

func TestHomeScreen_MenuWithoutSnapshot(t *testing.T) {
	h := New(testDeps(t))

	items := h.menuItems()
	// One quiz entry plus HISTORY and EXIT.
	if len(items) != 3 {
		t.Fatalf("menu items = %d, want 3", len(items))
	}
	if items[0].Label != "PLAY: Capitals" {
		t.Errorf("first item = %q", items[0].Label)
	}
}

func TestHomeScreen_MenuWithSnapshot(t *testing.T) {
	h := New(testDeps(t))
	h.Update(homeDataMsg{Snapshot: &quiz.Snapshot{
		Version: quiz.SnapshotVersion,
		Quiz:    "Capitals",
		Current: 2,
		Pool:    make([]question.Question, 5),
	}})

	items := h.menuItems()
	if len(items) != 4 {
		t.Fatalf("menu items = %d, want 4", len(items))
	}
	if items[0].Label != "RESUME: Capitals" {
		t.Errorf("first item = %q", items[0].Label)
	}
	if items[0].Detail != "question 3 of 5" {
		t.Errorf("resume detail = %q", items[0].Detail)
	}
}

func TestHomeScreen_StartPushesSession(t *testing.T) {
	deps := testDeps(t)
	h := New(deps)

	msg := h.startCmd(deps.Entries[0])()()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
}

func TestHomeScreen_StartMissingFileFails(t *testing.T) {
	deps := testDeps(t)
	h := New(deps)

	msg := h.startCmd(question.IndexEntry{File: "nope.json", Title: "Nope"})()()
	failed, ok := msg.(startFailedMsg)
	if !ok {
		t.Fatalf("expected startFailedMsg, got %T", msg)
	}

	scr, _ := h.Update(failed)
	if scr.(*HomeScreen).errMsg == "" {
		t.Error("expected error message to be shown")
	}
}

func TestHomeScreen_ResumeRestoresSession(t *testing.T) {
	deps := testDeps(t)
	h := New(deps)

	snap := &quiz.Snapshot{
		Version: quiz.SnapshotVersion,
		ID:      "attempt-1",
		Quiz:    "Capitals",
		Cfg:     quiz.DefaultConfig(),
		Current: 0,
		Pool: []question.Question{{
			Type:         question.TypeMCQ,
			Text:         "Q?",
			Options:      []string{"a", "b"},
			CorrectIndex: 0,
			Points:       5,
		}},
		Answers:       make([]*quiz.AnswerRecord, 1),
		TimeRemaining: 5 * time.Minute,
	}

	msg := h.resumeCmd(snap)()()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
}

func TestHomeScreen_InitLoadsSnapshotAndStats(t *testing.T) {
	deps := testDeps(t)
	deps.Snapshots = &mockSnapshotRepo{snap: &quiz.Snapshot{
		Version: quiz.SnapshotVersion,
		Quiz:    "Capitals",
		Pool:    make([]question.Question, 3),
	}}
	h := New(deps)

	msg := h.Init()()
	data, ok := msg.(homeDataMsg)
	if !ok {
		t.Fatalf("expected homeDataMsg, got %T", msg)
	}
	if data.Snapshot == nil || data.Snapshot.Quiz != "Capitals" {
		t.Errorf("snapshot = %+v", data.Snapshot)
	}
}

func TestHomeScreen_View(t *testing.T) {
	h := New(testDeps(t))
	if h.View(80, 24) == "" {
		t.Error("expected non-empty home view")
	}
}
