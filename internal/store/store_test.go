package store

import (
	"context"
	"testing"
	"time"

	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSnapshot(quizTitle string) *quiz.Snapshot {
	q := question.Question{
		Type:         question.TypeMCQ,
		Text:         "What is 2 + 2?",
		Options:      []string{"3", "4"},
		CorrectIndex: 1,
		Difficulty:   question.Easy,
		Category:     "math",
		Points:       5,
	}
	return &quiz.Snapshot{
		Version:       quiz.SnapshotVersion,
		ID:            "attempt-1",
		Quiz:          quizTitle,
		Cfg:           quiz.DefaultConfig(),
		Pool:          []question.Question{q},
		Reserve:       []question.Question{q},
		Used:          map[int]bool{0: true},
		Answers:       []*quiz.AnswerRecord{nil},
		TimeRemaining: 9 * time.Minute,
		SavedAt:       time.Now().UTC(),
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveLoadClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Empty slot.
	snap, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when the slot is empty")
	}

	if err := repo.Save(ctx, testSnapshot("Algebra Basics")); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Quiz != "Algebra Basics" {
		t.Errorf("quiz = %q, want %q", snap.Quiz, "Algebra Basics")
	}
	if len(snap.Pool) != 1 || snap.Pool[0].CorrectIndex != 1 {
		t.Errorf("pool not preserved: %+v", snap.Pool)
	}
	if snap.TimeRemaining != 9*time.Minute {
		t.Errorf("time remaining = %v, want 9m", snap.TimeRemaining)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	snap, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot after clear")
	}
}

func TestSnapshotSaveOverwritesSlot(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testSnapshot("First")); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := repo.Save(ctx, testSnapshot("Second")); err != nil {
		t.Fatalf("save second: %v", err)
	}

	snap, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.Quiz != "Second" {
		t.Errorf("quiz = %q, want the overwriting save", snap.Quiz)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshot rows = %d, want 1 (single slot)", count)
	}
}

func TestSnapshotVersionMismatchIsAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap := testSnapshot("Old Layout")
	snap.Version = quiz.SnapshotVersion + 1
	if err := repo.Save(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Error("an incompatible snapshot version must read as absent")
	}
}

func TestAttemptAndAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAttemptEvent(ctx, AttemptEventData{
		AttemptID: "a1", Quiz: "Algebra Basics",
		Score: 8, Possible: 10, Percentage: 80, Passed: true,
		Correct: 4, Total: 5, DurationSecs: 120,
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	for i, out := range []string{"correct", "incorrect"} {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			AttemptID: "a1", QuestionText: "q", QuestionType: "tf",
			Difficulty: "easy", Category: "math",
			CorrectAnswer: "true", GivenAnswer: "true",
			Outcome: out, Points: i, TimeMs: 1500,
		})
		if err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	attempts, err := repo.QueryAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query attempts: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("attempts = %d, want 1", len(attempts))
	}
	if a := attempts[0]; a.Quiz != "Algebra Basics" || !a.Passed || a.Percentage != 80 {
		t.Errorf("attempt record = %+v", a)
	}

	answers, err := repo.AnswersForAttempt(ctx, "a1")
	if err != nil {
		t.Fatalf("answers: %v", err)
	}
	if len(answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(answers))
	}
	// Sequence order is insertion order.
	if answers[0].Outcome != "correct" || answers[1].Outcome != "incorrect" {
		t.Errorf("answers out of order: %+v", answers)
	}
}

func TestQueryAttemptsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, title := range []string{"one", "two", "three"} {
		err := repo.AppendAttemptEvent(ctx, AttemptEventData{
			AttemptID: title, Quiz: title, Score: i, Possible: 10,
		})
		if err != nil {
			t.Fatalf("append %s: %v", title, err)
		}
	}

	got, err := repo.QueryAttempts(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("limit ignored, got %d records", len(got))
	}
	if got[0].Quiz != "three" || got[1].Quiz != "two" {
		t.Errorf("order = [%s %s], want newest first", got[0].Quiz, got[1].Quiz)
	}
}

func TestRecordResult(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	res := &quiz.Result{
		SessionID:  "a1",
		Quiz:       "Capitals",
		Score:      3,
		Possible:   6,
		Percentage: 50,
		Passed:     false,
		Total:      2,
		TimeSpent:  90 * time.Second,
		Questions: []question.Question{
			{Type: question.TypeFill, Text: "Capital of France?", CorrectText: "Paris", Category: "geo", Difficulty: question.Easy, Points: 3},
			{Type: question.TypeTF, Text: "The sky is green.", CorrectBool: false, Category: "science", Difficulty: question.Easy, Points: 3},
		},
		Records: []*quiz.AnswerRecord{
			{Answer: quiz.Answer{Text: "Paris"}, Outcome: quiz.Correct, Points: 3, TimeSpent: 4 * time.Second},
			nil, // unanswered questions produce no answer event
		},
	}
	res.CorrectCount = 1

	if err := repo.RecordResult(ctx, res, false); err != nil {
		t.Fatalf("record result: %v", err)
	}

	answers, err := repo.AnswersForAttempt(ctx, "a1")
	if err != nil {
		t.Fatalf("answers: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("answer events = %d, want 1 (skips unanswered)", len(answers))
	}
	if answers[0].GivenAnswer != "Paris" || answers[0].CorrectAnswer != "Paris" {
		t.Errorf("answer text mapping wrong: %+v", answers[0])
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Attempts != 1 || stats.Passed != 0 || stats.AvgPercentage != 50 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.CategoryAcc["geo"] != 1 {
		t.Errorf("geo accuracy = %v, want 1", stats.CategoryAcc["geo"])
	}
}

func TestHintEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendHintEvent(ctx, HintEventData{
			AttemptID: "a1", QuestionText: "q", HintText: "think harder",
		})
		if err != nil {
			t.Fatalf("append hint %d: %v", i, err)
		}
	}

	n, err := repo.HintCount(ctx, "a1")
	if err != nil {
		t.Fatalf("hint count: %v", err)
	}
	if n != 3 {
		t.Errorf("hint count = %d, want 3", n)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSessionSaverRoundTrip(t *testing.T) {
	s := openTestStore(t)
	saver := s.SessionSaver()

	if err := saver.Save(testSnapshot("Via Saver")); err != nil {
		t.Fatalf("save: %v", err)
	}
	snap, err := s.SnapshotRepo().Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap == nil || snap.Quiz != "Via Saver" {
		t.Fatalf("saver write not visible: %+v", snap)
	}

	if err := saver.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	snap, err = s.SnapshotRepo().Load(context.Background())
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if snap != nil {
		t.Fatal("saver clear left a snapshot behind")
	}
}
