package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizdeck/internal/kb"
	"quizdeck/internal/llm"
)

func testKB(t *testing.T, content string) (*kb.Store, string) {
	t.Helper()
	store, err := kb.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open kb: %v", err)
	}
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}
	entry, err := store.Add(path)
	if err != nil {
		t.Fatalf("add notes: %v", err)
	}
	return store, entry.HashName
}

func TestAsk_LocalMode(t *testing.T) {
	store, hash := testKB(t, "The capital of France is Paris.")
	a := New(llm.NewMockProvider(), llm.NewMockEmbedder(), store, DefaultConfig())

	got, err := a.Ask(context.Background(), Query{
		Mode:           ModeLocal,
		Question:       "What is the capital of France?",
		KnowledgeBases: []string{hash},
	})
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if !strings.Contains(got, "Paris") {
		t.Errorf("local mode should return the document context, got %q", got)
	}
}

func TestAsk_RequiresKnowledgeBase(t *testing.T) {
	store, _ := testKB(t, "irrelevant")
	a := New(llm.NewMockProvider(), llm.NewMockEmbedder(), store, DefaultConfig())

	for _, mode := range []Mode{ModeLocal, ModeSmart} {
		_, err := a.Ask(context.Background(), Query{Mode: mode, Question: "q"})
		if !errors.Is(err, ErrNoKnowledgeBase) {
			t.Errorf("mode %s: err = %v, want ErrNoKnowledgeBase", mode, err)
		}
	}
}

func TestAsk_SmartModeGroundsPrompt(t *testing.T) {
	store, hash := testKB(t, "Chlorophyll absorbs red and blue light.")
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"It absorbs red and blue light."`),
	})
	a := New(mock, llm.NewMockEmbedder(), store, DefaultConfig())

	got, err := a.Ask(context.Background(), Query{
		Mode:           ModeSmart,
		Question:       "What light does chlorophyll absorb?",
		KnowledgeBases: []string{hash},
	})
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got != "It absorbs red and blue light." {
		t.Errorf("answer = %q", got)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if !strings.Contains(req.System, "only on the provided information") {
		t.Errorf("smart mode must use the grounded system prompt, got %q", req.System)
	}
	if !strings.Contains(req.Messages[0].Content, "Chlorophyll") {
		t.Errorf("prompt missing retrieved context:\n%s", req.Messages[0].Content)
	}
}

func TestAsk_SmartPlusPersona(t *testing.T) {
	store, _ := testKB(t, "unused")
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Ahoy! The answer be 42."`),
	})
	a := New(mock, llm.NewMockEmbedder(), store, DefaultConfig())

	// smartplus works without a knowledge base.
	got, err := a.Ask(context.Background(), Query{
		Mode:     ModeSmartPlus,
		Question: "What is the answer?",
		Role:     "a pirate",
		Mood:     "jolly",
	})
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got == "" {
		t.Fatal("empty answer")
	}

	sys := mock.Calls[0].System
	if !strings.Contains(sys, "a pirate") || !strings.Contains(sys, "jolly") {
		t.Errorf("persona missing from system prompt: %q", sys)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "No specific context") {
		t.Errorf("missing empty-context marker:\n%s", mock.Calls[0].Messages[0].Content)
	}
}

func TestAsk_InvalidMode(t *testing.T) {
	store, _ := testKB(t, "x")
	a := New(llm.NewMockProvider(), llm.NewMockEmbedder(), store, DefaultConfig())

	if _, err := a.Ask(context.Background(), Query{Mode: "telepathy", Question: "q"}); err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}
