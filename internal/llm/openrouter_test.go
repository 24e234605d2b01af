package llm

import (
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("requires API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"})
		if err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("routed IDs pass through unmapped", func(t *testing.T) {
		tests := []string{
			"google/gemini-2.0-flash-exp",
			"meta-llama/llama-3-8b",
			"anthropic/claude-3-haiku",
		}
		for _, model := range tests {
			p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: model})
			if err != nil {
				t.Fatalf("NewOpenRouterProvider(%q): %v", model, err)
			}
			if p.ModelID() != model {
				t.Errorf("model = %q, want %q", p.ModelID(), model)
			}
		}
	})

	t.Run("custom base URL", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey:  "sk-or-test",
			Model:   "google/gemini-2.0-flash-exp",
			BaseURL: "https://router.example/v1",
		})
		if err != nil {
			t.Fatalf("NewOpenRouterProvider: %v", err)
		}
		if p == nil {
			t.Fatal("expected non-nil provider")
		}
	})
}
