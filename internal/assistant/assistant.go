// Package assistant answers questions over the knowledge base in three
// modes: local (verbatim context), smart (grounded LLM answer), and
// smartplus (LLM answer that may go beyond the documents).
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"quizdeck/internal/kb"
	"quizdeck/internal/llm"
)

// Mode selects how a question is answered.
type Mode string

const (
	// ModeLocal returns the retrieved document context verbatim.
	ModeLocal Mode = "local"
	// ModeSmart answers strictly from the documents.
	ModeSmart Mode = "smart"
	// ModeSmartPlus answers from the documents plus general knowledge,
	// in a configurable persona.
	ModeSmartPlus Mode = "smartplus"
)

// ErrNoKnowledgeBase means the mode requires documents and none were given.
var ErrNoKnowledgeBase = errors.New("select a knowledge base for this mode")

// Query is one question to the assistant.
type Query struct {
	Mode     Mode
	Question string

	// KnowledgeBases are hash names of documents to draw context from.
	KnowledgeBases []string

	// Role and Mood shape the smartplus persona, e.g. "a history teacher"
	// in a "cheerful" mood.
	Role string
	Mood string
}

// Config tunes retrieval and generation.
type Config struct {
	// TopK is how many chunks to retrieve per question.
	TopK int

	// MaxTokens is the token budget for the answer.
	MaxTokens int

	Temperature float64
}

// DefaultConfig returns the standard assistant settings.
func DefaultConfig() Config {
	return Config{
		TopK:        4,
		MaxTokens:   700,
		Temperature: 0.7,
	}
}

// Assistant answers questions using KB retrieval and the LLM provider.
type Assistant struct {
	provider llm.Provider
	embedder llm.Embedder
	store    *kb.Store
	cfg      Config
}

// New creates an Assistant.
func New(provider llm.Provider, embedder llm.Embedder, store *kb.Store, cfg Config) *Assistant {
	return &Assistant{provider: provider, embedder: embedder, store: store, cfg: cfg}
}

// Ask answers a single question according to its mode.
func (a *Assistant) Ask(ctx context.Context, q Query) (string, error) {
	if (q.Mode == ModeLocal || q.Mode == ModeSmart) && len(q.KnowledgeBases) == 0 {
		return "", ErrNoKnowledgeBase
	}

	docCtx, err := a.retrieve(ctx, q)
	if err != nil {
		return "", err
	}

	switch q.Mode {
	case ModeLocal:
		if docCtx == "" {
			return "I couldn't find a specific answer in the selected knowledge base(s).", nil
		}
		return docCtx, nil
	case ModeSmart:
		if docCtx == "" {
			return "I couldn't find any relevant information in the document to answer your question.", nil
		}
		return a.generate(ctx, smartSystemPrompt, smartUserMessage(docCtx, q.Question))
	case ModeSmartPlus:
		return a.generate(ctx, smartPlusSystemPrompt(q.Role, q.Mood), smartPlusUserMessage(docCtx, q.Question))
	default:
		return "", fmt.Errorf("invalid mode: %q", q.Mode)
	}
}

// retrieve builds the document context for a question. With an embedder it
// returns the most similar chunks; otherwise the concatenated documents.
func (a *Assistant) retrieve(ctx context.Context, q Query) (string, error) {
	if len(q.KnowledgeBases) == 0 {
		return "", nil
	}

	content, err := a.store.Content(q.KnowledgeBases)
	if err != nil {
		return "", fmt.Errorf("load knowledge bases: %w", err)
	}
	if content == "" || a.embedder == nil {
		return content, nil
	}

	idx, err := kb.BuildIndex(ctx, a.embedder, content)
	if err != nil {
		return "", err
	}
	chunks, err := idx.TopK(ctx, q.Question, a.cfg.TopK)
	if err != nil {
		return "", err
	}
	return strings.Join(chunks, "\n\n"), nil
}

func (a *Assistant) generate(ctx context.Context, system, userMsg string) (string, error) {
	ctx = llm.WithPurpose(ctx, "chat")

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("assistant generation: %w", err)
	}

	// Schemaless responses arrive as a JSON-encoded string.
	var text string
	if err := json.Unmarshal(resp.Content, &text); err != nil {
		text = string(resp.Content)
	}
	return strings.TrimSpace(text), nil
}
