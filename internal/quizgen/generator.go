package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"quizdeck/internal/llm"
	"quizdeck/internal/question"
)

// Generator produces quizzes through the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a new Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before normalization.
type quizOutput struct {
	Title     string         `json:"title"`
	Questions []question.Raw `json:"questions"`
}

// Generate produces a complete quiz for the given input.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) (*GeneratedQuiz, error) {
	ctx = llm.WithPurpose(ctx, "quizgen")

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	quiz := &GeneratedQuiz{
		Title:     raw.Title,
		Questions: question.Normalize(raw.Questions),
	}
	if quiz.Title == "" {
		quiz.Title = input.Topic
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(quiz, input); verr != nil {
			return nil, verr
		}
	}

	return quiz, nil
}
