// Package llm abstracts the hosted model APIs behind a single Provider
// interface. Quiz generation and the chat assistant talk to it; the
// concrete backend is picked by configuration.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates model output for a single request.
type Provider interface {
	// Generate runs one completion. When the request carries a Schema the
	// returned Content is JSON already validated against it; otherwise it
	// is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model identifier.
	ModelID() string
}

// Role labels who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role    Role
	Content string
}

// Request is everything a backend needs for one completion call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Quiz generation sends a single
	// user message; the chat assistant sends the running history.
	Messages []Message

	// Schema, when set, switches the backend to its structured-output
	// mode and the response is validated before it is returned.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Schema is the JSON shape the model must produce. Name doubles as the
// structured-output label the backends send upstream, e.g. "quiz-questions".
type Schema struct {
	Name        string
	Description string

	// Definition is a JSON Schema document as a decoded map.
	Definition map[string]any
}

// Usage is the token count for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is a backend's answer, normalized across providers.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the call, which can differ
	// from the requested one behind routed APIs.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}
