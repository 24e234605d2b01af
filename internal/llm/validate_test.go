package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "quiz-question",
		Description: "A single quiz question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":   map[string]any{"type": "string"},
				"points":     map[string]any{"type": "integer", "minimum": 0},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
			"required": []any{"question", "points"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"question":"What is the capital of France?","points":5,"difficulty":"easy"}`)
	if err := validateResponse(questionSchema(), raw); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponse_OptionalFieldOmitted(t *testing.T) {
	raw := json.RawMessage(`{"question":"Name the longest river.","points":3}`)
	if err := validateResponse(questionSchema(), raw); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required field", `{"question":"No points here."}`},
		{"wrong type", `{"question":"Points as text.","points":"five"}`},
		{"enum violation", `{"question":"Bad tier.","points":1,"difficulty":"impossible"}`},
		{"malformed JSON", `{not json}`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(questionSchema(), json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidResponse, got %T", err)
			}
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponse_Nested(t *testing.T) {
	schema := &Schema{
		Name: "quiz-file",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{"type": "string"},
						},
						"required": []any{"question"},
					},
				},
			},
			"required": []any{"title", "questions"},
		},
	}

	valid := json.RawMessage(`{"title":"Capitals","questions":[{"question":"Capital of Japan?"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}

	invalid := json.RawMessage(`{"title":"Capitals","questions":[{"answer":"Tokyo"}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for item missing its question")
	}
}
