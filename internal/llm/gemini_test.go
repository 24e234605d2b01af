package llm

import (
	"testing"
)

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question":   map[string]any{"type": "string"},
			"points":     map[string]any{"type": "integer"},
			"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"question", "points"},
	}

	s := geminiSchema(def)

	if s.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(s.Properties))
	}
	if s.Properties["question"].Type != "STRING" {
		t.Errorf("question type = %s, want STRING", s.Properties["question"].Type)
	}
	if s.Properties["points"].Type != "INTEGER" {
		t.Errorf("points type = %s, want INTEGER", s.Properties["points"].Type)
	}
	if len(s.Properties["difficulty"].Enum) != 3 {
		t.Errorf("difficulty enum = %d values, want 3", len(s.Properties["difficulty"].Enum))
	}
	if s.Properties["options"].Type != "ARRAY" {
		t.Errorf("options type = %s, want ARRAY", s.Properties["options"].Type)
	}
	if s.Properties["options"].Items.Type != "STRING" {
		t.Errorf("options items type = %s, want STRING", s.Properties["options"].Items.Type)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %d fields, want 2", len(s.Required))
	}
}

func TestGeminiTypeMapping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"string", "STRING"},
		{"number", "NUMBER"},
		{"integer", "INTEGER"},
		{"boolean", "BOOLEAN"},
		{"array", "ARRAY"},
		{"object", "OBJECT"},
		{"null", "STRING"}, // unmapped falls back to string
	}
	for _, tt := range tests {
		if got := string(geminiType(tt.in)); got != tt.want {
			t.Errorf("geminiType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
