package quizgen

import "quizdeck/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "A complete quiz: a title and a list of questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short human-readable quiz title",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"mcq", "tf", "fill"},
							"description": "Question kind: multiple choice, true/false, or fill-in-the-blank",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question text shown to the user",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for mcq. Empty array for tf and fill.",
						},
						"correct": map[string]any{
							"type":        "string",
							"description": "The correct answer. For mcq: the text of the correct option. For tf: true or false. For fill: the expected text.",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium", "hard"},
							"description": "Difficulty tier",
						},
						"category": map[string]any{
							"type":        "string",
							"description": "Short topic label for score breakdowns",
						},
						"points": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     10,
							"description": "Point value, harder questions worth more",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "A short hint that nudges without revealing the answer",
						},
					},
					"required":             []any{"type", "question", "options", "correct", "difficulty", "category", "points", "hint"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}
