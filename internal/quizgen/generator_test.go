package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"quizdeck/internal/llm"
	"quizdeck/internal/question"
)

const goodQuizJSON = `{
	"title": "Photosynthesis Basics",
	"questions": [
		{
			"type": "mcq",
			"question": "What gas do plants absorb during photosynthesis?",
			"options": ["Oxygen", "Carbon dioxide", "Nitrogen", "Hydrogen"],
			"correct": "Carbon dioxide",
			"difficulty": "easy",
			"category": "biology",
			"points": 2,
			"hint": "It is the gas animals exhale."
		},
		{
			"type": "tf",
			"question": "Photosynthesis happens in the mitochondria.",
			"options": [],
			"correct": "false",
			"difficulty": "medium",
			"category": "biology",
			"points": 3,
			"hint": "Think of the green organelle."
		},
		{
			"type": "fill",
			"question": "The green pigment that captures light is called ____.",
			"options": [],
			"correct": "chlorophyll",
			"difficulty": "hard",
			"category": "biology",
			"points": 5,
			"hint": "It gives leaves their color."
		}
	]
}`

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(goodQuizJSON),
	})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), GenerateInput{
		Topic: "photosynthesis",
		Count: 3,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if quiz.Title != "Photosynthesis Basics" {
		t.Errorf("title = %q", quiz.Title)
	}
	if len(quiz.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(quiz.Questions))
	}

	mcq := quiz.Questions[0]
	if mcq.Type != question.TypeMCQ || mcq.CorrectIndex != 1 {
		t.Errorf("mcq normalization wrong: %+v", mcq)
	}
	tf := quiz.Questions[1]
	if tf.Type != question.TypeTF || tf.CorrectBool {
		t.Errorf("tf normalization wrong: %+v", tf)
	}
	fill := quiz.Questions[2]
	if fill.Type != question.TypeFill || fill.CorrectText != "chlorophyll" {
		t.Errorf("fill normalization wrong: %+v", fill)
	}
	if fill.Points != 5 || fill.Difficulty != question.Hard {
		t.Errorf("metadata lost: %+v", fill)
	}
}

func TestGenerate_PromptCarriesTopicAndNotes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(goodQuizJSON),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Topic: "photosynthesis",
		Notes: "Plants convert light into chemical energy.",
		Count: 3,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != QuizSchema {
		t.Error("request must carry the quiz schema")
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "photosynthesis") || !strings.Contains(msg, "chemical energy") {
		t.Errorf("prompt missing topic or notes:\n%s", msg)
	}
}

func TestGenerate_NotesTruncated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(goodQuizJSON),
	})
	cfg := DefaultConfig()
	cfg.MaxNotesChars = 10
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), GenerateInput{
		Topic: "x",
		Notes: strings.Repeat("abcde", 100),
		Count: 3,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if msg := mock.Calls[0].Messages[0].Content; strings.Count(msg, "abcde") > 2 {
		t.Errorf("notes not truncated:\n%s", msg)
	}
}

func TestGenerate_RejectsShortQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(goodQuizJSON),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: "x", Count: 10})
	if err == nil {
		t.Fatal("expected a validation error for an under-sized quiz")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if !verr.Retryable {
		t.Error("under-sized quiz should be retryable")
	}
}

func TestGenerate_RejectsGarbage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"not a quiz"`),
	})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), GenerateInput{Topic: "x", Count: 1}); err == nil {
		t.Fatal("expected an error for a malformed response")
	}
}

func TestStructuralValidator_Duplicates(t *testing.T) {
	q := question.Question{
		Type: question.TypeTF, Text: "same", CorrectBool: true,
		Difficulty: question.Easy, Category: "General", Points: 1,
	}
	verr := (&StructuralValidator{}).Validate(&GeneratedQuiz{
		Title:     "t",
		Questions: []question.Question{q, q},
	}, GenerateInput{Count: 2})
	if verr == nil {
		t.Fatal("duplicate questions must be rejected")
	}
}
