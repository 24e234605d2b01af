package question

import (
	"encoding/json"
	"testing"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestNormalize_TypeInference(t *testing.T) {
	qs := Normalize([]Raw{
		{Text: "Pick one", Options: []string{"a", "b"}},
		{Text: "Yes or no?", Answer: raw("true")},
		{Text: "Explicit", Type: "fill", Correct: raw(`"go"`)},
	})
	if len(qs) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(qs))
	}
	if qs[0].Type != TypeMCQ {
		t.Errorf("options shape should infer mcq, got %s", qs[0].Type)
	}
	if qs[1].Type != TypeTF {
		t.Errorf("boolean answer should infer tf, got %s", qs[1].Type)
	}
	if qs[2].Type != TypeFill || qs[2].CorrectText != "go" {
		t.Errorf("explicit fill mishandled: %+v", qs[2])
	}
}

func TestNormalize_Defaults(t *testing.T) {
	qs := Normalize([]Raw{{Text: "Pick", Options: []string{"x", "y", "z"}}})
	q := qs[0]
	if q.Difficulty != Easy {
		t.Errorf("difficulty default = %s, want easy", q.Difficulty)
	}
	if q.Category != "General" {
		t.Errorf("category default = %q, want General", q.Category)
	}
	if q.Points != 1 {
		t.Errorf("points default = %d, want 1", q.Points)
	}
}

func TestNormalize_CorrectIndexResolution(t *testing.T) {
	tests := []struct {
		name string
		r    Raw
		want int
	}{
		{"numeric index", Raw{Text: "q", Options: []string{"a", "b", "c"}, Correct: raw("2")}, 2},
		{"answer text lookup", Raw{Text: "q", Options: []string{"a", "b", "c"}, Answer: raw(`"b"`)}, 1},
		{"correct_answer text lookup", Raw{Text: "q", Options: []string{"a", "b"}, CorrectAns: raw(`"B"`)}, 1},
		{"not found falls back to zero", Raw{Text: "q", Options: []string{"a", "b"}, Answer: raw(`"zzz"`)}, 0},
		{"out of range index falls back", Raw{Text: "q", Options: []string{"a", "b"}, Correct: raw("9")}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			qs := Normalize([]Raw{tc.r})
			if len(qs) != 1 {
				t.Fatalf("record dropped")
			}
			if qs[0].CorrectIndex != tc.want {
				t.Errorf("CorrectIndex = %d, want %d", qs[0].CorrectIndex, tc.want)
			}
		})
	}
}

func TestNormalize_Repairs(t *testing.T) {
	qs := Normalize([]Raw{
		{Text: "one option", Type: "mcq", Options: []string{"only"}},
		{Text: "no options", Type: "mcq"},
		{Text: "bad bool", Type: "tf", Correct: raw(`{"weird": 1}`)},
	})
	if len(qs) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(qs))
	}
	if len(qs[0].Options) != 2 || qs[0].CorrectIndex != 0 {
		t.Errorf("single-option mcq not repaired: %+v", qs[0])
	}
	if len(qs[1].Options) != 4 {
		t.Errorf("missing options should get 4 fillers, got %d", len(qs[1].Options))
	}
	if qs[2].CorrectBool != false {
		t.Errorf("non-boolean tf correct should coerce to false")
	}
}

func TestNormalize_DropsUnusable(t *testing.T) {
	qs := Normalize([]Raw{
		{Text: "   ", Options: []string{"a", "b"}},
		{Text: "no shape at all"},
		{Text: "kept", Options: []string{"a", "b"}},
	})
	if len(qs) != 1 || qs[0].Text != "kept" {
		t.Fatalf("expected only the usable record, got %d", len(qs))
	}
}

func TestNormalize_PartialFiltering(t *testing.T) {
	qs := Normalize([]Raw{{
		Text:    "q",
		Options: []string{"a", "b", "c"},
		Correct: raw("1"),
		Partial: raw("[0, 1, 7]"),
	}})
	got := qs[0].PartialIndices
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("partial indices should exclude correct and out-of-range, got %v", got)
	}
}

func TestNormalize_PreservesOrder(t *testing.T) {
	raws := []Raw{
		{Text: "first", Answer: raw("true")},
		{Text: "second", Answer: raw("false")},
		{Text: "third", Answer: raw("true")},
	}
	qs := Normalize(raws)
	for i, want := range []string{"first", "second", "third"} {
		if qs[i].Text != want {
			t.Errorf("position %d = %q, want %q", i, qs[i].Text, want)
		}
	}
}

func TestQuestionValid(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want bool
	}{
		{"good mcq", Question{Type: TypeMCQ, Text: "q", Options: []string{"a", "b"}, CorrectIndex: 1}, true},
		{"mcq index out of range", Question{Type: TypeMCQ, Text: "q", Options: []string{"a", "b"}, CorrectIndex: 2}, false},
		{"mcq too few options", Question{Type: TypeMCQ, Text: "q", Options: []string{"a"}, CorrectIndex: 0}, false},
		{"tf", Question{Type: TypeTF, Text: "q"}, true},
		{"fill empty answer", Question{Type: TypeFill, Text: "q"}, false},
		{"empty text", Question{Type: TypeTF, Text: " "}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.q.Valid(); got != tc.want {
				t.Errorf("Valid() = %v, want %v", got, tc.want)
			}
		})
	}
}
