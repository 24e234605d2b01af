package results

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
)

func sampleResult() *quiz.Result {
	return &quiz.Result{
		SessionID:  "a1",
		Quiz:       "Sample, \"Quoted\" Quiz",
		Score:      5,
		Possible:   8,
		Percentage: 62.5,
		Passed:     false,
		Total:      2,
		TimeSpent:  95 * time.Second,
		CategoryScore: map[string]int{
			"math": 5,
		},
		Questions: []question.Question{
			{
				Type:         question.TypeMCQ,
				Text:         "What is 2 + 2?",
				Options:      []string{"3", "4", "5", "6"},
				CorrectIndex: 1,
				Category:     "math",
				Points:       5,
			},
			{
				Type:        question.TypeTF,
				Text:        `A "byte" has, in fact, 8 bits.`,
				CorrectBool: true,
				Category:    "cs",
				Points:      3,
			},
		},
		Records: []*quiz.AnswerRecord{
			{Answer: quiz.Answer{Option: 1}, Outcome: quiz.Correct, Points: 5, TimeSpent: 12 * time.Second},
			nil,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	r := sampleResult()
	r.CorrectCount = 1

	if err := WriteCSV(&buf, r); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("CSV must start with a UTF-8 BOM")
	}

	rows, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
	if err != nil {
		t.Fatalf("reparse CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "Question" || rows[0][1] != "Your Answer" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "4" || rows[1][3] != "correct" || rows[1][4] != "5" {
		t.Errorf("answered row = %v", rows[1])
	}
	// Commas and quotes in question text survive the round trip.
	if rows[2][0] != `A "byte" has, in fact, 8 bits.` {
		t.Errorf("quoting broken: %q", rows[2][0])
	}
	// Unanswered question keeps empty answer cells and zero points.
	if rows[2][1] != "" || rows[2][4] != "0" {
		t.Errorf("unanswered row = %v", rows[2])
	}
	if rows[2][2] != "True" {
		t.Errorf("tf correct answer = %q, want True", rows[2][2])
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	r := sampleResult()
	r.CorrectCount = 1

	if err := WriteHTML(&buf, r); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "5 / 8") {
		t.Error("score summary missing")
	}
	if !strings.Contains(out, "62.5") {
		t.Error("percentage missing")
	}
	if !strings.Contains(out, "Not passed") {
		t.Error("pass status missing")
	}
	// Template escaping keeps markup safe.
	if !strings.Contains(out, "&#34;byte&#34;") && !strings.Contains(out, "&quot;byte&quot;") {
		t.Error("question text not HTML-escaped")
	}
	if strings.Contains(out, `A "byte"`) {
		t.Error("raw quotes leaked into HTML")
	}
}

func TestAnswerText(t *testing.T) {
	mcq := question.Question{Type: question.TypeMCQ, Options: []string{"a", "b"}}
	if got := answerText(mcq, quiz.Answer{Option: 1}); got != "b" {
		t.Errorf("mcq answer = %q", got)
	}
	if got := answerText(mcq, quiz.Answer{Option: 9}); got != "" {
		t.Errorf("out-of-range option = %q, want empty", got)
	}
	tf := question.Question{Type: question.TypeTF}
	if got := answerText(tf, quiz.Answer{Flag: true}); got != "True" {
		t.Errorf("tf answer = %q", got)
	}
	fill := question.Question{Type: question.TypeFill}
	if got := answerText(fill, quiz.Answer{Text: "Paris"}); got != "Paris" {
		t.Errorf("fill answer = %q", got)
	}
}
