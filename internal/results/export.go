// Package results renders completed quiz attempts as CSV exports and
// HTML reports.
package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
)

// utf8BOM makes spreadsheet apps detect the encoding correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the attempt's per-question breakdown as CSV, one row per
// question in pool order. Unanswered questions get empty answer cells.
func WriteCSV(w io.Writer, r *quiz.Result) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	header := []string{"Question", "Your Answer", "Correct Answer", "Outcome", "Points", "Time Spent (s)"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, q := range r.Questions {
		row := []string{q.Text, "", q.CorrectAnswerText(), "", "0", "0.0"}
		if rec := r.Records[i]; rec != nil {
			row[1] = answerText(q, rec.Answer)
			row[3] = string(rec.Outcome)
			row[4] = strconv.Itoa(rec.Points)
			row[5] = fmt.Sprintf("%.1f", rec.TimeSpent.Seconds())
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the CSV breakdown to a file.
func ExportCSV(path string, r *quiz.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	if err := WriteCSV(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func answerText(q question.Question, a quiz.Answer) string {
	switch q.Type {
	case question.TypeMCQ:
		if a.Option >= 0 && a.Option < len(q.Options) {
			return q.Options[a.Option]
		}
		return ""
	case question.TypeTF:
		if a.Flag {
			return "True"
		}
		return "False"
	default:
		return a.Text
	}
}
