package results

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"quizdeck/internal/quiz"
)

// reportRow is one question's line in the HTML report.
type reportRow struct {
	Number        int
	Question      string
	YourAnswer    string
	CorrectAnswer string
	Outcome       string
	Points        int
	TimeSpent     string
}

// reportData feeds the HTML template.
type reportData struct {
	Quiz        string
	GeneratedAt string
	Score       int
	Possible    int
	Percentage  float64
	Passed      bool
	Correct     int
	Total       int
	TimeSpent   string
	Rows        []reportRow
	Categories  map[string]int
}

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Quiz}} - Results</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 56rem; margin: 2rem auto; color: #222; }
h1 { font-size: 1.4rem; }
.summary { margin: 1rem 0; padding: 1rem; border-radius: 8px; background: #f4f4f5; }
.passed { color: #15803d; font-weight: 600; }
.failed { color: #b91c1c; font-weight: 600; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { text-align: left; padding: 0.4rem 0.6rem; border-bottom: 1px solid #e4e4e7; }
tr.correct td { background: #f0fdf4; }
tr.partial td { background: #fefce8; }
tr.incorrect td { background: #fef2f2; }
</style>
</head>
<body>
<h1>{{.Quiz}}</h1>
<div class="summary">
<p>Score: <strong>{{.Score}} / {{.Possible}}</strong> ({{printf "%.1f" .Percentage}}%) -
{{if .Passed}}<span class="passed">Passed</span>{{else}}<span class="failed">Not passed</span>{{end}}</p>
<p>{{.Correct}} of {{.Total}} questions fully correct. Time: {{.TimeSpent}}.</p>
{{if .Categories}}<p>By category:
{{range $cat, $pts := .Categories}}<span>{{$cat}}: {{$pts}} </span>{{end}}</p>{{end}}
<p><small>Generated {{.GeneratedAt}}</small></p>
</div>
<table>
<tr><th>#</th><th>Question</th><th>Your Answer</th><th>Correct Answer</th><th>Points</th><th>Time</th></tr>
{{range .Rows}}<tr class="{{.Outcome}}">
<td>{{.Number}}</td><td>{{.Question}}</td><td>{{.YourAnswer}}</td><td>{{.CorrectAnswer}}</td><td>{{.Points}}</td><td>{{.TimeSpent}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

// WriteHTML renders the attempt as a standalone HTML report.
func WriteHTML(w io.Writer, r *quiz.Result) error {
	data := reportData{
		Quiz:        r.Quiz,
		GeneratedAt: time.Now().Format("2006-01-02 15:04"),
		Score:       r.Score,
		Possible:    r.Possible,
		Percentage:  r.Percentage,
		Passed:      r.Passed,
		Correct:     r.CorrectCount,
		Total:       r.Total,
		TimeSpent:   formatDuration(r.TimeSpent),
		Categories:  r.CategoryScore,
	}

	for i, q := range r.Questions {
		row := reportRow{
			Number:        i + 1,
			Question:      q.Text,
			CorrectAnswer: q.CorrectAnswerText(),
			Outcome:       "incorrect",
		}
		if rec := r.Records[i]; rec != nil {
			row.YourAnswer = answerText(q, rec.Answer)
			row.Outcome = string(rec.Outcome)
			row.Points = rec.Points
			row.TimeSpent = formatDuration(rec.TimeSpent)
		}
		data.Rows = append(data.Rows, row)
	}

	return reportTmpl.Execute(w, data)
}

// ExportHTML writes the HTML report to a file.
func ExportHTML(path string, r *quiz.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := WriteHTML(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %02ds", m, s)
}
