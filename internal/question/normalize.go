package question

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Raw is a loosely typed question record as found in quiz files. Fields that
// vary in type across file generations are kept as raw JSON and interpreted
// during normalization.
type Raw struct {
	Type       string          `json:"type"`
	Text       string          `json:"question"`
	Options    []string        `json:"options"`
	Correct    json.RawMessage `json:"correct"`
	Answer     json.RawMessage `json:"answer"`
	CorrectAns json.RawMessage `json:"correct_answer"`
	Partial    json.RawMessage `json:"partial"`
	Difficulty string          `json:"difficulty"`
	Category   string          `json:"category"`
	Points     *int            `json:"points"`
	Feedback   *Feedback       `json:"feedback"`
	Hint       string          `json:"hint"`
}

// fillerOptions generates n placeholder options for records that claim to be
// multiple choice but carry none.
func fillerOptions(n int) []string {
	opts := make([]string, n)
	for i := range opts {
		opts[i] = fmt.Sprintf("Option %d", i+1)
	}
	return opts
}

// Normalize converts raw records into canonical Questions, applying type
// inference, defaults, and defensive repair. Records with no usable text or
// no inferable type are dropped. Input order is preserved.
func Normalize(raws []Raw) []Question {
	out := make([]Question, 0, len(raws))
	for _, r := range raws {
		q, ok := normalizeOne(r)
		if ok {
			out = append(out, q)
		}
	}
	return out
}

func normalizeOne(r Raw) (Question, bool) {
	text := strings.TrimSpace(r.Text)
	typ, ok := inferType(r)
	if text == "" || !ok {
		return Question{}, false
	}

	q := Question{
		Type:       typ,
		Text:       text,
		Difficulty: Difficulty(r.Difficulty),
		Category:   r.Category,
		Points:     1,
	}
	if q.Difficulty != Easy && q.Difficulty != Medium && q.Difficulty != Hard {
		q.Difficulty = Easy
	}
	if q.Category == "" {
		q.Category = "General"
	}
	if r.Points != nil && *r.Points >= 0 {
		q.Points = *r.Points
	}
	if r.Feedback != nil {
		q.Feedback = *r.Feedback
	}
	q.Hint = r.Hint

	switch typ {
	case TypeMCQ:
		normalizeMCQ(&q, r)
	case TypeTF:
		normalizeTF(&q, r)
	case TypeFill:
		normalizeFill(&q, r)
	}
	return q, true
}

// inferType resolves the question type from the explicit field or, failing
// that, from the record's shape: options present means mcq, a boolean answer
// means tf. Records with neither are not inferable.
func inferType(r Raw) (Type, bool) {
	switch Type(r.Type) {
	case TypeMCQ, TypeTF, TypeFill:
		return Type(r.Type), true
	}
	if r.Options != nil {
		return TypeMCQ, true
	}
	if r.Answer != nil || r.Correct != nil || r.CorrectAns != nil {
		return TypeTF, true
	}
	return "", false
}

func normalizeMCQ(q *Question, r Raw) {
	q.Options = r.Options
	if len(q.Options) == 0 {
		q.Options = fillerOptions(4)
	}

	idx, found := resolveCorrectIndex(r, q.Options)
	q.CorrectIndex = idx
	_ = found // not-found already fell back to index 0

	// An mcq with a single option is unanswerable; rebuild a minimal one.
	if len(q.Options) < 2 {
		q.Options = fillerOptions(2)
		q.CorrectIndex = 0
	}

	var partial []int
	if len(r.Partial) > 0 {
		_ = json.Unmarshal(r.Partial, &partial)
	}
	for _, p := range partial {
		if p >= 0 && p < len(q.Options) && p != q.CorrectIndex {
			q.PartialIndices = append(q.PartialIndices, p)
		}
	}
}

// resolveCorrectIndex interprets the correct answer for an mcq. Accepted
// forms, in priority order: a numeric index in `correct`, then the answer
// text of `correct`/`correct_answer`/`answer` located inside options.
// Falls back to index 0.
func resolveCorrectIndex(r Raw, options []string) (int, bool) {
	var n int
	if len(r.Correct) > 0 && json.Unmarshal(r.Correct, &n) == nil {
		if n >= 0 && n < len(options) {
			return n, true
		}
	}
	for _, raw := range []json.RawMessage{r.Correct, r.CorrectAns, r.Answer} {
		var s string
		if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
			continue
		}
		for i, opt := range options {
			if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(s)) {
				return i, true
			}
		}
	}
	return 0, false
}

func normalizeTF(q *Question, r Raw) {
	// A non-boolean correct value coerces to false.
	for _, raw := range []json.RawMessage{r.Correct, r.CorrectAns, r.Answer} {
		if len(raw) == 0 {
			continue
		}
		var b bool
		if json.Unmarshal(raw, &b) == nil {
			q.CorrectBool = b
			return
		}
		var s string
		if json.Unmarshal(raw, &s) == nil {
			q.CorrectBool = strings.EqualFold(strings.TrimSpace(s), "true")
			return
		}
	}
	q.CorrectBool = false
}

func normalizeFill(q *Question, r Raw) {
	for _, raw := range []json.RawMessage{r.Correct, r.CorrectAns, r.Answer} {
		var s string
		if len(raw) > 0 && json.Unmarshal(raw, &s) == nil && strings.TrimSpace(s) != "" {
			q.CorrectText = strings.TrimSpace(s)
			break
		}
	}

	var partial []string
	if len(r.Partial) > 0 {
		_ = json.Unmarshal(r.Partial, &partial)
	}
	for _, p := range partial {
		if strings.TrimSpace(p) != "" {
			q.PartialTexts = append(q.PartialTexts, strings.TrimSpace(p))
		}
	}
}
