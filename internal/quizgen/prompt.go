package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author creating practice quizzes.

Rules:
- Generate exactly the requested number of questions, no more and no fewer.
- Mix question types: multiple choice (mcq), true/false (tf), and fill-in-the-blank (fill).
- Use plain ASCII text. No LaTeX, no Unicode symbols.
- Every question must be self-contained and unambiguous.
- For mcq, provide exactly 4 options where exactly one is correct. Distractors should reflect plausible confusions, not random values.
- For tf, write a statement that is definitively true or false and set "correct" to "true" or "false".
- For fill, the expected answer must be a single short word or phrase with one obvious canonical form.
- Spread difficulties across easy, medium, and hard. Harder questions get more points.
- Hints must nudge toward the answer without giving it away.
- When source notes are provided, every question must be answerable from the notes alone. Do not invent facts beyond them.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Questions: %d\n", input.Count)

	if len(input.Categories) > 0 {
		fmt.Fprintf(&b, "Categories to use: %s\n", strings.Join(input.Categories, ", "))
	}

	if input.Notes != "" {
		notes := input.Notes
		if cfg.MaxNotesChars > 0 && len(notes) > cfg.MaxNotesChars {
			notes = notes[:cfg.MaxNotesChars]
		}
		b.WriteString("\nSource notes:\n")
		b.WriteString(notes)
		b.WriteString("\n")
	}

	return b.String()
}
