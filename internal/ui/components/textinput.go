package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"quizdeck/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with QuizDeck styling. It carries the
// free-text answer for fill-in questions.
type TextInput struct {
	Model     textinput.Model
	submitted bool
	verdict   string
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.submitted {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input with a verdict mark once submitted.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		switch t.verdict {
		case "correct":
			view += " " + theme.Correct.Render("✓")
		case "partial":
			view += " " + theme.Partial.Render("~")
		default:
			view += " " + theme.Incorrect.Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit marks the input as graded with the given outcome string.
func (t *TextInput) Submit(verdict string) {
	t.submitted = true
	t.verdict = verdict
	t.Model.Blur()
}
