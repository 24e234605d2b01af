package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/ui/theme"
)

// Choice is the option selector used for multiple-choice and true/false
// questions. After an answer is locked in, the chosen and correct options
// are recolored and navigation stops.
type Choice struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Locked       bool
	ChosenIndex  int
	PartialIndex func(int) bool
}

// NewChoice creates a selector over the given options.
func NewChoice(options []string, correctIndex int) Choice {
	return Choice{
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Number keys jump straight to an option.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Locked {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(c.Options) {
				c.Selected = i
			}
		}
	}

	return c, nil
}

// Lock freezes the selector on the chosen option.
func (c *Choice) Lock(chosen int) {
	c.Locked = true
	c.ChosenIndex = chosen
}

// View renders the option list.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if c.Locked {
			switch {
			case i == c.CorrectIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == c.ChosenIndex && c.PartialIndex != nil && c.PartialIndex(i):
				s += theme.Partial.Render(line) + "\n"
			case i == c.ChosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == c.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}
	return s
}
