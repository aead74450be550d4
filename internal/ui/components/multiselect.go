package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/ritankar/lakshya/internal/ui/theme"
)

// MultiSelect is a checkbox list; space toggles, enter confirms.
// The exam selection screen uses it for target exams.
type MultiSelect struct {
	Prompt    string
	Options   []string
	Checked   []bool
	Cursor    int
	Confirmed bool
	Theme     theme.Theme
}

// NewMultiSelect creates a checkbox list with the given options, with
// preselected entries already checked.
func NewMultiSelect(th theme.Theme, prompt string, options, preselected []string) MultiSelect {
	checked := make([]bool, len(options))
	for i, opt := range options {
		for _, p := range preselected {
			if p == opt {
				checked[i] = true
			}
		}
	}
	return MultiSelect{
		Prompt:  prompt,
		Options: options,
		Checked: checked,
		Theme:   th,
	}
}

// Init returns nil.
func (m MultiSelect) Init() tea.Cmd {
	return nil
}

// Update handles navigation, toggling and confirmation.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ":
		m.Checked[m.Cursor] = !m.Checked[m.Cursor]
	case "enter":
		if len(m.Selected()) > 0 {
			m.Confirmed = true
		}
	}

	return m, nil
}

// Selected returns the checked options in display order.
func (m MultiSelect) Selected() []string {
	var out []string
	for i, opt := range m.Options {
		if m.Checked[i] {
			out = append(out, opt)
		}
	}
	return out
}

// View renders the checkbox list.
func (m MultiSelect) View() string {
	s := m.Theme.Body.Bold(true).Render(m.Prompt) + "\n\n"

	for i, opt := range m.Options {
		box := "[ ]"
		if m.Checked[i] {
			box = "[x]"
		}
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, box, opt)
		switch {
		case i == m.Cursor:
			s += m.Theme.Selected.Render(line) + "\n"
		case m.Checked[i]:
			s += m.Theme.Body.Render(line) + "\n"
		default:
			s += m.Theme.Unselected.Render(line) + "\n"
		}
	}

	if len(m.Selected()) == 0 {
		s += "\n" + m.Theme.Hint.Render("Pick at least one exam to continue")
	}

	return s
}
