package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/ritankar/lakshya/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with app styling and an optional
// digits-only filter.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	MaxWidth    int
	Theme       theme.Theme
	submitted   bool
	valid       bool
}

// NewTextInput returns a focused input showing placeholder until the
// user types. When numericOnly is set, non-digit keys are dropped.
func NewTextInput(th theme.Theme, placeholder string, numericOnly bool, maxWidth int) TextInput {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Focus()
	if maxWidth > 0 {
		in.CharLimit = maxWidth
	}
	return TextInput{Model: in, NumericOnly: numericOnly, MaxWidth: maxWidth, Theme: th}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && t.NumericOnly && rejectNonDigit(key.String()) {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// rejectNonDigit filters single-rune keys outside 0-9; named keys
// (backspace, arrows) pass through.
func rejectNonDigit(key string) bool {
	return len(key) == 1 && (key[0] < '0' || key[0] > '9')
}

// View renders the input, with a ✓/✗ marker once submitted.
func (t TextInput) View() string {
	out := t.Model.View()
	switch {
	case !t.submitted:
	case t.valid:
		out += " " + t.Theme.Good.Render("✓")
	default:
		out += " " + t.Theme.Bad.Render("✗")
	}
	return out
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue parses the current value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Submit records a validation outcome for display.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
