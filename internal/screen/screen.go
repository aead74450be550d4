package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ritankar/lakshya/internal/ui/layout"
)

// Screen is one view in the stack. View renders only the body; the
// app model wraps it with the header and footer frame.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title names the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
