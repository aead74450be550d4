package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/ritankar/lakshya/internal/ui/theme"
)

// MenuItem is one entry in a navigation menu. Action runs on enter.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu with a single cursor.
type Menu struct {
	Items    []MenuItem
	Selected int
	Theme    theme.Theme
}

// NewMenu builds a menu with the cursor on the first enabled item.
func NewMenu(th theme.Theme, items []MenuItem) Menu {
	m := Menu{Items: items, Theme: th}
	for i := range items {
		if !items[i].Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd { return nil }

// Update moves the cursor on up/down (k/j) and runs the selected
// item's action on enter. Disabled items are skipped over.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.Selected = m.seek(-1)
	case "down", "j":
		m.Selected = m.seek(1)
	case "enter":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			break
		}
		if it := m.Items[m.Selected]; it.Action != nil && !it.Disabled {
			return m, it.Action()
		}
	}
	return m, nil
}

// seek returns the index of the next enabled item in direction dir,
// or the current index when there is none.
func (m Menu) seek(dir int) int {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Selected
}

func (m Menu) View() string {
	var b strings.Builder
	for i, it := range m.Items {
		if i == m.Selected {
			b.WriteString(m.Theme.Selected.Render("  ▸ " + it.Label))
		} else {
			b.WriteString(m.Theme.Unselected.Render("    " + it.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
