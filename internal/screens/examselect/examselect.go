// Package examselect renders the first-run target exam picker.
package examselect

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/screen"
	"github.com/ritankar/lakshya/internal/sessiongate"
	"github.com/ritankar/lakshya/internal/ui/components"
	"github.com/ritankar/lakshya/internal/ui/layout"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

// ExamSelectScreen is a required multi-select over the exam catalog.
type ExamSelectScreen struct {
	live   *profile.Store
	gate   *sessiongate.Gate
	th     theme.Theme
	picker components.MultiSelect
}

var _ screen.Screen = (*ExamSelectScreen)(nil)

// New creates the exam selection screen preloaded with any current
// selection (the settings screen reuses it for re-selection).
func New(th theme.Theme, live *profile.Store, gate *sessiongate.Gate) *ExamSelectScreen {
	names := make([]string, 0, len(profile.ExamCatalog))
	for _, e := range profile.ExamCatalog {
		names = append(names, e.Name)
	}

	return &ExamSelectScreen{
		live: live,
		gate: gate,
		th:   th,
		picker: components.NewMultiSelect(th,
			"Which exams are you preparing for?",
			names, live.Get().SelectedExams),
	}
}

func (e *ExamSelectScreen) Init() tea.Cmd {
	return nil
}

func (e *ExamSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	e.picker, cmd = e.picker.Update(msg)

	if e.picker.Confirmed {
		selected := e.picker.Selected()
		e.live.Set(func(p profile.Profile) profile.Profile {
			return profile.SetSelectedExams(p, selected)
		})
		if e.gate != nil {
			e.gate.Refresh()
		}
		e.picker.Confirmed = false
	}

	return e, cmd
}

func (e *ExamSelectScreen) View(width, height int) string {
	title := e.th.Title.Render("Target Exams")
	body := title + "\n\n" + e.th.Card.Width(50).Render(e.picker.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (e *ExamSelectScreen) Title() string {
	return "Select Exams"
}

// KeyHints implements screen.KeyHintProvider.
func (e *ExamSelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
