// Package mocktests tracks mock-test attempts: newest first, add form,
// reminder toggles and deletion with confirmation.
package mocktests

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/screen"
	"github.com/ritankar/lakshya/internal/ui/components"
	"github.com/ritankar/lakshya/internal/ui/layout"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

// addField walks the add form one input at a time.
type addField int

const (
	fieldNone addField = iota
	fieldType
	fieldName
	fieldDate
	fieldPhysics
	fieldChemistry
	fieldMaths
	fieldMaxMarks
)

// draft accumulates the add-form answers.
type draft struct {
	typ      string
	name     string
	date     string
	phy      int
	chem     int
	maths    int
	maxMarks int
}

// MockTestsScreen lists and records mock-test attempts.
type MockTestsScreen struct {
	live   *profile.Store
	th     theme.Theme
	cursor int

	field   addField
	input   components.TextInput
	draft   draft
	confirm int64 // pending delete, 0 when none
	notice  string
}

var _ screen.Screen = (*MockTestsScreen)(nil)

// New creates the mock tests screen.
func New(th theme.Theme, live *profile.Store) *MockTestsScreen {
	return &MockTestsScreen{live: live, th: th}
}

func (m *MockTestsScreen) Init() tea.Cmd {
	return nil
}

func (m *MockTestsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m.field != fieldNone {
		return m.updateForm(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	tests := m.live.Get().MockTests

	// A pending delete swallows every key except confirm/cancel.
	if m.confirm != 0 {
		switch kmsg.String() {
		case "y", "enter":
			id := m.confirm
			m.live.Set(func(p profile.Profile) profile.Profile {
				return profile.DeleteMockTest(p, id)
			})
			if m.cursor > 0 {
				m.cursor--
			}
		}
		m.confirm = 0
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(tests)-1 {
			m.cursor++
		}
	case "a":
		m.field = fieldType
		m.draft = draft{}
		m.input = components.NewTextInput(m.th, "Test type (e.g. JEE Main FT)", false, 40)
		return m, m.input.Init()
	case "r":
		if m.cursor < len(tests) {
			id := tests[m.cursor].ID
			m.live.Set(func(p profile.Profile) profile.Profile {
				return profile.ToggleMockReminder(p, id)
			})
		}
	case "d":
		if m.cursor < len(tests) {
			m.confirm = tests[m.cursor].ID
		}
	}

	return m, nil
}

func (m *MockTestsScreen) updateForm(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			m.field = fieldNone
			return m, nil
		case "enter":
			return m, m.advanceForm()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *MockTestsScreen) advanceForm() tea.Cmd {
	val := strings.TrimSpace(m.input.Value())

	switch m.field {
	case fieldType:
		if val == "" {
			return nil
		}
		m.draft.typ = val
		m.field = fieldName
		m.input = components.NewTextInput(m.th, "Test name", false, 60)
		return m.input.Init()

	case fieldName:
		if val == "" {
			return nil
		}
		m.draft.name = val
		m.field = fieldDate
		m.input = components.NewTextInput(m.th, time.Now().Format("2006-01-02"), false, 10)
		return m.input.Init()

	case fieldDate:
		if val == "" {
			val = time.Now().Format("2006-01-02")
		}
		if _, err := time.Parse("2006-01-02", val); err != nil {
			m.notice = "Date must be YYYY-MM-DD."
			return nil
		}
		m.draft.date = val
		m.notice = ""
		m.field = fieldPhysics
		m.input = components.NewTextInput(m.th, "Physics marks", true, 3)
		return m.input.Init()

	case fieldPhysics, fieldChemistry, fieldMaths, fieldMaxMarks:
		n, err := m.input.NumericValue()
		if err != nil || n < 0 {
			m.notice = "Marks must be a number."
			return nil
		}
		m.notice = ""
		switch m.field {
		case fieldPhysics:
			m.draft.phy = n
			m.field = fieldChemistry
			m.input = components.NewTextInput(m.th, "Chemistry marks", true, 3)
			return m.input.Init()
		case fieldChemistry:
			m.draft.chem = n
			m.field = fieldMaths
			m.input = components.NewTextInput(m.th, "Maths/Biology marks", true, 3)
			return m.input.Init()
		case fieldMaths:
			m.draft.maths = n
			m.field = fieldMaxMarks
			m.input = components.NewTextInput(m.th, "Maximum marks (e.g. 300)", true, 4)
			return m.input.Init()
		case fieldMaxMarks:
			m.draft.maxMarks = n
			d := m.draft
			m.live.Set(func(p profile.Profile) profile.Profile {
				return profile.AddMockTest(p, d.typ, d.name, d.date, d.phy, d.chem, d.maths, d.maxMarks, time.Now())
			})
			m.field = fieldNone
			m.cursor = 0
		}
	}
	return nil
}

func (m *MockTestsScreen) View(width, height int) string {
	p := m.live.Get()
	var b strings.Builder

	b.WriteString(m.th.Title.Render("Mock Tests") + "\n\n")

	if m.field != fieldNone {
		b.WriteString(m.th.Body.Bold(true).Render("New attempt") + "\n\n")
		b.WriteString(m.renderDraft())
		b.WriteString(m.input.View() + "\n")
		if m.notice != "" {
			b.WriteString("\n" + m.th.Hint.Render(m.notice))
		}
		return b.String()
	}

	if len(p.MockTests) == 0 {
		b.WriteString(m.th.Hint.Render("No mock tests recorded. Press 'a' to add your first attempt."))
		return b.String()
	}

	header := fmt.Sprintf("  %-14s %-24s %-12s %4s %4s %4s  %9s  %s",
		"Type", "Name", "Date", "P", "C", "M", "Total", "Remind")
	b.WriteString(m.th.Hint.Render(header) + "\n")

	for i, t := range p.MockTests {
		remind := " "
		if t.Reminder {
			remind = "🔔"
		}
		line := fmt.Sprintf("%-14s %-24s %-12s %4d %4d %4d  %4d/%-4d  %s",
			clip(t.Type, 14), clip(t.Name, 24), t.Date, t.P, t.C, t.M, t.Total, t.MaxMarks, remind)

		switch {
		case i == m.cursor && m.confirm == t.ID:
			b.WriteString(m.th.Bad.Render("▸ "+line+"   delete? y/n") + "\n")
		case i == m.cursor:
			b.WriteString(m.th.Selected.Render("▸ "+line) + "\n")
		default:
			b.WriteString(m.th.Unselected.Render("  "+line) + "\n")
		}
	}

	return b.String()
}

func (m *MockTestsScreen) renderDraft() string {
	var b strings.Builder
	if m.draft.typ != "" {
		b.WriteString(m.th.Hint.Render("Type: "+m.draft.typ) + "\n")
	}
	if m.draft.name != "" {
		b.WriteString(m.th.Hint.Render("Name: "+m.draft.name) + "\n")
	}
	if m.draft.date != "" {
		b.WriteString(m.th.Hint.Render("Date: "+m.draft.date) + "\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func (m *MockTestsScreen) Title() string {
	return "Mock Tests"
}

// KeyHints implements screen.KeyHintProvider.
func (m *MockTestsScreen) KeyHints() []layout.KeyHint {
	if m.field != fieldNone {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "A", Description: "Add"},
		{Key: "R", Description: "Reminder"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Home"},
	}
}
