// Package settings edits presentation preferences, the daily goal,
// the backdrop reference and the account session.
package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/router"
	"github.com/ritankar/lakshya/internal/screen"
	"github.com/ritankar/lakshya/internal/screens/examselect"
	"github.com/ritankar/lakshya/internal/sessiongate"
	"github.com/ritankar/lakshya/internal/ui/components"
	"github.com/ritankar/lakshya/internal/ui/layout"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

type editKind int

const (
	editNone editKind = iota
	editUsername
	editGoal
	editBackdrop
)

// SettingsScreen is a row-based editor over the profile settings.
type SettingsScreen struct {
	live *profile.Store
	auth sessiongate.AuthProvider
	gate *sessiongate.Gate
	th   theme.Theme

	cursor  int
	editing editKind
	input   components.TextInput
	notice  string
}

var _ screen.Screen = (*SettingsScreen)(nil)

const (
	rowUsername = iota
	rowGoal
	rowTheme
	rowMode
	rowExams
	rowBackdrop
	rowClearBackdrop
	rowSignOut
	rowCount
)

// New creates the settings screen.
func New(th theme.Theme, live *profile.Store, auth sessiongate.AuthProvider, gate *sessiongate.Gate) *SettingsScreen {
	return &SettingsScreen{live: live, auth: auth, gate: gate, th: th}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.editing != editNone {
		return s.updateEdit(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < rowCount-1 {
			s.cursor++
		}
	case "left", "h":
		s.cycle(-1)
	case "right", "l":
		s.cycle(1)
	case "enter":
		return s.activate()
	}

	return s, nil
}

// cycle steps the theme or mode rows without opening an editor.
func (s *SettingsScreen) cycle(dir int) {
	p := s.live.Get()
	st := p.Settings

	switch s.cursor {
	case rowTheme:
		idx := 0
		for i, n := range theme.Names {
			if n == st.Theme {
				idx = i
				break
			}
		}
		idx = (idx + dir + len(theme.Names)) % len(theme.Names)
		st.Theme = theme.Names[idx]
	case rowMode:
		if st.Mode == profile.ModeLight {
			st.Mode = profile.ModeDark
		} else {
			st.Mode = profile.ModeLight
		}
	default:
		return
	}

	s.live.Set(func(p profile.Profile) profile.Profile {
		return profile.SetSettings(p, st)
	})
	// Restyle this screen immediately; other screens pick the theme up
	// when they are next constructed.
	s.th = theme.Load(st.Theme, st.Mode != profile.ModeLight)
}

func (s *SettingsScreen) activate() (screen.Screen, tea.Cmd) {
	switch s.cursor {
	case rowUsername:
		s.editing = editUsername
		s.input = components.NewTextInput(s.th, s.live.Get().Settings.Username, false, 40)
		return s, s.input.Init()

	case rowGoal:
		s.editing = editGoal
		s.input = components.NewTextInput(s.th, fmt.Sprintf("%.0f", s.live.Get().DailyGoal), false, 4)
		return s, s.input.Init()

	case rowTheme, rowMode:
		s.cycle(1)
		return s, nil

	case rowExams:
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: examselect.New(s.th, s.live, s.gate)}
		}

	case rowBackdrop:
		s.editing = editBackdrop
		s.input = components.NewTextInput(s.th, "Image path or URL", false, 0)
		return s, s.input.Init()

	case rowClearBackdrop:
		s.live.Set(func(p profile.Profile) profile.Profile {
			out, _ := profile.SetBackdrop(p, "")
			return out
		})
		s.notice = "Backdrop cleared."
		return s, nil

	case rowSignOut:
		if err := s.auth.SignOut(context.Background()); err != nil {
			s.notice = "Sign-out failed: " + err.Error()
		}
		return s, nil
	}
	return s, nil
}

func (s *SettingsScreen) updateEdit(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.editing = editNone
			return s, nil
		case "enter":
			s.submitEdit()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SettingsScreen) submitEdit() {
	val := strings.TrimSpace(s.input.Value())

	switch s.editing {
	case editUsername:
		st := s.live.Get().Settings
		st.Username = val
		s.live.Set(func(p profile.Profile) profile.Profile {
			return profile.SetSettings(p, st)
		})

	case editGoal:
		hours, err := strconv.ParseFloat(val, 64)
		if err != nil || hours <= 0 {
			s.notice = "Daily goal must be a positive number of hours."
			return
		}
		s.live.Set(func(p profile.Profile) profile.Profile {
			return profile.SetDailyGoal(p, hours)
		})

	case editBackdrop:
		if val == "" {
			s.editing = editNone
			return
		}
		var setErr error
		s.live.Set(func(p profile.Profile) profile.Profile {
			out, err := profile.SetBackdrop(p, val)
			if err != nil {
				setErr = err
				return p
			}
			return out
		})
		if setErr != nil {
			s.notice = "Backdrop rejected: " + setErr.Error()
			return
		}
		s.notice = "Backdrop saved."
	}

	s.editing = editNone
}

func (s *SettingsScreen) View(width, height int) string {
	p := s.live.Get()
	u := s.gate.User()

	var b strings.Builder
	b.WriteString(s.th.Title.Render("Settings") + "\n\n")

	backdrop := "(none)"
	if p.BGImage != "" {
		backdrop = describeBackdrop(p.BGImage)
	}

	rows := []struct {
		label string
		value string
	}{
		{"Username", orDash(p.Settings.Username)},
		{"Daily goal", fmt.Sprintf("%.1f hours", p.DailyGoal)},
		{"Theme", p.Settings.Theme + "  ◂ ▸"},
		{"Mode", p.Settings.Mode + "  ◂ ▸"},
		{"Target exams", strings.Join(p.SelectedExams, ", ")},
		{"Backdrop", backdrop},
		{"Clear backdrop", ""},
		{"Sign out", ""},
	}

	for i, row := range rows {
		line := fmt.Sprintf("%-16s %s", row.label, row.value)
		if i == s.cursor {
			b.WriteString(s.th.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(s.th.Unselected.Render("  "+line) + "\n")
		}
	}

	if s.editing != editNone {
		b.WriteString("\n" + s.input.View() + "\n")
	}

	if u != nil {
		b.WriteString("\n" + s.th.Hint.Render(fmt.Sprintf("Signed in as %s (%s)", u.DisplayName, u.Email)))
	}
	if s.notice != "" {
		b.WriteString("\n" + s.th.Hint.Render(s.notice))
	}

	return b.String()
}

// describeBackdrop summarizes a stored backdrop reference without
// dumping a data URI into the view.
func describeBackdrop(ref string) string {
	if strings.HasPrefix(ref, "data:") {
		return fmt.Sprintf("embedded image (%d KB)", len(ref)/1024)
	}
	if len(ref) > 48 {
		return ref[:47] + "…"
	}
	return ref
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

// KeyHints implements screen.KeyHintProvider.
func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.editing != editNone {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "◂▸", Description: "Cycle"},
		{Key: "Enter", Description: "Edit"},
		{Key: "Esc", Description: "Home"},
	}
}
