// Package dashboard is the landing screen after sign-in: daily goal
// progress, exam countdowns, the task list and the feature menu.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritankar/lakshya/internal/analytics"
	"github.com/ritankar/lakshya/internal/chat"
	"github.com/ritankar/lakshya/internal/llm"
	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/router"
	"github.com/ritankar/lakshya/internal/screen"
	"github.com/ritankar/lakshya/internal/screens/analysis"
	"github.com/ritankar/lakshya/internal/screens/chatscreen"
	"github.com/ritankar/lakshya/internal/screens/kpp"
	"github.com/ritankar/lakshya/internal/screens/mocktests"
	"github.com/ritankar/lakshya/internal/screens/settings"
	"github.com/ritankar/lakshya/internal/screens/syllabus"
	timerscreen "github.com/ritankar/lakshya/internal/screens/timer"
	"github.com/ritankar/lakshya/internal/sessiongate"
	"github.com/ritankar/lakshya/internal/store"
	"github.com/ritankar/lakshya/internal/ui/components"
	"github.com/ritankar/lakshya/internal/ui/layout"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

// briefingMsg carries the one-line daily briefing produced off the
// Update loop.
type briefingMsg struct {
	line string
}

type focusArea int

const (
	focusMenu focusArea = iota
	focusTasks
)

// DashboardScreen is the main home screen of the application.
type DashboardScreen struct {
	live      *profile.Store
	gate      *sessiongate.Gate
	auth      sessiongate.AuthProvider
	bridge    *chat.Bridge
	provider  llm.Provider
	events    store.EventRepo
	accountID func() string
	th        theme.Theme

	menu       components.Menu
	focus      focusArea
	taskCursor int
	adding     bool
	taskInput  components.TextInput
	briefing   string
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard. provider may be nil when no API key is
// configured; the chat entry and the briefing degrade gracefully.
func New(th theme.Theme, live *profile.Store, gate *sessiongate.Gate, auth sessiongate.AuthProvider, bridge *chat.Bridge, provider llm.Provider, events store.EventRepo, accountID func() string) *DashboardScreen {
	d := &DashboardScreen{
		live:      live,
		gate:      gate,
		auth:      auth,
		bridge:    bridge,
		provider:  provider,
		events:    events,
		accountID: accountID,
		th:        th,
	}

	items := []components.MenuItem{
		{Label: "Study Timer", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: timerscreen.New(d.th, live, events, accountID)}
			}
		}},
		{Label: "AI Chat", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(d.th, bridge, live)}
			}
		}},
		{Label: "Analysis", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: analysis.New(d.th, live)}
			}
		}},
		{Label: "Syllabus", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: syllabus.New(d.th, live)}
			}
		}},
		{Label: "Mock Tests", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: mocktests.New(d.th, live)}
			}
		}},
		{Label: "KPP Tracker", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: kpp.New(d.th, live)}
			}
		}},
		{Label: "Settings", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(d.th, live, auth, gate)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	d.menu = components.NewMenu(th, items)
	return d
}

func (d *DashboardScreen) Init() tea.Cmd {
	if d.provider == nil {
		return nil
	}
	p := d.live.Get()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return briefingMsg{line: chat.DailyBriefing(ctx, d.provider, p, time.Now())}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case briefingMsg:
		d.briefing = msg.line
		return d, nil

	case tea.KeyMsg:
		if d.adding {
			return d.updateAddTask(msg)
		}
		switch msg.String() {
		case "tab":
			if d.focus == focusMenu {
				d.focus = focusTasks
			} else {
				d.focus = focusMenu
			}
			return d, nil
		case "a":
			d.adding = true
			d.taskInput = components.NewTextInput(d.th, "What needs doing?", false, 48)
			return d, d.taskInput.Init()
		}
		if d.focus == focusTasks {
			return d.updateTasks(msg)
		}
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) updateAddTask(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		d.adding = false
		return d, nil
	case "enter":
		text := strings.TrimSpace(d.taskInput.Value())
		if text != "" {
			d.live.Set(func(p profile.Profile) profile.Profile {
				return profile.AddTask(p, text, "", time.Now())
			})
		}
		d.adding = false
		d.focus = focusTasks
		d.taskCursor = 0
		return d, nil
	}
	var cmd tea.Cmd
	d.taskInput, cmd = d.taskInput.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) updateTasks(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	tasks := d.live.Get().Tasks

	switch msg.String() {
	case "up", "k":
		if d.taskCursor > 0 {
			d.taskCursor--
		}
	case "down", "j":
		if d.taskCursor < len(tasks)-1 {
			d.taskCursor++
		}
	case " ", "space", "enter":
		if d.taskCursor < len(tasks) {
			id := tasks[d.taskCursor].ID
			d.live.Set(func(p profile.Profile) profile.Profile {
				return profile.ToggleTask(p, id)
			})
		}
	case "d":
		if d.taskCursor < len(tasks) {
			id := tasks[d.taskCursor].ID
			d.live.Set(func(p profile.Profile) profile.Profile {
				return profile.DeleteTask(p, id)
			})
			if d.taskCursor > 0 {
				d.taskCursor--
			}
		}
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	p := d.live.Get()
	now := time.Now()

	var left strings.Builder

	name := p.Settings.Username
	if name == "" {
		if u := d.gate.User(); u != nil {
			name = u.DisplayName
		}
	}
	left.WriteString(d.th.Title.Render(greeting(now)+", "+name) + "\n\n")

	if d.briefing != "" {
		left.WriteString(d.th.Subtitle.Render("✦ "+d.briefing) + "\n\n")
	}

	pct := analytics.GoalProgress(p.History, p.DailyGoal, now)
	bar := components.NewProgressBar(d.th,
		fmt.Sprintf("Today  %s / %.1fh goal",
			components.FormatMinutes(analytics.TodayMinutes(p.History, now)), p.DailyGoal),
		pct, true, 32)
	left.WriteString(bar.View() + "\n\n")

	for _, c := range analytics.Countdowns(p.SelectedExams, now) {
		left.WriteString(d.th.Unselected.Render(
			fmt.Sprintf("  %s in %d days (%s)", c.Exam, c.DaysLeft, c.Date.Format("Jan 2, 2006"))) + "\n")
	}
	left.WriteString("\n")

	left.WriteString(d.renderTasks(p.Tasks))

	menuTitle := "  Menu"
	if d.focus == focusMenu {
		menuTitle = d.th.Subtitle.Render("▸ Menu")
	}
	right := menuTitle + "\n\n" + d.menu.View()

	leftCol := lipgloss.NewStyle().Width(max(width-30, 20)).Render(left.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, right)
}

func (d *DashboardScreen) renderTasks(tasks []profile.Task) string {
	var b strings.Builder

	title := "  Tasks"
	if d.focus == focusTasks {
		title = d.th.Subtitle.Render("▸ Tasks")
	}
	b.WriteString(title + "\n")

	if len(tasks) == 0 && !d.adding {
		b.WriteString(d.th.Hint.Render("  Nothing pending. Press a to add a task.") + "\n")
	}

	for i, t := range tasks {
		mark := "☐"
		if t.Completed {
			mark = "☑"
		}
		line := fmt.Sprintf("%s %s", mark, t.Text)
		if d.focus == focusTasks && i == d.taskCursor {
			b.WriteString(d.th.Selected.Render("▸ "+line) + "\n")
		} else if t.Completed {
			b.WriteString(d.th.Hint.Render("  "+line) + "\n")
		} else {
			b.WriteString(d.th.Unselected.Render("  "+line) + "\n")
		}
	}

	if d.adding {
		b.WriteString("\n" + d.taskInput.View() + "\n")
	}
	return b.String()
}

func greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 5:
		return "Burning the midnight oil"
	case h < 12:
		return "Good morning"
	case h < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func (d *DashboardScreen) Title() string {
	return "Lakshya"
}

// KeyHints implements screen.KeyHintProvider.
func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Add"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch focus"},
		{Key: "a", Description: "Add task"},
	}
	if d.focus == focusTasks {
		hints = append(hints,
			layout.KeyHint{Key: "Space", Description: "Toggle"},
			layout.KeyHint{Key: "d", Description: "Delete"},
		)
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Open"})
	}
	return hints
}
