// Package app owns the root Bubble Tea model: the screen router, the
// frame chrome, and the mapping from session phase to root screen.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritankar/lakshya/internal/analytics"
	"github.com/ritankar/lakshya/internal/chat"
	"github.com/ritankar/lakshya/internal/llm"
	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/router"
	"github.com/ritankar/lakshya/internal/screen"
	"github.com/ritankar/lakshya/internal/screens/dashboard"
	"github.com/ritankar/lakshya/internal/screens/examselect"
	"github.com/ritankar/lakshya/internal/screens/signin"
	"github.com/ritankar/lakshya/internal/sessiongate"
	"github.com/ritankar/lakshya/internal/store"
	"github.com/ritankar/lakshya/internal/ui/layout"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

// phaseChangedMsg is sent into the program whenever the session gate
// moves between phases.
type phaseChangedMsg struct {
	phase sessiongate.Phase
}

// Options carries the wired dependencies from cmd into the TUI.
type Options struct {
	Store    *store.Store
	Live     *profile.Store
	Auth     sessiongate.AuthProvider
	Gate     *sessiongate.Gate
	Provider llm.Provider
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	bridge *chat.Bridge
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	m := AppModel{opts: opts}
	if opts.Provider != nil {
		m.bridge = chat.NewBridge(opts.Provider)
	}
	m.router = router.New(m.screenFor(opts.Gate.Phase()))
	return m
}

// screenFor maps a gate phase to the root screen shown for it.
func (m AppModel) screenFor(p sessiongate.Phase) screen.Screen {
	th := m.theme()

	switch p {
	case sessiongate.PhaseSignedOut:
		return signin.New(th, m.opts.Auth)
	case sessiongate.PhaseEmailUnverified:
		email := ""
		if u := m.opts.Gate.User(); u != nil {
			email = u.Email
		}
		return signin.NewVerify(th, m.opts.Auth, email)
	case sessiongate.PhaseNeedsExamSelection:
		return examselect.New(th, m.opts.Live, m.opts.Gate)
	case sessiongate.PhaseReady:
		return dashboard.New(th, m.opts.Live, m.opts.Gate, m.opts.Auth,
			m.bridge, m.opts.Provider, m.opts.Store.EventRepo(), m.accountID)
	default:
		return loadingScreen{th: th}
	}
}

func (m AppModel) accountID() string {
	if u := m.opts.Gate.User(); u != nil {
		return u.ID
	}
	return ""
}

func (m AppModel) theme() theme.Theme {
	st := m.opts.Live.Get().Settings
	return theme.Load(st.Theme, st.Mode != profile.ModeLight)
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case phaseChangedMsg:
		next := m.screenFor(msg.phase)
		return m, tea.Batch(m.router.Reset(next), next.Init())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	th := m.theme()

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(th, m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	p := m.opts.Live.Get()
	header := layout.RenderHeader(th, title,
		analytics.Streak(p.History, time.Now()), p.XP, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	} else if m.router.Depth() > 1 {
		footerHints = append([]layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}, footerHints...)
	} else {
		footerHints = append([]layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}, footerHints...)
	}

	footer := layout.RenderFooter(th, footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// loadingScreen fills the brief window before the first auth callback.
type loadingScreen struct {
	th theme.Theme
}

func (l loadingScreen) Init() tea.Cmd { return nil }

func (l loadingScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return l, nil }

func (l loadingScreen) View(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		l.th.Hint.Render("Loading…"))
}

func (l loadingScreen) Title() string { return "Lakshya" }

// Run wires the persistence watcher and the gate into a Bubble Tea
// program and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	model := newAppModel(opts)
	program := tea.NewProgram(model)

	watcher := newWriteWatcher(opts.Store.ProfileRepo(), opts.Gate)
	opts.Live.OnChange(watcher.onProfile)
	defer watcher.Close()

	opts.Gate.OnChange(func(p sessiongate.Phase) {
		program.Send(phaseChangedMsg{phase: p})
	})
	opts.Gate.Start(ctx)
	defer opts.Gate.Close()

	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
