// Package timer is the study timer screen: subject picker, stopwatch
// or countdown, live clock, and a confirm step before committing the
// session to the profile and the event log.
package timer

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/ritankar/lakshya/internal/notify"
	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/screen"
	"github.com/ritankar/lakshya/internal/store"
	"github.com/ritankar/lakshya/internal/timerengine"
	"github.com/ritankar/lakshya/internal/ui/components"
	"github.com/ritankar/lakshya/internal/ui/layout"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

// timerTickMsg is sent every second while the engine runs.
type timerTickMsg time.Time

// windowTitle is restored when the timer leaves the running state.
const windowTitle = "Lakshya"

type phase int

const (
	phasePickSubject phase = iota
	phaseSetup
	phaseRunning
	phaseConfirm
)

// TimerScreen drives the tick-driven engine from bubbletea.
type TimerScreen struct {
	live      *profile.Store
	events    store.EventRepo
	accountID func() string
	th        theme.Theme

	phase   phase
	engine  *timerengine.Engine
	subject string
	picker  components.Menu
	input   components.TextInput
	editing bool

	pending timerengine.Result
	notice  string
}

var _ screen.Screen = (*TimerScreen)(nil)

// New creates the timer screen. events may be nil (no audit trail).
func New(th theme.Theme, live *profile.Store, events store.EventRepo, accountID func() string) *TimerScreen {
	s := &TimerScreen{
		live:      live,
		events:    events,
		accountID: accountID,
		th:        th,
		engine:    timerengine.New(timerengine.Stopwatch),
	}

	subjects := profile.UserSubjects(live.Get().SelectedExams)
	items := make([]components.MenuItem, 0, len(subjects))
	for _, name := range subjects {
		name := name
		items = append(items, components.MenuItem{
			Label: name,
			Action: func() tea.Cmd {
				s.subject = name
				s.phase = phaseSetup
				return nil
			},
		})
	}
	s.picker = components.NewMenu(th, items)
	return s
}

func (s *TimerScreen) Init() tea.Cmd {
	return nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (s *TimerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()
	case tea.KeyMsg:
		switch s.phase {
		case phasePickSubject:
			var cmd tea.Cmd
			s.picker, cmd = s.picker.Update(msg)
			return s, cmd
		case phaseSetup:
			return s.handleSetupKey(msg)
		case phaseRunning:
			return s.handleRunningKey(msg)
		case phaseConfirm:
			return s.handleConfirmKey(msg)
		}
	}
	return s, nil
}

func (s *TimerScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.engine.State() != timerengine.Running {
		return s, nil
	}

	completed := s.engine.Tick()
	if completed {
		// Countdown hit zero: the engine stopped itself; ask to commit.
		if err := notify.Send("Lakshya", "Time's up! "+s.subject+" session complete."); err != nil {
			s.notice = "Session complete (notification unavailable)."
		}
		if res, ok := s.engine.Stop(); ok {
			s.pending = res
			s.phase = phaseConfirm
		} else {
			s.phase = phaseSetup
		}
		return s, tea.Raw(ansi.SetWindowTitle(windowTitle))
	}

	return s, tea.Batch(tickCmd(), tea.Raw(ansi.SetWindowTitle(s.engine.Display()+" · "+s.subject)))
}

func (s *TimerScreen) handleSetupKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.editing {
		switch msg.String() {
		case "esc":
			s.editing = false
			return s, nil
		case "enter":
			minutes, err := s.input.NumericValue()
			if err != nil || minutes <= 0 {
				s.notice = "Duration must be a positive number of minutes."
				return s, nil
			}
			s.engine.SetDuration(minutes)
			s.editing = false
			s.notice = ""
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch msg.String() {
	case "m":
		if s.engine.Mode() == timerengine.Stopwatch {
			s.engine.SetMode(timerengine.Countdown)
		} else {
			s.engine.SetMode(timerengine.Stopwatch)
		}
	case "t":
		if s.engine.Mode() == timerengine.Countdown {
			s.editing = true
			s.input = components.NewTextInput(s.th, "Minutes (e.g. 45)", true, 3)
			return s, s.input.Init()
		}
	case "s":
		s.subject = ""
		s.phase = phasePickSubject
	case "enter", " ", "space":
		s.engine.Start()
		s.phase = phaseRunning
		return s, tickCmd()
	}
	return s, nil
}

func (s *TimerScreen) handleRunningKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "p", " ", "space":
		if s.engine.State() == timerengine.Running {
			s.engine.Pause()
			return s, tea.Raw(ansi.SetWindowTitle(windowTitle + " (paused)"))
		}
		s.engine.Start()
		return s, tickCmd()

	case "enter", "x":
		res, ok := s.engine.Stop()
		if !ok {
			// Below the commit floor: nothing worth saving.
			s.notice = fmt.Sprintf("Sessions under %d seconds aren't recorded.", timerengine.CommitFloorSeconds)
			s.phase = phaseSetup
			return s, tea.Raw(ansi.SetWindowTitle(windowTitle))
		}
		s.pending = res
		s.phase = phaseConfirm
		return s, tea.Raw(ansi.SetWindowTitle(windowTitle))
	}
	return s, nil
}

func (s *TimerScreen) handleConfirmKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		s.commit()
		s.phase = phaseSetup
	case "n", "esc":
		s.notice = "Session discarded."
		s.phase = phaseSetup
	}
	return s, nil
}

func (s *TimerScreen) commit() {
	res := s.pending
	subject := s.subject
	s.live.Set(func(p profile.Profile) profile.Profile {
		return profile.CommitStudySession(p, subject, res.Seconds, time.Now())
	})

	if s.events != nil {
		mode := "stopwatch"
		if s.engine.Mode() == timerengine.Countdown {
			mode = "countdown"
		}
		err := s.events.AppendStudySession(context.Background(), store.StudySessionEventData{
			AccountID: s.accountID(),
			Subject:   subject,
			Seconds:   res.Seconds,
			Minutes:   res.Minutes,
			Mode:      mode,
			XPGained:  res.XP,
		})
		if err != nil {
			s.notice = "Saved locally; event log write failed."
			return
		}
	}
	s.notice = fmt.Sprintf("Logged %.2f min to %s (+%d xp).", res.Minutes, subject, res.XP)
}

func (s *TimerScreen) View(width, height int) string {
	var body string

	switch s.phase {
	case phasePickSubject:
		body = s.th.Title.Render("What are you studying?") + "\n\n" + s.picker.View()

	case phaseSetup:
		mode := "Stopwatch"
		if s.engine.Mode() == timerengine.Countdown {
			mode = "Countdown"
		}
		lines := s.th.Title.Render(s.subject) + "\n\n" +
			s.th.Body.Render("Mode: ") + s.th.Selected.Render(mode) + "\n"
		if s.engine.Mode() == timerengine.Countdown {
			lines += s.th.Body.Render("Duration: ") + s.th.Selected.Render(s.engine.Display()) + "\n"
		}
		if s.editing {
			lines += "\n" + s.input.View() + "\n"
		} else {
			lines += "\n" + s.th.Hint.Render("Enter to start · m mode · t duration · s subject")
		}
		body = lines

	case phaseRunning:
		state := "RUNNING"
		style := s.th.Good
		if s.engine.State() == timerengine.Paused {
			state = "PAUSED"
			style = s.th.Hint
		}
		clock := lipgloss.NewStyle().
			Foreground(s.th.Primary).
			Bold(true).
			Render(bigClock(s.engine.Display()))
		body = s.th.Subtitle.Render(s.subject) + "\n\n" + clock + "\n\n" + style.Render(state)

	case phaseConfirm:
		q := fmt.Sprintf("Log %.2f minutes of %s (+%d xp)?", s.pending.Minutes, s.subject, s.pending.XP)
		body = s.th.Title.Render("Session complete") + "\n\n" +
			s.th.Card.Render(s.th.Body.Render(q)+"\n\n"+s.th.Hint.Render("y / Enter log · n discard"))
	}

	if s.notice != "" {
		body += "\n\n" + s.th.Hint.Render(s.notice)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// bigClock spaces the digits out so the clock reads at a glance.
func bigClock(display string) string {
	var b strings.Builder
	for i, r := range display {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *TimerScreen) Title() string {
	return "Timer"
}

// KeyHints implements screen.KeyHintProvider.
func (s *TimerScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseRunning:
		return []layout.KeyHint{
			{Key: "Space", Description: "Pause/Resume"},
			{Key: "Enter", Description: "Stop"},
		}
	case phaseConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Log session"},
			{Key: "N", Description: "Discard"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "M", Description: "Mode"},
			{Key: "Esc", Description: "Home"},
		}
	}
}
