package dashboard

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/sessiongate"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDashboard(p profile.Profile) (*DashboardScreen, *profile.Store) {
	live := profile.NewStore(p)
	gate := sessiongate.NewGate(nil, nil, live)
	d := New(theme.Load("Indigo", true), live, gate, nil, nil, nil, nil,
		func() string { return "acct-1" })
	return d, live
}

func seededProfile() profile.Profile {
	p := profile.DefaultProfile()
	p = profile.AddTask(p, "Revise rotational motion", "Physics", time.Now())
	p = profile.AddTask(p, "Solve 20 organic problems", "Chemistry", time.Now().Add(time.Second))
	return p
}

func TestDashboard_Title(t *testing.T) {
	d, _ := testDashboard(profile.DefaultProfile())
	if d.Title() != "Lakshya" {
		t.Errorf("Title = %q, want Lakshya", d.Title())
	}
}

func TestDashboard_TabSwitchesFocus(t *testing.T) {
	d, _ := testDashboard(profile.DefaultProfile())

	if d.focus != focusMenu {
		t.Fatal("initial focus should be the menu")
	}
	d.Update(specialKey(tea.KeyTab))
	if d.focus != focusTasks {
		t.Error("tab should move focus to tasks")
	}
	d.Update(specialKey(tea.KeyTab))
	if d.focus != focusMenu {
		t.Error("tab again should move focus back to the menu")
	}
}

func TestDashboard_ToggleTask(t *testing.T) {
	d, live := testDashboard(seededProfile())

	d.Update(specialKey(tea.KeyTab))
	d.Update(specialKey(tea.KeySpace))

	tasks := live.Get().Tasks
	if !tasks[0].Completed {
		t.Error("space should complete the task under the cursor")
	}

	d.Update(specialKey(tea.KeySpace))
	if live.Get().Tasks[0].Completed {
		t.Error("space again should reopen the task")
	}
}

func TestDashboard_DeleteTask(t *testing.T) {
	d, live := testDashboard(seededProfile())

	d.Update(specialKey(tea.KeyTab))
	d.Update(keyPress('j'))
	d.Update(keyPress('d'))

	tasks := live.Get().Tasks
	if len(tasks) != 1 {
		t.Fatalf("len(tasks) = %d, want 1", len(tasks))
	}
	if d.taskCursor != 0 {
		t.Errorf("taskCursor = %d, want 0 after deleting the last row", d.taskCursor)
	}
}

func TestDashboard_AddTask(t *testing.T) {
	d, live := testDashboard(profile.DefaultProfile())

	d.Update(keyPress('a'))
	if !d.adding {
		t.Fatal("a should open the add-task input")
	}

	for _, r := range "Mock test review" {
		d.Update(keyPress(r))
	}
	d.Update(specialKey(tea.KeyEnter))

	tasks := live.Get().Tasks
	if len(tasks) != 1 {
		t.Fatalf("len(tasks) = %d, want 1", len(tasks))
	}
	if tasks[0].Text != "Mock test review" {
		t.Errorf("task text = %q", tasks[0].Text)
	}
	if d.adding {
		t.Error("enter should close the input")
	}
}

func TestDashboard_AddTaskEscCancels(t *testing.T) {
	d, live := testDashboard(profile.DefaultProfile())

	d.Update(keyPress('a'))
	d.Update(keyPress('x'))
	d.Update(specialKey(tea.KeyEscape))

	if d.adding {
		t.Error("esc should close the input")
	}
	if len(live.Get().Tasks) != 0 {
		t.Error("cancelled input should not create a task")
	}
}

func TestDashboard_BriefingMsgShownInView(t *testing.T) {
	d, _ := testDashboard(seededProfile())

	d.Update(briefingMsg{line: "41 days to JEE Main. Physics first."})

	view := d.View(110, 30)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
	if d.briefing == "" {
		t.Error("briefing should be stored after the message")
	}
}

func TestDashboard_InitWithoutProviderIsNil(t *testing.T) {
	d, _ := testDashboard(profile.DefaultProfile())
	if d.Init() != nil {
		t.Error("Init should be nil when no provider is configured")
	}
}
