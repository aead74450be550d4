package settings

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/sessiongate"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

// fakeAuth implements sessiongate.AuthProvider for testing.
type fakeAuth struct {
	signedOut bool
}

func (f *fakeAuth) Subscribe(fn func(*sessiongate.User)) (cancel func()) { return func() {} }
func (f *fakeAuth) SignIn(_ context.Context, _, _ string) error         { return nil }
func (f *fakeAuth) SignOut(_ context.Context) error {
	f.signedOut = true
	return nil
}
func (f *fakeAuth) SendVerification(_ context.Context) error          { return nil }
func (f *fakeAuth) SendPasswordReset(_ context.Context, _ string) error { return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSettings() (*SettingsScreen, *profile.Store, *fakeAuth) {
	live := profile.NewStore(profile.DefaultProfile())
	auth := &fakeAuth{}
	gate := sessiongate.NewGate(auth, nil, live)
	s := New(theme.Load("Indigo", true), live, auth, gate)
	return s, live, auth
}

func moveTo(s *SettingsScreen, row int) {
	for s.cursor < row {
		s.Update(keyPress('j'))
	}
}

func TestSettings_CycleTheme(t *testing.T) {
	s, live, _ := testSettings()
	moveTo(s, rowTheme)

	start := live.Get().Settings.Theme
	s.Update(keyPress('l'))

	got := live.Get().Settings.Theme
	if got == start {
		t.Errorf("theme unchanged after cycling, still %q", got)
	}

	s.Update(keyPress('h'))
	if live.Get().Settings.Theme != start {
		t.Error("cycling back should restore the original theme")
	}
}

func TestSettings_ToggleMode(t *testing.T) {
	s, live, _ := testSettings()
	moveTo(s, rowMode)

	start := live.Get().Settings.Mode
	s.Update(keyPress('l'))

	if live.Get().Settings.Mode == start {
		t.Error("mode should flip between Dark and Light")
	}
}

func TestSettings_EditDailyGoal(t *testing.T) {
	s, live, _ := testSettings()
	moveTo(s, rowGoal)

	s.Update(specialKey(tea.KeyEnter))
	if s.editing != editGoal {
		t.Fatal("enter on the goal row should open the editor")
	}

	// Replace the prefilled value.
	for i := 0; i < 8; i++ {
		s.Update(specialKey(tea.KeyBackspace))
	}
	for _, r := range "9.5" {
		s.Update(keyPress(r))
	}
	s.Update(specialKey(tea.KeyEnter))

	if got := live.Get().DailyGoal; got != 9.5 {
		t.Errorf("DailyGoal = %v, want 9.5", got)
	}
}

func TestSettings_RejectsNonPositiveGoal(t *testing.T) {
	s, live, _ := testSettings()
	before := live.Get().DailyGoal
	moveTo(s, rowGoal)

	s.Update(specialKey(tea.KeyEnter))
	for i := 0; i < 8; i++ {
		s.Update(specialKey(tea.KeyBackspace))
	}
	s.Update(keyPress('0'))
	s.Update(specialKey(tea.KeyEnter))

	if got := live.Get().DailyGoal; got != before {
		t.Errorf("DailyGoal = %v, want unchanged %v", got, before)
	}
	if s.notice == "" {
		t.Error("expected a validation notice")
	}
}

func TestSettings_EditUsername(t *testing.T) {
	s, live, _ := testSettings()
	moveTo(s, rowUsername)

	s.Update(specialKey(tea.KeyEnter))
	for _, r := range "Ritankar" {
		s.Update(keyPress(r))
	}
	s.Update(specialKey(tea.KeyEnter))

	if got := live.Get().Settings.Username; got != "Ritankar" {
		t.Errorf("Username = %q, want Ritankar", got)
	}
}

func TestSettings_ClearBackdrop(t *testing.T) {
	s, live, _ := testSettings()
	p, err := profile.SetBackdrop(live.Get(), "https://example.com/bg.png")
	if err != nil {
		t.Fatal(err)
	}
	live.Replace(p)

	moveTo(s, rowClearBackdrop)
	s.Update(specialKey(tea.KeyEnter))

	if live.Get().BGImage != "" {
		t.Error("backdrop should be cleared")
	}
}

func TestSettings_SignOut(t *testing.T) {
	s, _, auth := testSettings()
	moveTo(s, rowSignOut)

	s.Update(specialKey(tea.KeyEnter))

	if !auth.signedOut {
		t.Error("enter on the sign-out row should call SignOut")
	}
}
