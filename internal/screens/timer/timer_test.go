package timer

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/store"
	"github.com/ritankar/lakshya/internal/timerengine"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessions []store.StudySessionEventData
}

func (m *mockEventRepo) AppendStudySession(_ context.Context, data store.StudySessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}
func (m *mockEventRepo) QueryStudySessions(_ context.Context, _ string, _ store.QueryOpts) ([]store.StudySessionEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testTimerScreen() (*TimerScreen, *mockEventRepo) {
	p := profile.DefaultProfile()
	p = profile.SetSelectedExams(p, []string{"JEE Main 2026"})
	live := profile.NewStore(p)
	repo := &mockEventRepo{}
	th := theme.Load("Indigo", true)
	s := New(th, live, repo, func() string { return "acct-1" })
	return s, repo
}

func TestTimerScreen_Title(t *testing.T) {
	s, _ := testTimerScreen()
	if s.Title() != "Timer" {
		t.Errorf("Title = %q, want %q", s.Title(), "Timer")
	}
}

func TestTimerScreen_PickSubjectAdvancesToSetup(t *testing.T) {
	s, _ := testTimerScreen()
	s.Update(specialKey(tea.KeyEnter))

	if s.phase != phaseSetup {
		t.Fatalf("phase = %v, want phaseSetup", s.phase)
	}
	if s.subject == "" {
		t.Error("expected a subject after picking")
	}
}

func TestTimerScreen_ModeToggle(t *testing.T) {
	s, _ := testTimerScreen()
	s.Update(specialKey(tea.KeyEnter))

	s.Update(keyPress('m'))
	if s.engine.Mode() != timerengine.Countdown {
		t.Error("m should switch to countdown mode")
	}
	s.Update(keyPress('m'))
	if s.engine.Mode() != timerengine.Stopwatch {
		t.Error("m again should switch back to stopwatch")
	}
}

func TestTimerScreen_ShortSessionNotRecorded(t *testing.T) {
	s, repo := testTimerScreen()
	s.Update(specialKey(tea.KeyEnter)) // pick subject
	s.Update(specialKey(tea.KeyEnter)) // start

	if s.phase != phaseRunning {
		t.Fatalf("phase = %v, want phaseRunning", s.phase)
	}

	for i := 0; i < 10; i++ {
		s.Update(timerTickMsg{})
	}
	s.Update(specialKey(tea.KeyEnter)) // stop below the floor

	if s.phase != phaseSetup {
		t.Errorf("phase = %v, want phaseSetup after a too-short stop", s.phase)
	}
	if len(repo.sessions) != 0 {
		t.Errorf("recorded %d sessions, want 0", len(repo.sessions))
	}
	if !strings.Contains(s.notice, "aren't recorded") {
		t.Errorf("notice = %q, want a floor explanation", s.notice)
	}
}

func TestTimerScreen_CommitRecordsSessionAndEvent(t *testing.T) {
	s, repo := testTimerScreen()
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	for i := 0; i < timerengine.CommitFloorSeconds+30; i++ {
		s.Update(timerTickMsg{})
	}
	s.Update(specialKey(tea.KeyEnter)) // stop

	if s.phase != phaseConfirm {
		t.Fatalf("phase = %v, want phaseConfirm", s.phase)
	}

	s.Update(keyPress('y')) // commit

	if len(repo.sessions) != 1 {
		t.Fatalf("recorded %d sessions, want 1", len(repo.sessions))
	}
	got := repo.sessions[0]
	if got.AccountID != "acct-1" {
		t.Errorf("AccountID = %q, want acct-1", got.AccountID)
	}
	if got.Seconds != timerengine.CommitFloorSeconds+30 {
		t.Errorf("Seconds = %d, want %d", got.Seconds, timerengine.CommitFloorSeconds+30)
	}
	if got.Mode != "stopwatch" {
		t.Errorf("Mode = %q, want stopwatch", got.Mode)
	}
	if got.XPGained <= 0 {
		t.Error("expected positive XP")
	}
}

func TestTimerScreen_DiscardLeavesProfileUntouched(t *testing.T) {
	s, repo := testTimerScreen()
	before := s.live.Get()

	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))
	for i := 0; i < timerengine.CommitFloorSeconds+10; i++ {
		s.Update(timerTickMsg{})
	}
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('n')) // discard

	if len(repo.sessions) != 0 {
		t.Errorf("recorded %d sessions, want 0", len(repo.sessions))
	}
	if got := s.live.Get(); got.XP != before.XP {
		t.Errorf("XP changed from %d to %d on a discard", before.XP, got.XP)
	}
}

func TestTimerScreen_CountdownCompletionAsksToCommit(t *testing.T) {
	s, _ := testTimerScreen()
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('m')) // countdown
	s.engine.SetDuration(2)
	s.Update(specialKey(tea.KeyEnter)) // start

	for i := 0; i < 120; i++ {
		s.Update(timerTickMsg{})
	}

	if s.phase != phaseConfirm {
		t.Errorf("phase = %v, want phaseConfirm after the countdown completes", s.phase)
	}
	if s.pending.Seconds != 120 {
		t.Errorf("pending.Seconds = %d, want 120", s.pending.Seconds)
	}
}

func TestTimerScreen_View_NonEmpty(t *testing.T) {
	s, _ := testTimerScreen()
	for _, ph := range []phase{phasePickSubject, phaseSetup, phaseRunning, phaseConfirm} {
		s.phase = ph
		if s.View(80, 24) == "" {
			t.Errorf("empty view for phase %v", ph)
		}
	}
}
