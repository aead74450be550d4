package examselect

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen() (*ExamSelectScreen, *profile.Store) {
	live := profile.NewStore(profile.DefaultProfile())
	return New(theme.Load("Indigo", true), live, nil), live
}

func TestExamSelect_ConfirmRequiresSelection(t *testing.T) {
	s, live := testScreen()

	s.Update(specialKey(tea.KeyEnter))

	if got := live.Get().SelectedExams; len(got) != 0 {
		t.Errorf("SelectedExams = %v, want empty when nothing was toggled", got)
	}
}

func TestExamSelect_ToggleAndConfirm(t *testing.T) {
	s, live := testScreen()

	s.Update(specialKey(tea.KeySpace))
	s.Update(specialKey(tea.KeyEnter))

	got := live.Get().SelectedExams
	if len(got) != 1 {
		t.Fatalf("SelectedExams = %v, want one entry", got)
	}
	if got[0] != profile.ExamCatalog[0].Name {
		t.Errorf("selected %q, want %q", got[0], profile.ExamCatalog[0].Name)
	}
}

func TestExamSelect_PreselectsCurrentExams(t *testing.T) {
	p := profile.SetSelectedExams(profile.DefaultProfile(), []string{"NEET 2026"})
	live := profile.NewStore(p)
	s := New(theme.Load("Indigo", true), live, nil)

	s.Update(specialKey(tea.KeyEnter))

	got := live.Get().SelectedExams
	if len(got) != 1 || got[0] != "NEET 2026" {
		t.Errorf("SelectedExams = %v, want the preselected NEET 2026", got)
	}
}
