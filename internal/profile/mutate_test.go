package profile

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, time.February, 10, 9, 30, 0, 0, time.UTC)

func TestDefaultProfile_SubjectCatalog(t *testing.T) {
	p := DefaultProfile()
	if len(p.Subjects) != len(SubjectCatalog) {
		t.Fatalf("subjects = %d, want %d", len(p.Subjects), len(SubjectCatalog))
	}
	for _, name := range SubjectCatalog {
		if _, ok := p.Subjects[name]; !ok {
			t.Errorf("missing subject %q", name)
		}
	}
	if p.DailyGoal <= 0 {
		t.Errorf("DailyGoal = %v, want positive", p.DailyGoal)
	}
}

func TestAddChapter_InitializesLectures(t *testing.T) {
	p := AddChapter(DefaultProfile(), "Physics", "Kinematics", 5, "11", testNow)

	chapters := p.Subjects["Physics"].Chapters
	if len(chapters) != 1 {
		t.Fatalf("chapters = %d, want 1", len(chapters))
	}
	ch := chapters[0]
	if len(ch.Lectures) != 5 {
		t.Fatalf("lectures length = %d, want 5", len(ch.Lectures))
	}
	for i, done := range ch.Lectures {
		if done {
			t.Errorf("lecture %d initialized true", i)
		}
	}
	if ch.Progress() != 0 {
		t.Errorf("Progress = %d, want 0", ch.Progress())
	}
}

func TestToggleLecture_ProgressAndIdempotence(t *testing.T) {
	p := AddChapter(DefaultProfile(), "Physics", "Kinematics", 5, "11", testNow)
	id := p.Subjects["Physics"].Chapters[0].ID

	toggled := ToggleLecture(p, "Physics", id, 2)
	ch := toggled.Subjects["Physics"].Chapters[0]
	want := []bool{false, false, true, false, false}
	for i := range want {
		if ch.Lectures[i] != want[i] {
			t.Errorf("lectures[%d] = %v, want %v", i, ch.Lectures[i], want[i])
		}
	}
	if ch.CompletedCount() != 1 {
		t.Errorf("CompletedCount = %d, want 1", ch.CompletedCount())
	}
	if ch.Progress() != 20 {
		t.Errorf("Progress = %d, want 20", ch.Progress())
	}

	// Toggling twice restores the original sequence.
	back := ToggleLecture(toggled, "Physics", id, 2)
	for i, done := range back.Subjects["Physics"].Chapters[0].Lectures {
		if done != p.Subjects["Physics"].Chapters[0].Lectures[i] {
			t.Errorf("double toggle changed lectures[%d]", i)
		}
	}

	// Original value is untouched (copy-on-write).
	if p.Subjects["Physics"].Chapters[0].Lectures[2] {
		t.Error("ToggleLecture mutated its input")
	}
}

func TestChapterProgress_ZeroLectures(t *testing.T) {
	ch := Chapter{TotalLectures: 0, Lectures: []bool{}}
	if got := ch.Progress(); got != 0 {
		t.Errorf("Progress = %d, want 0 for zero-lecture chapter", got)
	}
}

func TestAddMockTest_TotalIsSum(t *testing.T) {
	p := AddMockTest(DefaultProfile(), "JEE Main 2026", "AITS-4", "2026-02-08", 60, 55, 58, 300, testNow)
	if len(p.MockTests) != 1 {
		t.Fatalf("mockTests = %d, want 1", len(p.MockTests))
	}
	mt := p.MockTests[0]
	if mt.Total != 173 {
		t.Errorf("Total = %d, want 173", mt.Total)
	}
	if mt.Total != mt.P+mt.C+mt.M {
		t.Errorf("Total = %d, want p+c+m = %d", mt.Total, mt.P+mt.C+mt.M)
	}
}

func TestAddMockTest_NewestFirst(t *testing.T) {
	p := AddMockTest(DefaultProfile(), "Custom", "first", "2026-02-01", 10, 10, 10, 90, testNow)
	p = AddMockTest(p, "Custom", "second", "2026-02-02", 20, 20, 20, 90, testNow.Add(time.Minute))
	if p.MockTests[0].Name != "second" {
		t.Errorf("MockTests[0].Name = %q, want %q", p.MockTests[0].Name, "second")
	}
}

func TestCommitStudySession_RoundTrip(t *testing.T) {
	p := CommitStudySession(DefaultProfile(), "Physics", 125, testNow)

	key := DateKey(testNow)
	if got := p.History[key]; got != 2.08 {
		t.Errorf("history[%s] = %v, want 2.08", key, got)
	}
	if got := p.Subjects["Physics"].TimeSpent; got != 125 {
		t.Errorf("timeSpent = %d, want 125", got)
	}
	if p.XP != 2 {
		t.Errorf("xp = %d, want 2", p.XP)
	}

	// A second commit on the same day is additive.
	p = CommitStudySession(p, "Physics", 125, testNow)
	if got := p.History[key]; got != 4.16 {
		t.Errorf("history[%s] after second commit = %v, want 4.16", key, got)
	}
	if got := p.Subjects["Physics"].TimeSpent; got != 250 {
		t.Errorf("timeSpent after second commit = %d, want 250", got)
	}
}

func TestAddTask_NewestFirstAndToggle(t *testing.T) {
	p := AddTask(DefaultProfile(), "Revise optics", "Physics", testNow)
	p = AddTask(p, "Mole concept sheet", "Physical Chemistry", testNow.Add(time.Second))

	if p.Tasks[0].Text != "Mole concept sheet" {
		t.Errorf("Tasks[0].Text = %q, want newest first", p.Tasks[0].Text)
	}

	id := p.Tasks[1].ID
	p = ToggleTask(p, id)
	if !p.Tasks[1].Completed {
		t.Error("ToggleTask did not complete the task")
	}
	if got := p.PendingTasks(); len(got) != 1 || got[0] != "Mole concept sheet" {
		t.Errorf("PendingTasks = %v, want [Mole concept sheet]", got)
	}

	p = DeleteTask(p, id)
	if len(p.Tasks) != 1 {
		t.Errorf("tasks after delete = %d, want 1", len(p.Tasks))
	}
}

func TestAddMiscGroupAndToggle(t *testing.T) {
	p := AddChapter(DefaultProfile(), "Maths", "Vectors", 3, "12", testNow)
	chID := p.Subjects["Maths"].Chapters[0].ID

	p = AddMiscGroup(p, "Maths", chID, "PYQ marathon", 4, testNow.Add(time.Second))
	groups := p.Subjects["Maths"].Chapters[0].MiscLectures
	if len(groups) != 1 {
		t.Fatalf("misc groups = %d, want 1", len(groups))
	}
	if len(groups[0].Checked) != 4 {
		t.Fatalf("checked length = %d, want total 4", len(groups[0].Checked))
	}

	p = ToggleMiscLecture(p, "Maths", chID, groups[0].ID, 3)
	if !p.Subjects["Maths"].Chapters[0].MiscLectures[0].Checked[3] {
		t.Error("ToggleMiscLecture did not check index 3")
	}
}

func TestSetDIBY(t *testing.T) {
	p := AddChapter(DefaultProfile(), "Maths", "Calculus", 10, "12", testNow)
	chID := p.Subjects["Maths"].Chapters[0].ID

	p = SetDIBY(p, "Maths", chID, 42, 60)
	got := p.Subjects["Maths"].Chapters[0].DIBY
	if got.Solved != 42 || got.Total != 60 {
		t.Errorf("DIBY = %+v, want {42 60}", got)
	}
}

func TestSetSelectedExams_DropsUnknown(t *testing.T) {
	p := SetSelectedExams(DefaultProfile(), []string{"NEET 2026", "CAT 2027"})
	if len(p.SelectedExams) != 1 || p.SelectedExams[0] != "NEET 2026" {
		t.Errorf("SelectedExams = %v, want [NEET 2026]", p.SelectedExams)
	}
}

func TestSetDailyGoal_RejectsNonPositive(t *testing.T) {
	p := DefaultProfile()
	if got := SetDailyGoal(p, 0).DailyGoal; got != p.DailyGoal {
		t.Errorf("DailyGoal = %v, want unchanged %v", got, p.DailyGoal)
	}
	if got := SetDailyGoal(p, 4.5).DailyGoal; got != 4.5 {
		t.Errorf("DailyGoal = %v, want 4.5", got)
	}
}

func TestAddKPP_AndMark(t *testing.T) {
	p := AddKPP(DefaultProfile(), "KPP-12", "Rotation", 38, 40, testNow)
	if len(p.KPPList) != 1 {
		t.Fatalf("kppList = %d, want 1", len(p.KPPList))
	}

	p = MarkKPP(p, p.KPPList[0].ID, true, true)
	if !p.KPPList[0].Attempted || !p.KPPList[0].Corrected {
		t.Errorf("MarkKPP = %+v, want attempted and corrected", p.KPPList[0])
	}
}
