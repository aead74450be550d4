// Package syllabus renders subject → chapter → lecture tracking,
// including misc lecture groups and DIBY problem counts for Maths.
package syllabus

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

type level int

const (
	levelSubjects level = iota
	levelChapters
	levelLectures
)

type formKind int

const (
	formNone formKind = iota
	formChapterName
	formChapterCount
	formMiscName
	formMiscCount
)

// lectureRow addresses one toggleable row at the lecture level: a
// numbered lecture when groupID is zero, otherwise a misc checkbox.
type lectureRow struct {
	label   string
	checked bool
	index   int
	groupID int64
}

// SyllabusScreen drills from subjects into chapters into lectures.
type SyllabusScreen struct {
	live *profile.Store
	th   theme.Theme

	level    level
	subjects []string
	subject  string
	chapter  int64
	cursor   int

	form     formKind
	input    components.TextInput
	formName string
	notice   string
}

var _ screen.Screen = (*SyllabusScreen)(nil)

// New creates the syllabus screen scoped to the user's subjects.
func New(th theme.Theme, live *profile.Store) *SyllabusScreen {
	return &SyllabusScreen{
		live:     live,
		th:       th,
		subjects: profile.UserSubjects(live.Get().SelectedExams),
	}
}

func (s *SyllabusScreen) Init() tea.Cmd {
	return nil
}

func (s *SyllabusScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.form != formNone {
		return s.updateForm(msg)
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
		if s.cursor < s.rowCount()-1 {
			s.cursor++
		}
	case "enter", "l", "right":
		s.descend()
	case "h", "left", "backspace":
		s.ascend()
	case "a":
		if s.level == levelChapters {
			s.form = formChapterName
			s.input = components.NewTextInput(s.th, "Chapter name", false, 60)
			return s, s.input.Init()
		}
	case "m":
		if s.level == levelLectures {
			s.form = formMiscName
			s.input = components.NewTextInput(s.th, "Group name (e.g. Revision)", false, 40)
			return s, s.input.Init()
		}
	case "d":
		s.deleteCurrent()
	case " ", "space", "x":
		s.toggleCurrent()
	case "+":
		s.adjustDIBY(1, 0)
	case "=":
		s.adjustDIBY(0, 1)
	}

	return s, nil
}

func (s *SyllabusScreen) updateForm(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.form = formNone
			return s, nil
		case "enter":
			return s, s.submitForm()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SyllabusScreen) submitForm() tea.Cmd {
	switch s.form {
	case formChapterName, formMiscName:
		val := strings.TrimSpace(s.input.Value())
		if val == "" {
			return nil
		}
		s.formName = val
		if s.form == formChapterName {
			s.form = formChapterCount
		} else {
			s.form = formMiscCount
		}
		s.input = components.NewTextInput(s.th, "Number of lectures", true, 3)
		return s.input.Init()

	case formChapterCount:
		count, err := s.input.NumericValue()
		if err != nil || count < 0 {
			s.notice = "Lecture count must be a number."
			return nil
		}
		name := s.formName
		s.live.Set(func(p profile.Profile) profile.Profile {
			return profile.AddChapter(p, s.subject, name, count, "", time.Now())
		})
		s.form = formNone
		s.notice = ""

	case formMiscCount:
		count, err := s.input.NumericValue()
		if err != nil || count <= 0 {
			s.notice = "Lecture count must be a positive number."
			return nil
		}
		name := s.formName
		chID := s.chapter
		s.live.Set(func(p profile.Profile) profile.Profile {
			return profile.AddMiscGroup(p, s.subject, chID, name, count, time.Now())
		})
		s.form = formNone
		s.notice = ""
	}
	return nil
}

func (s *SyllabusScreen) currentChapter(p profile.Profile) (profile.Chapter, bool) {
	for _, ch := range p.Subjects[s.subject].Chapters {
		if ch.ID == s.chapter {
			return ch, true
		}
	}
	return profile.Chapter{}, false
}

// lectureRows flattens numbered lectures and misc group checkboxes
// into one navigable list.
func (s *SyllabusScreen) lectureRows(ch profile.Chapter) []lectureRow {
	rows := make([]lectureRow, 0, ch.TotalLectures)
	for i := 0; i < ch.TotalLectures; i++ {
		checked := i < len(ch.Lectures) && ch.Lectures[i]
		rows = append(rows, lectureRow{
			label:   fmt.Sprintf("Lecture %d", i+1),
			checked: checked,
			index:   i,
		})
	}
	for _, g := range ch.MiscLectures {
		for i := 0; i < g.Total; i++ {
			checked := i < len(g.Checked) && g.Checked[i]
			rows = append(rows, lectureRow{
				label:   fmt.Sprintf("%s %d", g.Name, i+1),
				checked: checked,
				index:   i,
				groupID: g.ID,
			})
		}
	}
	return rows
}

func (s *SyllabusScreen) rowCount() int {
	p := s.live.Get()
	switch s.level {
	case levelSubjects:
		return len(s.subjects)
	case levelChapters:
		return len(p.Subjects[s.subject].Chapters)
	case levelLectures:
		ch, ok := s.currentChapter(p)
		if !ok {
			return 0
		}
		return len(s.lectureRows(ch))
	}
	return 0
}

func (s *SyllabusScreen) descend() {
	p := s.live.Get()
	switch s.level {
	case levelSubjects:
		if s.cursor < len(s.subjects) {
			s.subject = s.subjects[s.cursor]
			s.level = levelChapters
			s.cursor = 0
		}
	case levelChapters:
		chapters := p.Subjects[s.subject].Chapters
		if s.cursor < len(chapters) {
			s.chapter = chapters[s.cursor].ID
			s.level = levelLectures
			s.cursor = 0
		}
	}
}

func (s *SyllabusScreen) ascend() {
	switch s.level {
	case levelChapters:
		s.level = levelSubjects
		s.cursor = 0
	case levelLectures:
		s.level = levelChapters
		s.cursor = 0
	}
}

func (s *SyllabusScreen) toggleCurrent() {
	if s.level != levelLectures {
		return
	}
	p := s.live.Get()
	ch, ok := s.currentChapter(p)
	if !ok {
		return
	}
	rows := s.lectureRows(ch)
	if s.cursor >= len(rows) {
		return
	}

	row := rows[s.cursor]
	if row.groupID == 0 {
		s.live.Set(func(p profile.Profile) profile.Profile {
			return profile.ToggleLecture(p, s.subject, s.chapter, row.index)
		})
		return
	}
	s.live.Set(func(p profile.Profile) profile.Profile {
		return profile.ToggleMiscLecture(p, s.subject, s.chapter, row.groupID, row.index)
	})
}

func (s *SyllabusScreen) deleteCurrent() {
	if s.level != levelChapters {
		return
	}
	p := s.live.Get()
	chapters := p.Subjects[s.subject].Chapters
	if s.cursor >= len(chapters) {
		return
	}
	id := chapters[s.cursor].ID
	s.live.Set(func(p profile.Profile) profile.Profile {
		return profile.DeleteChapter(p, s.subject, id)
	})
	if s.cursor > 0 {
		s.cursor--
	}
}

// adjustDIBY bumps the solved/total counts on the current Maths chapter.
func (s *SyllabusScreen) adjustDIBY(solved, total int) {
	if s.level != levelLectures || s.subject != "Maths" {
		return
	}
	p := s.live.Get()
	ch, ok := s.currentChapter(p)
	if !ok {
		return
	}
	s.live.Set(func(p profile.Profile) profile.Profile {
		return profile.SetDIBY(p, s.subject, s.chapter, ch.DIBY.Solved+solved, ch.DIBY.Total+total)
	})
}

func (s *SyllabusScreen) View(width, height int) string {
	p := s.live.Get()
	var b strings.Builder

	switch s.level {
	case levelSubjects:
		b.WriteString(s.th.Title.Render("Syllabus") + "\n\n")
		for i, name := range s.subjects {
			sub := p.Subjects[name]
			done, total := 0, 0
			for _, ch := range sub.Chapters {
				done += ch.CompletedCount()
				total += ch.TotalLectures
			}
			pct := 0.0
			if total > 0 {
				pct = float64(done) / float64(total)
			}
			bar := components.NewProgressBar(s.th, fmt.Sprintf("%-22s", name), pct, true, width-20)
			if i == s.cursor {
				b.WriteString(s.th.Selected.Render("▸ ") + bar.View() + "\n")
			} else {
				b.WriteString("  " + bar.View() + "\n")
			}
		}

	case levelChapters:
		b.WriteString(s.th.Title.Render(s.subject) + "\n\n")
		chapters := p.Subjects[s.subject].Chapters
		if len(chapters) == 0 && s.form == formNone {
			b.WriteString(s.th.Hint.Render("No chapters yet. Press 'a' to add one.") + "\n")
		}
		for i, ch := range chapters {
			line := fmt.Sprintf("%-36s %3d%%  (%d/%d)", ch.Name, ch.Progress(), ch.CompletedCount(), ch.TotalLectures)
			if i == s.cursor {
				b.WriteString(s.th.Selected.Render("▸ "+line) + "\n")
			} else {
				b.WriteString(s.th.Unselected.Render("  "+line) + "\n")
			}
		}

	case levelLectures:
		ch, ok := s.currentChapter(p)
		if !ok {
			break
		}
		b.WriteString(s.th.Title.Render(ch.Name) + "\n\n")
		for i, row := range s.lectureRows(ch) {
			mark := "[ ]"
			if row.checked {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s", mark, row.label)
			if i == s.cursor {
				b.WriteString(s.th.Selected.Render("▸ "+line) + "\n")
			} else {
				b.WriteString(s.th.Unselected.Render("  "+line) + "\n")
			}
		}
		if s.subject == "Maths" {
			b.WriteString("\n" + s.th.Hint.Render(
				fmt.Sprintf("DIBY solved %d / %d   (+ solved, = total)", ch.DIBY.Solved, ch.DIBY.Total)) + "\n")
		}
	}

	if s.form != formNone {
		b.WriteString("\n" + s.input.View() + "\n")
	}
	if s.notice != "" {
		b.WriteString("\n" + s.th.Hint.Render(s.notice))
	}

	return b.String()
}

func (s *SyllabusScreen) Title() string {
	return "Syllabus"
}

// KeyHints implements screen.KeyHintProvider.
func (s *SyllabusScreen) KeyHints() []layout.KeyHint {
	switch s.level {
	case levelChapters:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Open"},
			{Key: "A", Description: "Add chapter"},
			{Key: "D", Description: "Delete"},
			{Key: "←", Description: "Back"},
			{Key: "Esc", Description: "Home"},
		}
	case levelLectures:
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "M", Description: "Add group"},
			{Key: "←", Description: "Back"},
			{Key: "Esc", Description: "Home"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "Esc", Description: "Home"},
		}
	}
}
