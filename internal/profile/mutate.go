package profile

import (
	"math"
	"time"
)

// newID derives a creation-time unique id the way the stored documents
// always have: milliseconds since epoch.
func newID(now time.Time) int64 {
	return now.UnixMilli()
}

// AddTask prepends a new task so the newest renders first.
func AddTask(p Profile, text, subject string, now time.Time) Profile {
	out := p.Clone()
	out.Tasks = append([]Task{{
		ID:      newID(now),
		Text:    text,
		Subject: subject,
	}}, out.Tasks...)
	return out
}

// ToggleTask flips the completion flag of the task with the given id.
func ToggleTask(p Profile, id int64) Profile {
	out := p.Clone()
	for i := range out.Tasks {
		if out.Tasks[i].ID == id {
			out.Tasks[i].Completed = !out.Tasks[i].Completed
			break
		}
	}
	return out
}

// DeleteTask removes the task with the given id.
func DeleteTask(p Profile, id int64) Profile {
	out := p.Clone()
	for i, t := range out.Tasks {
		if t.ID == id {
			out.Tasks = append(out.Tasks[:i], out.Tasks[i+1:]...)
			break
		}
	}
	return out
}

// AddChapter appends a chapter with totalLectures unchecked lectures.
func AddChapter(p Profile, subject, name string, totalLectures int, grade string, now time.Time) Profile {
	out := p.Clone()
	sub, ok := out.Subjects[subject]
	if !ok {
		return out
	}
	sub.Chapters = append(sub.Chapters, Chapter{
		ID:            newID(now),
		Name:          name,
		TotalLectures: totalLectures,
		Lectures:      make([]bool, totalLectures),
		Grade:         grade,
		MiscLectures:  []MiscGroup{},
	})
	out.Subjects[subject] = sub
	return out
}

// DeleteChapter removes a chapter by id.
func DeleteChapter(p Profile, subject string, chapterID int64) Profile {
	out := p.Clone()
	sub, ok := out.Subjects[subject]
	if !ok {
		return out
	}
	for i, ch := range sub.Chapters {
		if ch.ID == chapterID {
			sub.Chapters = append(sub.Chapters[:i], sub.Chapters[i+1:]...)
			break
		}
	}
	out.Subjects[subject] = sub
	return out
}

// ToggleLecture flips one lecture checkbox of a chapter. Out-of-range
// indexes are ignored.
func ToggleLecture(p Profile, subject string, chapterID int64, index int) Profile {
	out := p.Clone()
	sub, ok := out.Subjects[subject]
	if !ok {
		return out
	}
	for i := range sub.Chapters {
		if sub.Chapters[i].ID != chapterID {
			continue
		}
		if index >= 0 && index < len(sub.Chapters[i].Lectures) {
			sub.Chapters[i].Lectures[index] = !sub.Chapters[i].Lectures[index]
		}
		break
	}
	out.Subjects[subject] = sub
	return out
}

// AddMiscGroup attaches a named group of total extra lectures to a chapter.
func AddMiscGroup(p Profile, subject string, chapterID int64, name string, total int, now time.Time) Profile {
	out := p.Clone()
	sub, ok := out.Subjects[subject]
	if !ok {
		return out
	}
	for i := range sub.Chapters {
		if sub.Chapters[i].ID != chapterID {
			continue
		}
		sub.Chapters[i].MiscLectures = append(sub.Chapters[i].MiscLectures, MiscGroup{
			ID:      newID(now),
			Name:    name,
			Total:   total,
			Checked: make([]bool, total),
		})
		break
	}
	out.Subjects[subject] = sub
	return out
}

// ToggleMiscLecture flips one checkbox inside a misc lecture group.
func ToggleMiscLecture(p Profile, subject string, chapterID, groupID int64, index int) Profile {
	out := p.Clone()
	sub, ok := out.Subjects[subject]
	if !ok {
		return out
	}
	for i := range sub.Chapters {
		if sub.Chapters[i].ID != chapterID {
			continue
		}
		for j := range sub.Chapters[i].MiscLectures {
			g := &sub.Chapters[i].MiscLectures[j]
			if g.ID != groupID {
				continue
			}
			if index >= 0 && index < len(g.Checked) {
				g.Checked[index] = !g.Checked[index]
			}
			break
		}
		break
	}
	out.Subjects[subject] = sub
	return out
}

// SetDIBY updates the questions solved/total counter of a chapter.
func SetDIBY(p Profile, subject string, chapterID int64, solved, total int) Profile {
	out := p.Clone()
	sub, ok := out.Subjects[subject]
	if !ok {
		return out
	}
	for i := range sub.Chapters {
		if sub.Chapters[i].ID == chapterID {
			sub.Chapters[i].DIBY = DIBY{Solved: solved, Total: total}
			break
		}
	}
	out.Subjects[subject] = sub
	return out
}

// AddMockTest records a mock-test attempt, prepended so the newest
// renders first. Total is fixed here as p+c+m.
func AddMockTest(p Profile, typ, name, date string, phy, chem, maths, maxMarks int, now time.Time) Profile {
	out := p.Clone()
	out.MockTests = append([]MockTest{{
		ID:       newID(now),
		Type:     typ,
		Name:     name,
		Date:     date,
		P:        phy,
		C:        chem,
		M:        maths,
		Total:    phy + chem + maths,
		MaxMarks: maxMarks,
	}}, out.MockTests...)
	return out
}

// DeleteMockTest removes the mock test with the given id.
func DeleteMockTest(p Profile, id int64) Profile {
	out := p.Clone()
	for i, t := range out.MockTests {
		if t.ID == id {
			out.MockTests = append(out.MockTests[:i], out.MockTests[i+1:]...)
			break
		}
	}
	return out
}

// ToggleMockReminder flips the reminder flag of a mock test.
func ToggleMockReminder(p Profile, id int64) Profile {
	out := p.Clone()
	for i := range out.MockTests {
		if out.MockTests[i].ID == id {
			out.MockTests[i].Reminder = !out.MockTests[i].Reminder
			break
		}
	}
	return out
}

// AddKPP records a practice paper, newest first.
func AddKPP(p Profile, name, chapter string, myScore, totalScore float64, now time.Time) Profile {
	out := p.Clone()
	out.KPPList = append([]KPPRecord{{
		ID:         newID(now),
		Name:       name,
		Chapter:    chapter,
		MyScore:    myScore,
		TotalScore: totalScore,
	}}, out.KPPList...)
	return out
}

// DeleteKPP removes the practice paper with the given id.
func DeleteKPP(p Profile, id int64) Profile {
	out := p.Clone()
	for i, r := range out.KPPList {
		if r.ID == id {
			out.KPPList = append(out.KPPList[:i], out.KPPList[i+1:]...)
			break
		}
	}
	return out
}

// MarkKPP sets the attempted/corrected flags of a practice paper.
func MarkKPP(p Profile, id int64, attempted, corrected bool) Profile {
	out := p.Clone()
	for i := range out.KPPList {
		if out.KPPList[i].ID == id {
			out.KPPList[i].Attempted = attempted
			out.KPPList[i].Corrected = corrected
			break
		}
	}
	return out
}

// SetSelectedExams replaces the exam selection, dropping names not in
// the catalog.
func SetSelectedExams(p Profile, exams []string) Profile {
	out := p.Clone()
	out.SelectedExams = out.SelectedExams[:0]
	for _, name := range exams {
		if KnownExam(name) {
			out.SelectedExams = append(out.SelectedExams, name)
		}
	}
	return out
}

// SetDailyGoal updates the target study hours per day. Non-positive
// values are ignored.
func SetDailyGoal(p Profile, hours float64) Profile {
	if hours <= 0 {
		return p
	}
	out := p.Clone()
	out.DailyGoal = hours
	return out
}

// SetSettings replaces the presentation settings.
func SetSettings(p Profile, s Settings) Profile {
	out := p.Clone()
	out.Settings = s
	return out
}

// CommitStudySession folds an elapsed timer session into the document:
// history[day] gains the elapsed minutes (2-decimal rounded, additive),
// the subject's timeSpent gains the raw seconds, and xp gains the whole
// minute count.
func CommitStudySession(p Profile, subject string, seconds int, day time.Time) Profile {
	out := p.Clone()

	minutes := SessionMinutes(seconds)
	key := DateKey(day)
	out.History[key] += minutes
	out.XP += int(math.Floor(minutes))

	if sub, ok := out.Subjects[subject]; ok {
		sub.TimeSpent += seconds
		out.Subjects[subject] = sub
	}

	return out
}

// SessionMinutes converts elapsed seconds to minutes rounded to two
// decimal places, matching the stored history precision.
func SessionMinutes(seconds int) float64 {
	return math.Round(float64(seconds)/60*100) / 100
}
