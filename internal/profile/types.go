package profile

import "time"

// Profile is the single per-user document holding all persisted
// application state. It is mutated exclusively through the copy-on-write
// helpers in this package and replaced wholesale in the document store.
type Profile struct {
	DailyGoal     float64            `json:"dailyGoal"`
	Tasks         []Task             `json:"tasks"`
	Subjects      map[string]Subject `json:"subjects"`
	MockTests     []MockTest         `json:"mockTests"`
	KPPList       []KPPRecord        `json:"kppList"`
	History       map[string]float64 `json:"history"`
	XP            int                `json:"xp"`
	Settings      Settings           `json:"settings"`
	BGImage       string             `json:"bgImage,omitempty"`
	SelectedExams []string           `json:"selectedExams"`
}

// Task is a single to-do item. Newest tasks sort first.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Subject   string `json:"subject"`
	Completed bool   `json:"completed"`
}

// Subject holds the syllabus chapters and the accumulated study time
// (in seconds) for one of the six catalog subjects.
type Subject struct {
	Chapters  []Chapter `json:"chapters"`
	TimeSpent int       `json:"timeSpent"`
}

// Chapter tracks lecture completion for one syllabus chapter.
// Lectures always has exactly TotalLectures entries.
type Chapter struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	TotalLectures int         `json:"totalLectures"`
	Lectures      []bool      `json:"lectures"`
	Grade         string      `json:"grade"`
	MiscLectures  []MiscGroup `json:"miscLectures"`
	DIBY          DIBY        `json:"diby"`
}

// MiscGroup is a named group of extra lectures attached to a chapter.
// Checked always has exactly Total entries.
type MiscGroup struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Total   int    `json:"total"`
	Checked []bool `json:"checked"`
}

// DIBY is the "do it by yourself" questions-solved counter. The field
// exists on every chapter but is only surfaced for Maths.
type DIBY struct {
	Solved int `json:"solved"`
	Total  int `json:"total"`
}

// MockTest records one mock-test attempt. Total is fixed at creation
// time as P+C+M and never re-derived.
type MockTest struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	P        int    `json:"p"`
	C        int    `json:"c"`
	M        int    `json:"m"`
	Total    int    `json:"total"`
	MaxMarks int    `json:"maxMarks"`
	Reminder bool   `json:"reminder"`
}

// KPPRecord is a practice-paper record (Physics-oriented by convention).
type KPPRecord struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Chapter    string  `json:"chapter"`
	Attempted  bool    `json:"attempted"`
	Corrected  bool    `json:"corrected"`
	MyScore    float64 `json:"myScore"`
	TotalScore float64 `json:"totalScore"`
}

// Settings holds presentation preferences.
type Settings struct {
	Theme    string `json:"theme"`
	Mode     string `json:"mode"`
	Username string `json:"username"`
}

// Display modes.
const (
	ModeDark  = "Dark"
	ModeLight = "Light"
)

// DateKey formats t as the history-map key for its calendar date.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// CompletedCount returns the number of completed lectures in c.
func (c Chapter) CompletedCount() int {
	n := 0
	for _, done := range c.Lectures {
		if done {
			n++
		}
	}
	return n
}

// Progress returns the chapter completion percentage, rounded to the
// nearest integer. A chapter with no lectures reports 0.
func (c Chapter) Progress() int {
	if c.TotalLectures == 0 {
		return 0
	}
	return int(float64(c.CompletedCount())/float64(c.TotalLectures)*100 + 0.5)
}

// PendingTasks returns the titles of all incomplete tasks, in display order.
func (p Profile) PendingTasks() []string {
	var titles []string
	for _, t := range p.Tasks {
		if !t.Completed {
			titles = append(titles, t.Text)
		}
	}
	return titles
}
