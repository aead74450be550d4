package profile

import "time"

// SubjectCatalog is the closed set of subjects, in display order.
// The subjects map of every Profile holds exactly these keys; exam
// selection filters visibility, never the stored data.
var SubjectCatalog = []string{
	"Physics",
	"Physical Chemistry",
	"Organic Chemistry",
	"Inorganic Chemistry",
	"Maths",
	"Biology",
}

// Subject display categories for the time-mix breakdown. The three
// chemistry branches roll up into one.
var MixCategories = []string{"Physics", "Chemistry", "Maths", "Biology"}

// Exam is one entry of the fixed exam catalog.
type Exam struct {
	Name     string
	Date     time.Time
	Subjects []string
}

var jeeSubjects = []string{"Physics", "Physical Chemistry", "Organic Chemistry", "Inorganic Chemistry", "Maths"}
var neetSubjects = []string{"Physics", "Physical Chemistry", "Organic Chemistry", "Inorganic Chemistry", "Biology"}

// ExamCatalog lists the supported exams with their dates.
var ExamCatalog = []Exam{
	{Name: "JEE Main 2026", Date: time.Date(2026, time.January, 22, 0, 0, 0, 0, time.Local), Subjects: jeeSubjects},
	{Name: "MHT CET 2026", Date: time.Date(2026, time.April, 10, 0, 0, 0, 0, time.Local), Subjects: jeeSubjects},
	{Name: "WBJEE 2026", Date: time.Date(2026, time.April, 26, 0, 0, 0, 0, time.Local), Subjects: jeeSubjects},
	{Name: "NEET 2026", Date: time.Date(2026, time.May, 3, 0, 0, 0, 0, time.Local), Subjects: neetSubjects},
	{Name: "JEE Advanced 2026", Date: time.Date(2026, time.May, 17, 0, 0, 0, 0, time.Local), Subjects: jeeSubjects},
	{Name: "BITSAT 2026", Date: time.Date(2026, time.June, 21, 0, 0, 0, 0, time.Local), Subjects: jeeSubjects},
}

// ThemeNames are the six selectable palettes.
var ThemeNames = []string{"Indigo", "Ocean", "Forest", "Sunset", "Rose", "Graphite"}

// ExamByName looks up an exam in the catalog.
func ExamByName(name string) (Exam, bool) {
	for _, e := range ExamCatalog {
		if e.Name == name {
			return e, true
		}
	}
	return Exam{}, false
}

// KnownExam reports whether name is in the catalog.
func KnownExam(name string) bool {
	_, ok := ExamByName(name)
	return ok
}

// UserSubjects returns the subjects visible for the given exam
// selection, in catalog order. An empty selection shows everything.
func UserSubjects(selectedExams []string) []string {
	if len(selectedExams) == 0 {
		return append([]string(nil), SubjectCatalog...)
	}

	visible := make(map[string]bool)
	for _, name := range selectedExams {
		exam, ok := ExamByName(name)
		if !ok {
			continue
		}
		for _, s := range exam.Subjects {
			visible[s] = true
		}
	}
	if len(visible) == 0 {
		return append([]string(nil), SubjectCatalog...)
	}

	var out []string
	for _, s := range SubjectCatalog {
		if visible[s] {
			out = append(out, s)
		}
	}
	return out
}

// MixCategory maps a catalog subject to its display category.
func MixCategory(subject string) string {
	switch subject {
	case "Physical Chemistry", "Organic Chemistry", "Inorganic Chemistry":
		return "Chemistry"
	default:
		return subject
	}
}
