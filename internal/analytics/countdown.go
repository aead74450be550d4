package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/ritankar/lakshya/internal/profile"
)

// Countdown is one upcoming exam with whole days remaining.
type Countdown struct {
	Exam     string
	Date     time.Time
	DaysLeft int
}

// Countdowns returns the selected exams with known catalog dates that
// have not passed, ascending by days remaining. An exam dated today
// yields DaysLeft 0 and is included.
func Countdowns(selectedExams []string, now time.Time) []Countdown {
	today := midnight(now)

	var out []Countdown
	for _, name := range selectedExams {
		exam, ok := profile.ExamByName(name)
		if !ok {
			continue
		}
		days := int(math.Round(midnight(exam.Date).Sub(today).Hours() / 24))
		if days < 0 {
			continue
		}
		out = append(out, Countdown{Exam: exam.Name, Date: exam.Date, DaysLeft: days})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DaysLeft < out[j].DaysLeft })
	return out
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
