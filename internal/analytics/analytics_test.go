package analytics

import (
	"testing"
	"time"

	"github.com/ritankar/lakshya/internal/profile"
)

func day(offset int, now time.Time) string {
	return profile.DateKey(now.AddDate(0, 0, offset))
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, time.February, 10, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		history map[string]float64
		want    int
	}{
		{"empty", map[string]float64{}, 0},
		{"today only", map[string]float64{day(0, now): 30}, 1},
		{"today and yesterday", map[string]float64{day(0, now): 30, day(-1, now): 45}, 2},
		{"zero today keeps streak", map[string]float64{day(-1, now): 45, day(-2, now): 60}, 2},
		{"gap breaks streak", map[string]float64{day(0, now): 30, day(-2, now): 60}, 1},
		{"today and yesterday both zero", map[string]float64{day(-3, now): 60}, 0},
		{"zero value does not count", map[string]float64{day(0, now): 0, day(-1, now): 20}, 1},
		{"long run", map[string]float64{
			day(0, now): 1, day(-1, now): 1, day(-2, now): 1,
			day(-3, now): 1, day(-4, now): 1,
		}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.history, now); got != tt.want {
				t.Errorf("Streak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountdowns(t *testing.T) {
	// Between JEE Main (Jan 22) and the rest of the 2026 season.
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.Local)

	got := Countdowns([]string{"JEE Main 2026", "NEET 2026", "JEE Advanced 2026"}, now)

	for _, c := range got {
		if c.Exam == "JEE Main 2026" {
			t.Error("past exam must be excluded from countdowns")
		}
		if c.DaysLeft < 0 {
			t.Errorf("%s DaysLeft = %d, want >= 0", c.Exam, c.DaysLeft)
		}
	}
	if len(got) != 2 {
		t.Fatalf("countdowns = %d, want 2", len(got))
	}
	if got[0].Exam != "NEET 2026" || got[1].Exam != "JEE Advanced 2026" {
		t.Errorf("order = [%s %s], want ascending by days", got[0].Exam, got[1].Exam)
	}
	if got[0].DaysLeft != 91 {
		t.Errorf("NEET DaysLeft = %d, want 91", got[0].DaysLeft)
	}
}

func TestCountdowns_ExamTodayIncluded(t *testing.T) {
	now := time.Date(2026, time.May, 3, 23, 0, 0, 0, time.Local)
	got := Countdowns([]string{"NEET 2026"}, now)
	if len(got) != 1 {
		t.Fatalf("countdowns = %d, want 1", len(got))
	}
	if got[0].DaysLeft != 0 {
		t.Errorf("DaysLeft = %d, want 0 on exam day", got[0].DaysLeft)
	}
}

func TestCountdowns_UnknownExamSkipped(t *testing.T) {
	now := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.Local)
	if got := Countdowns([]string{"UPSC 2026"}, now); len(got) != 0 {
		t.Errorf("countdowns = %v, want none for unknown exam", got)
	}
}

func TestWeekBuckets(t *testing.T) {
	// 2026-02-10 is a Tuesday; the week starts Sunday 2026-02-08.
	now := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)
	history := map[string]float64{
		"2026-02-08": 120,
		"2026-02-10": 45,
		"2026-02-07": 999, // previous week, must not leak in
	}

	got := WeekBuckets(history, now)
	if len(got) != 7 {
		t.Fatalf("buckets = %d, want 7", len(got))
	}
	if got[0].Label != "Sun" || got[0].Minutes != 120 {
		t.Errorf("Sunday = %+v, want {Sun 120}", got[0])
	}
	if got[2].Minutes != 45 {
		t.Errorf("Tuesday minutes = %v, want 45", got[2].Minutes)
	}
	for i, b := range got {
		if i != 0 && i != 2 && b.Minutes != 0 {
			t.Errorf("bucket %d = %v, want zero-filled", i, b.Minutes)
		}
	}
}

func TestMonthBuckets_ZeroFilled(t *testing.T) {
	now := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)
	got := MonthBuckets(map[string]float64{"2026-02-03": 60}, now)

	if len(got) != 28 {
		t.Fatalf("February 2026 buckets = %d, want 28", len(got))
	}
	if got[2].Minutes != 60 {
		t.Errorf("day 3 = %v, want 60", got[2].Minutes)
	}
	if got[27].Minutes != 0 {
		t.Errorf("day 28 = %v, want 0", got[27].Minutes)
	}
}

func TestYearBuckets_MonthSums(t *testing.T) {
	now := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)
	history := map[string]float64{
		"2026-01-05": 30,
		"2026-01-20": 45,
		"2026-06-01": 10,
		"2025-12-31": 500, // previous year, excluded
	}

	got := YearBuckets(history, now)
	if len(got) != 12 {
		t.Fatalf("buckets = %d, want 12", len(got))
	}
	if got[0].Minutes != 75 {
		t.Errorf("January = %v, want 75", got[0].Minutes)
	}
	if got[5].Minutes != 10 {
		t.Errorf("June = %v, want 10", got[5].Minutes)
	}
	if got[11].Minutes != 0 {
		t.Errorf("December = %v, want 0", got[11].Minutes)
	}
}

func TestSubjectMix_CombinesChemistry(t *testing.T) {
	subjects := map[string]profile.Subject{
		"Physics":             {TimeSpent: 100},
		"Physical Chemistry":  {TimeSpent: 10},
		"Organic Chemistry":   {TimeSpent: 20},
		"Inorganic Chemistry": {TimeSpent: 30},
		"Maths":               {TimeSpent: 40},
		"Biology":             {TimeSpent: 0},
	}

	got := SubjectMix(subjects)
	want := map[string]int{"Physics": 100, "Chemistry": 60, "Maths": 40, "Biology": 0}
	if len(got) != 4 {
		t.Fatalf("mix slices = %d, want 4", len(got))
	}
	for _, slice := range got {
		if slice.Seconds != want[slice.Category] {
			t.Errorf("%s = %d, want %d", slice.Category, slice.Seconds, want[slice.Category])
		}
	}
}

func TestGoalProgress(t *testing.T) {
	now := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)
	history := map[string]float64{profile.DateKey(now): 180}

	if got := GoalProgress(history, 6, now); got != 0.5 {
		t.Errorf("GoalProgress = %v, want 0.5", got)
	}
	if got := GoalProgress(history, 1, now); got != 1 {
		t.Errorf("GoalProgress = %v, want clamped to 1", got)
	}
	if got := GoalProgress(history, 0, now); got != 0 {
		t.Errorf("GoalProgress = %v, want 0 for zero goal", got)
	}
}
