package analytics

import (
	"time"

	"github.com/ritankar/lakshya/internal/profile"
)

// Bucket is one bar of a study-time chart.
type Bucket struct {
	Label   string
	Minutes float64
}

var weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekBuckets returns the current week (starting Sunday) as seven
// zero-filled day buckets.
func WeekBuckets(history map[string]float64, now time.Time) []Bucket {
	start := midnight(now).AddDate(0, 0, -int(now.Weekday()))

	out := make([]Bucket, 7)
	for i := range out {
		day := start.AddDate(0, 0, i)
		out[i] = Bucket{
			Label:   weekdayLabels[i],
			Minutes: history[profile.DateKey(day)],
		}
	}
	return out
}

// MonthBuckets returns the current month as one zero-filled bucket per
// day, labeled by day number.
func MonthBuckets(history map[string]float64, now time.Time) []Bucket {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	days := first.AddDate(0, 1, -1).Day()

	out := make([]Bucket, days)
	for i := range out {
		day := first.AddDate(0, 0, i)
		out[i] = Bucket{
			Label:   day.Format("2"),
			Minutes: history[profile.DateKey(day)],
		}
	}
	return out
}

// YearBuckets returns the current year as twelve month-sum buckets.
func YearBuckets(history map[string]float64, now time.Time) []Bucket {
	out := make([]Bucket, 12)
	for m := time.January; m <= time.December; m++ {
		out[m-1] = Bucket{Label: m.String()[:3]}
	}

	for key, minutes := range history {
		t, err := time.ParseInLocation("2006-01-02", key, now.Location())
		if err != nil || t.Year() != now.Year() {
			continue
		}
		out[t.Month()-1].Minutes += minutes
	}
	return out
}
