// Package analytics computes derived views over the persisted history
// map. Everything here is pure: state in, values out, with the clock
// passed explicitly so callers and tests control "now".
package analytics

import (
	"time"

	"github.com/ritankar/lakshya/internal/profile"
)

// Streak counts consecutive days with positive study time, walking
// backward from now's calendar date. Today extends the streak only if
// it already has positive minutes; a zero-so-far today does not break a
// streak that is alive through yesterday.
func Streak(history map[string]float64, now time.Time) int {
	day := now
	if history[profile.DateKey(day)] <= 0 {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for history[profile.DateKey(day)] > 0 {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// TodayMinutes returns the minutes studied on now's calendar date.
func TodayMinutes(history map[string]float64, now time.Time) float64 {
	return history[profile.DateKey(now)]
}

// GoalProgress returns today's progress against the daily goal (hours)
// as a 0..1 fraction, clamped at 1.
func GoalProgress(history map[string]float64, goalHours float64, now time.Time) float64 {
	if goalHours <= 0 {
		return 0
	}
	frac := TodayMinutes(history, now) / (goalHours * 60)
	if frac > 1 {
		return 1
	}
	return frac
}
