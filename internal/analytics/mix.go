package analytics

import "github.com/ritankar/lakshya/internal/profile"

// MixSlice is one display category of the subject time mix.
type MixSlice struct {
	Category string
	Seconds  int
}

// SubjectMix sums timeSpent into the four display categories: Physics,
// Chemistry (all three branches combined), Maths, Biology.
func SubjectMix(subjects map[string]profile.Subject) []MixSlice {
	totals := make(map[string]int, len(profile.MixCategories))
	for name, sub := range subjects {
		totals[profile.MixCategory(name)] += sub.TimeSpent
	}

	out := make([]MixSlice, 0, len(profile.MixCategories))
	for _, cat := range profile.MixCategories {
		out = append(out, MixSlice{Category: cat, Seconds: totals[cat]})
	}
	return out
}
