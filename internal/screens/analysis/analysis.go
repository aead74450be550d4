// Package analysis renders study-time charts derived from the day
// history: week, month and year buckets plus the subject mix.
package analysis

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ritankar/lakshya/internal/analytics"
	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/screen"
	"github.com/ritankar/lakshya/internal/ui/components"
	"github.com/ritankar/lakshya/internal/ui/layout"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

type span int

const (
	spanWeek span = iota
	spanMonth
	spanYear
)

func (s span) String() string {
	switch s {
	case spanMonth:
		return "Month"
	case spanYear:
		return "Year"
	default:
		return "Week"
	}
}

// AnalysisScreen shows derived study-time analytics. Everything is
// recomputed from the live profile on each render.
type AnalysisScreen struct {
	live *profile.Store
	th   theme.Theme
	span span
}

var _ screen.Screen = (*AnalysisScreen)(nil)

// New creates the analysis screen.
func New(th theme.Theme, live *profile.Store) *AnalysisScreen {
	return &AnalysisScreen{live: live, th: th}
}

func (a *AnalysisScreen) Init() tea.Cmd {
	return nil
}

func (a *AnalysisScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "tab", "right", "l":
		a.span = (a.span + 1) % 3
	case "shift+tab", "left", "h":
		a.span = (a.span + 2) % 3
	case "w":
		a.span = spanWeek
	case "m":
		a.span = spanMonth
	case "y":
		a.span = spanYear
	}

	return a, nil
}

func (a *AnalysisScreen) View(width, height int) string {
	p := a.live.Get()
	now := time.Now()

	var buckets []analytics.Bucket
	switch a.span {
	case spanMonth:
		buckets = analytics.MonthBuckets(p.History, now)
	case spanYear:
		buckets = analytics.YearBuckets(p.History, now)
	default:
		buckets = analytics.WeekBuckets(p.History, now)
	}

	var b strings.Builder
	b.WriteString(a.th.Title.Render("Study Analysis") + "\n")

	// Span tabs.
	var tabs []string
	for _, sp := range []span{spanWeek, spanMonth, spanYear} {
		if sp == a.span {
			tabs = append(tabs, a.th.Selected.Render("["+sp.String()+"]"))
		} else {
			tabs = append(tabs, a.th.Unselected.Render(" "+sp.String()+" "))
		}
	}
	b.WriteString(strings.Join(tabs, "  ") + "\n\n")

	chartWidth := width - 8
	if chartWidth > 72 {
		chartWidth = 72
	}
	chart := components.NewBarChart(a.th, buckets, chartWidth)
	b.WriteString(chart.View())

	// Subject mix.
	b.WriteString("\n" + a.th.Body.Bold(true).Render("Subject Mix") + "\n\n")
	mix := analytics.SubjectMix(p.Subjects)
	total := 0
	for _, m := range mix {
		total += m.Seconds
	}
	for _, m := range mix {
		pct := 0.0
		if total > 0 {
			pct = float64(m.Seconds) / float64(total)
		}
		bar := components.NewProgressBar(a.th, fmt.Sprintf("%-10s", m.Category), pct, true, chartWidth)
		b.WriteString(bar.View() + "\n")
	}

	if total == 0 {
		b.WriteString("\n" + a.th.Hint.Render("No study time recorded yet. Start a timer session!"))
	}

	return b.String()
}

func (a *AnalysisScreen) Title() string {
	return "Analysis"
}

// KeyHints implements screen.KeyHintProvider.
func (a *AnalysisScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch range"},
		{Key: "W/M/Y", Description: "Week/Month/Year"},
		{Key: "Esc", Description: "Home"},
	}
}
