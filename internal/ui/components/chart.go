package components

import (
	"fmt"
	"strings"

	"github.com/ritankar/lakshya/internal/analytics"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

// BarChart renders a horizontal bar per bucket, scaled to the largest
// value in the series. The analysis screen feeds it week, month and
// year buckets.
type BarChart struct {
	Buckets  []analytics.Bucket
	Width    int
	MaxLabel int
	Theme    theme.Theme
}

// NewBarChart creates a chart sized to width columns.
func NewBarChart(th theme.Theme, buckets []analytics.Bucket, width int) BarChart {
	maxLabel := 0
	for _, b := range buckets {
		if len(b.Label) > maxLabel {
			maxLabel = len(b.Label)
		}
	}
	return BarChart{
		Buckets:  buckets,
		Width:    width,
		MaxLabel: maxLabel,
		Theme:    th,
	}
}

// View renders the chart, one bucket per line.
func (c BarChart) View() string {
	var peak float64
	for _, b := range c.Buckets {
		if b.Minutes > peak {
			peak = b.Minutes
		}
	}

	// label + gap + bar + gap + value
	valueWidth := 8
	barWidth := c.Width - c.MaxLabel - valueWidth - 4
	if barWidth < 4 {
		barWidth = 4
	}

	var s strings.Builder
	for _, b := range c.Buckets {
		label := fmt.Sprintf("%-*s", c.MaxLabel, b.Label)
		s.WriteString(c.Theme.Hint.Render(label))
		s.WriteString("  ")

		filled := 0
		if peak > 0 {
			filled = int(b.Minutes / peak * float64(barWidth))
		}
		if filled > barWidth {
			filled = barWidth
		}

		s.WriteString(c.Theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
		s.WriteString(c.Theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)))

		if b.Minutes > 0 {
			s.WriteString(c.Theme.Body.Render(fmt.Sprintf("  %s", FormatMinutes(b.Minutes))))
		}
		s.WriteString("\n")
	}
	return s.String()
}

// FormatMinutes renders a minute count as "45m" or "2h 05m".
func FormatMinutes(minutes float64) string {
	total := int(minutes + 0.5)
	if total < 60 {
		return fmt.Sprintf("%dm", total)
	}
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}
