package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ritankar/lakshya/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	Theme       theme.Theme
}

func NewProgressBar(th theme.Theme, label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		Theme:       th,
	}
}

// View renders the labelled bar, clamping fill to [0, barWidth].
func (p ProgressBar) View() string {
	out := ""
	if p.Label != "" {
		out = p.Theme.Body.Render(p.Label) + "  "
	}

	suffix := 0
	if p.ShowPercent {
		suffix = 6 // "  100%"
	}
	barWidth := max(p.Width-lipgloss.Width(out)-suffix, 4)

	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)
	out += p.Theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	out += p.Theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		out += p.Theme.Hint.Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}
	return out
}
