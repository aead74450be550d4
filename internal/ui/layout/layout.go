package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ritankar/lakshya/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool   { return width < CompactWidthThreshold }
func IsCompactHeight(height int) bool { return height < CompactHeightThreshold }

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the height left for screen content after the
// header and footer bars.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-HeaderHeight-FooterHeight, 0)
}

// RenderMinSizeMessage renders the "terminal too small" notice.
func RenderMinSizeMessage(th theme.Theme, width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(th.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// barStyle is the bordered bar shared by the header and footer.
func barStyle(th theme.Theme, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(th.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border)
}

// RenderHeader renders the top bar: app name, screen title centered,
// streak and XP on the right.
func RenderHeader(th theme.Theme, title string, streak, xp int, width int) string {
	name := lipgloss.NewStyle().Foreground(th.Primary).Bold(true).Render("  Lakshya")
	center := lipgloss.NewStyle().Foreground(th.Text).Render(title)

	accent := lipgloss.NewStyle().Foreground(th.Accent)
	sep := lipgloss.NewStyle().Foreground(th.TextDim).Render("   ")
	badges := accent.Render(fmt.Sprintf("🔥 %d day", streak)) + sep + accent.Render(fmt.Sprintf("★ %d xp", xp))

	inner := max(width-4, 0) // border padding
	gapL := max((inner-lipgloss.Width(center))/2-lipgloss.Width(name), 1)
	gapR := max(inner-lipgloss.Width(name)-gapL-lipgloss.Width(center)-lipgloss.Width(badges), 1)

	line := name + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + badges
	return barStyle(th, width).Render(line)
}

// RenderFooter renders the bottom bar of key hints.
func RenderFooter(th theme.Theme, hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(th.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(th.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return barStyle(th, width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content, and footer to fill the height.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)).
		Render(content)
	return header + "\n" + body + "\n" + footer
}
