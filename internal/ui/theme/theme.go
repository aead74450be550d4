package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Names lists the selectable palettes in display order.
var Names = []string{"Indigo", "Ocean", "Forest", "Sunset", "Rose", "Graphite"}

// palette carries the three colors that change between themes; the
// rest follow the dark/light mode.
type palette struct {
	primary   color.Color
	secondary color.Color
	accent    color.Color
}

var palettes = map[string]palette{
	"Indigo":   {lipgloss.Color("#6366F1"), lipgloss.Color("#8B5CF6"), lipgloss.Color("#F59E0B")},
	"Ocean":    {lipgloss.Color("#0EA5E9"), lipgloss.Color("#06B6D4"), lipgloss.Color("#F97316")},
	"Forest":   {lipgloss.Color("#22C55E"), lipgloss.Color("#10B981"), lipgloss.Color("#EAB308")},
	"Sunset":   {lipgloss.Color("#F97316"), lipgloss.Color("#EF4444"), lipgloss.Color("#FACC15")},
	"Rose":     {lipgloss.Color("#F43F5E"), lipgloss.Color("#EC4899"), lipgloss.Color("#A855F7")},
	"Graphite": {lipgloss.Color("#64748B"), lipgloss.Color("#94A3B8"), lipgloss.Color("#38BDF8")},
}

// Theme bundles the resolved colors and the derived styles every
// screen renders with. Screens receive a Theme instead of reaching for
// package globals so a settings change takes effect on the next frame.
type Theme struct {
	// Colors
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color

	// Typography
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style

	// Layout
	Card lipgloss.Style

	// States
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Good       lipgloss.Style
	Bad        lipgloss.Style

	// Components
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
}

// Load resolves a palette name and mode into a ready-to-render Theme.
// Unknown names fall back to Indigo.
func Load(name string, dark bool) Theme {
	pal, ok := palettes[name]
	if !ok {
		pal = palettes["Indigo"]
	}

	t := Theme{
		Primary:   pal.primary,
		Secondary: pal.secondary,
		Accent:    pal.accent,
	}

	if dark {
		t.Success = lipgloss.Color("#22C55E")
		t.Error = lipgloss.Color("#F43F5E")
		t.Text = lipgloss.Color("#F8FAFC")
		t.TextDim = lipgloss.Color("#94A3B8")
		t.Bg = lipgloss.Color("#0F172A")
		t.BgCard = lipgloss.Color("#1E293B")
		t.Border = lipgloss.Color("#334155")
	} else {
		t.Success = lipgloss.Color("#16A34A")
		t.Error = lipgloss.Color("#E11D48")
		t.Text = lipgloss.Color("#0F172A")
		t.TextDim = lipgloss.Color("#64748B")
		t.Bg = lipgloss.Color("#F8FAFC")
		t.BgCard = lipgloss.Color("#E2E8F0")
		t.Border = lipgloss.Color("#CBD5E1")
	}

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Align(lipgloss.Center)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.TextDim).
		Align(lipgloss.Center)

	t.Body = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Hint = lipgloss.NewStyle().
		Foreground(t.TextDim).
		Italic(true)

	t.Card = lipgloss.NewStyle().
		Background(t.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.Selected = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.Unselected = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Good = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	t.Bad = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	t.ProgressFilled = lipgloss.NewStyle().
		Background(t.Secondary)

	t.ProgressEmpty = lipgloss.NewStyle().
		Background(t.Border)

	t.ButtonActive = lipgloss.NewStyle().
		Background(t.Primary).
		Foreground(t.Text).
		Bold(true).
		Padding(0, 2)

	t.ButtonInactive = lipgloss.NewStyle().
		Background(t.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2)

	return t
}
