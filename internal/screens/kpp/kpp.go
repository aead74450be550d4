// Package kpp tracks physics practice papers: attempted/corrected
// flags and score pairs per paper.
package kpp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/screen"
	"github.com/ritankar/lakshya/internal/ui/components"
	"github.com/ritankar/lakshya/internal/ui/layout"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

type addField int

const (
	fieldNone addField = iota
	fieldName
	fieldChapter
	fieldMyScore
	fieldTotalScore
)

// KPPScreen lists practice-paper records.
type KPPScreen struct {
	live   *profile.Store
	th     theme.Theme
	cursor int

	field   addField
	input   components.TextInput
	name    string
	chapter string
	myScore float64
	confirm int64
	notice  string
}

var _ screen.Screen = (*KPPScreen)(nil)

// New creates the KPP screen.
func New(th theme.Theme, live *profile.Store) *KPPScreen {
	return &KPPScreen{live: live, th: th}
}

func (k *KPPScreen) Init() tea.Cmd {
	return nil
}

func (k *KPPScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k.field != fieldNone {
		return k.updateForm(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return k, nil
	}

	list := k.live.Get().KPPList

	if k.confirm != 0 {
		switch kmsg.String() {
		case "y", "enter":
			id := k.confirm
			k.live.Set(func(p profile.Profile) profile.Profile {
				return profile.DeleteKPP(p, id)
			})
			if k.cursor > 0 {
				k.cursor--
			}
		}
		k.confirm = 0
		return k, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if k.cursor > 0 {
			k.cursor--
		}
	case "down", "j":
		if k.cursor < len(list)-1 {
			k.cursor++
		}
	case "a":
		k.field = fieldName
		k.input = components.NewTextInput(k.th, "Paper name (e.g. KPP 12)", false, 40)
		return k, k.input.Init()
	case "t":
		k.mark(func(r profile.KPPRecord) (bool, bool) { return !r.Attempted, r.Corrected })
	case "c":
		k.mark(func(r profile.KPPRecord) (bool, bool) { return r.Attempted, !r.Corrected })
	case "d":
		if k.cursor < len(list) {
			k.confirm = list[k.cursor].ID
		}
	}

	return k, nil
}

func (k *KPPScreen) mark(flip func(profile.KPPRecord) (bool, bool)) {
	list := k.live.Get().KPPList
	if k.cursor >= len(list) {
		return
	}
	rec := list[k.cursor]
	attempted, corrected := flip(rec)
	k.live.Set(func(p profile.Profile) profile.Profile {
		return profile.MarkKPP(p, rec.ID, attempted, corrected)
	})
}

func (k *KPPScreen) updateForm(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			k.field = fieldNone
			return k, nil
		case "enter":
			return k, k.advanceForm()
		}
	}

	var cmd tea.Cmd
	k.input, cmd = k.input.Update(msg)
	return k, cmd
}

func (k *KPPScreen) advanceForm() tea.Cmd {
	val := strings.TrimSpace(k.input.Value())

	switch k.field {
	case fieldName:
		if val == "" {
			return nil
		}
		k.name = val
		k.field = fieldChapter
		k.input = components.NewTextInput(k.th, "Chapter", false, 50)
		return k.input.Init()

	case fieldChapter:
		k.chapter = val
		k.field = fieldMyScore
		k.input = components.NewTextInput(k.th, "Your score (e.g. 42.5)", false, 7)
		return k.input.Init()

	case fieldMyScore:
		score, err := strconv.ParseFloat(val, 64)
		if err != nil || score < 0 {
			k.notice = "Score must be a number."
			return nil
		}
		k.myScore = score
		k.notice = ""
		k.field = fieldTotalScore
		k.input = components.NewTextInput(k.th, "Total score (e.g. 60)", false, 7)
		return k.input.Init()

	case fieldTotalScore:
		total, err := strconv.ParseFloat(val, 64)
		if err != nil || total <= 0 {
			k.notice = "Total must be a positive number."
			return nil
		}
		name, chapter, my := k.name, k.chapter, k.myScore
		k.live.Set(func(p profile.Profile) profile.Profile {
			return profile.AddKPP(p, name, chapter, my, total, time.Now())
		})
		k.field = fieldNone
		k.notice = ""
		k.cursor = 0
	}
	return nil
}

func (k *KPPScreen) View(width, height int) string {
	p := k.live.Get()
	var b strings.Builder

	b.WriteString(k.th.Title.Render("KPP Tracker") + "\n\n")

	if k.field != fieldNone {
		b.WriteString(k.th.Body.Bold(true).Render("New paper") + "\n\n")
		b.WriteString(k.input.View() + "\n")
		if k.notice != "" {
			b.WriteString("\n" + k.th.Hint.Render(k.notice))
		}
		return b.String()
	}

	if len(p.KPPList) == 0 {
		b.WriteString(k.th.Hint.Render("No practice papers yet. Press 'a' to add one."))
		return b.String()
	}

	header := fmt.Sprintf("  %-20s %-26s %-10s %-10s %s",
		"Paper", "Chapter", "Attempted", "Corrected", "Score")
	b.WriteString(k.th.Hint.Render(header) + "\n")

	for i, r := range p.KPPList {
		att, corr := "—", "—"
		if r.Attempted {
			att = "✓"
		}
		if r.Corrected {
			corr = "✓"
		}
		line := fmt.Sprintf("%-20s %-26s %-10s %-10s %.1f/%.1f",
			clip(r.Name, 20), clip(r.Chapter, 26), att, corr, r.MyScore, r.TotalScore)

		switch {
		case i == k.cursor && k.confirm == r.ID:
			b.WriteString(k.th.Bad.Render("▸ "+line+"   delete? y/n") + "\n")
		case i == k.cursor:
			b.WriteString(k.th.Selected.Render("▸ "+line) + "\n")
		default:
			b.WriteString(k.th.Unselected.Render("  "+line) + "\n")
		}
	}

	return b.String()
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func (k *KPPScreen) Title() string {
	return "KPP"
}

// KeyHints implements screen.KeyHintProvider.
func (k *KPPScreen) KeyHints() []layout.KeyHint {
	if k.field != fieldNone {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "A", Description: "Add"},
		{Key: "T", Description: "Attempted"},
		{Key: "C", Description: "Corrected"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Home"},
	}
}
