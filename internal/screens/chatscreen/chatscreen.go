// Package chatscreen renders the AI assistant conversation: a
// transcript viewport, an input line and a busy indicator.
package chatscreen

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritankar/lakshya/internal/chat"
	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/screen"
	"github.com/ritankar/lakshya/internal/ui/components"
	"github.com/ritankar/lakshya/internal/ui/layout"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

// replyMsg carries the bridge's reply back into the update loop.
type replyMsg struct{}

// ChatScreen is the assistant conversation view.
type ChatScreen struct {
	bridge *chat.Bridge
	live   *profile.Store
	th     theme.Theme

	vp      viewport.Model
	input   components.TextInput
	busy    bool
	sized   bool
	width   int
	height  int
}

var _ screen.Screen = (*ChatScreen)(nil)

// New creates the chat screen. A nil bridge renders a configuration
// notice instead of the conversation.
func New(th theme.Theme, bridge *chat.Bridge, live *profile.Store) *ChatScreen {
	return &ChatScreen{
		bridge: bridge,
		live:   live,
		th:     th,
		input:  components.NewTextInput(th, "Ask about your prep…", false, 0),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.busy = false
		c.refreshTranscript(true)
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if c.busy || c.bridge == nil {
				return c, nil
			}
			text := strings.TrimSpace(c.input.Value())
			if text == "" {
				return c, nil
			}
			c.input.Model.SetValue("")
			c.busy = true

			snap := chat.SnapshotFrom(c.live.Get())
			c.refreshTranscript(true)
			return c, func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
				defer cancel()
				c.bridge.Send(ctx, snap, text)
				return replyMsg{}
			}

		case "up", "pgup":
			c.vp.ScrollUp(3)
			return c, nil
		case "down", "pgdown":
			c.vp.ScrollDown(3)
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// refreshTranscript re-renders the viewport content from the bridge.
func (c *ChatScreen) refreshTranscript(toBottom bool) {
	if !c.sized || c.bridge == nil {
		return
	}
	var b strings.Builder
	for _, e := range c.bridge.Entries() {
		b.WriteString(c.renderEntry(e))
		b.WriteString("\n")
	}
	c.vp.SetContent(b.String())
	if toBottom {
		c.vp.GotoBottom()
	}
}

// renderEntry formats one transcript entry. Model output goes through
// the block formatter; user text renders as-is.
func (c *ChatScreen) renderEntry(e chat.Entry) string {
	wrap := lipgloss.NewStyle().Width(c.width - 6)

	if e.Role == chat.RoleUser {
		label := c.th.Selected.Render("You")
		return label + "\n" + wrap.Foreground(c.th.Text).Render(e.Text) + "\n"
	}

	label := lipgloss.NewStyle().Foreground(c.th.Secondary).Bold(true).Render("Assistant")
	var b strings.Builder
	b.WriteString(label + "\n")
	for _, block := range chat.Format(e.Text) {
		switch block.Kind {
		case chat.Spacer:
			b.WriteString("\n")
		case chat.Heading:
			b.WriteString(wrap.Foreground(c.th.Primary).Bold(true).Render(renderSpans(block.Spans)) + "\n")
		case chat.Bullet:
			b.WriteString(wrap.Foreground(c.th.Text).Render("  • "+renderSpans(block.Spans)) + "\n")
		default:
			b.WriteString(wrap.Foreground(c.th.Text).Render(renderSpans(block.Spans)) + "\n")
		}
	}
	return b.String()
}

func renderSpans(spans []chat.Span) string {
	var b strings.Builder
	for _, sp := range spans {
		if sp.Bold {
			b.WriteString(lipgloss.NewStyle().Bold(true).Render(sp.Text))
		} else {
			b.WriteString(sp.Text)
		}
	}
	return b.String()
}

func (c *ChatScreen) View(width, height int) string {
	if c.bridge == nil {
		notice := c.th.Hint.Render("AI chat needs an API key.\nSet GEMINI_API_KEY (or ANTHROPIC_API_KEY / OPENAI_API_KEY) and restart.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, notice)
	}

	if !c.sized {
		c.vp = viewport.New(viewport.WithWidth(1), viewport.WithHeight(1))
		c.sized = true
	}
	if c.width != width || c.height != height {
		c.width, c.height = width, height
		c.vp.SetWidth(width - 2)
		c.vp.SetHeight(height - 3)
		c.refreshTranscript(true)
	}

	status := ""
	if c.busy {
		status = c.th.Hint.Render("  thinking…")
	}

	return c.vp.View() + "\n" + c.input.View() + status
}

func (c *ChatScreen) Title() string {
	return "AI Assistant"
}

// KeyHints implements screen.KeyHintProvider.
func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Home"},
	}
}
