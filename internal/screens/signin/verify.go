package signin

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritankar/lakshya/internal/screen"
	"github.com/ritankar/lakshya/internal/sessiongate"
	"github.com/ritankar/lakshya/internal/ui/layout"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

// VerifyScreen covers the email-unverified phase: it shows the pending
// address and lets the user acknowledge verification or sign out.
type VerifyScreen struct {
	auth   sessiongate.AuthProvider
	th     theme.Theme
	email  string
	notice string
}

var _ screen.Screen = (*VerifyScreen)(nil)

// NewVerify creates the verification screen for the given address.
func NewVerify(th theme.Theme, auth sessiongate.AuthProvider, email string) *VerifyScreen {
	return &VerifyScreen{auth: auth, th: th, email: email}
}

func (v *VerifyScreen) Init() tea.Cmd {
	return nil
}

func (v *VerifyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch kmsg.String() {
	case "enter", "r":
		if err := v.auth.SendVerification(context.Background()); err != nil {
			v.notice = "Verification failed: " + err.Error()
		}
		// On success the gate advances the phase.
		return v, nil

	case "s":
		if err := v.auth.SignOut(context.Background()); err != nil {
			v.notice = "Sign-out failed: " + err.Error()
		}
		return v, nil
	}

	return v, nil
}

func (v *VerifyScreen) View(width, height int) string {
	title := v.th.Title.Render("Verify your email")
	body := v.th.Body.Render("Signed in as ") + v.th.Selected.Render(v.email) + "\n\n" +
		v.th.Body.Render("Press Enter once you've confirmed this address.")

	out := title + "\n\n" + v.th.Card.Width(54).Render(body)
	if v.notice != "" {
		out += "\n\n" + v.th.Hint.Render(v.notice)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, out)
}

func (v *VerifyScreen) Title() string {
	return "Verify Email"
}

// KeyHints implements screen.KeyHintProvider.
func (v *VerifyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "I've verified"},
		{Key: "S", Description: "Sign out"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
