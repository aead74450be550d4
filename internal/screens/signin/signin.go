// Package signin renders the gate's signed-out and email-unverified
// phases: email/name entry, verification resend and password reset.
package signin

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritankar/lakshya/internal/screen"
	"github.com/ritankar/lakshya/internal/sessiongate"
	"github.com/ritankar/lakshya/internal/ui/components"
	"github.com/ritankar/lakshya/internal/ui/layout"
	"github.com/ritankar/lakshya/internal/ui/theme"
)

type field int

const (
	fieldEmail field = iota
	fieldName
)

// SignInScreen collects an email address and display name.
type SignInScreen struct {
	auth   sessiongate.AuthProvider
	th     theme.Theme
	email  components.TextInput
	name   components.TextInput
	focus  field
	notice string
}

var _ screen.Screen = (*SignInScreen)(nil)

// New creates the sign-in screen.
func New(th theme.Theme, auth sessiongate.AuthProvider) *SignInScreen {
	email := components.NewTextInput(th, "you@example.com", false, 64)
	name := components.NewTextInput(th, "Your name", false, 40)
	name.Model.Blur()
	return &SignInScreen{
		auth:  auth,
		th:    th,
		email: email,
		name:  name,
	}
}

func (s *SignInScreen) Init() tea.Cmd {
	return s.email.Init()
}

func (s *SignInScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab":
			if s.focus == fieldEmail {
				s.focus = fieldName
				s.email.Model.Blur()
				return s, s.name.Model.Focus()
			}
			s.focus = fieldEmail
			s.name.Model.Blur()
			return s, s.email.Model.Focus()

		case "enter":
			return s, s.submit()

		case "ctrl+r":
			email := strings.TrimSpace(s.email.Value())
			if email == "" {
				s.notice = "Enter your email first, then request a reset."
				return s, nil
			}
			if err := s.auth.SendPasswordReset(context.Background(), email); err != nil {
				s.notice = "Couldn't send the reset: " + err.Error()
			} else {
				s.notice = "Password reset requested for " + email + "."
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldEmail:
		s.email, cmd = s.email.Update(msg)
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	}
	return s, cmd
}

func (s *SignInScreen) submit() tea.Cmd {
	email := strings.TrimSpace(s.email.Value())
	if !validEmail(email) {
		s.notice = "That doesn't look like an email address."
		return nil
	}

	name := strings.TrimSpace(s.name.Value())
	if name == "" {
		name = email[:strings.Index(email, "@")]
	}

	if err := s.auth.SignIn(context.Background(), email, name); err != nil {
		s.notice = "Sign-in failed: " + err.Error()
		return nil
	}
	// The gate observes the auth stream and swaps the screen.
	return nil
}

func (s *SignInScreen) View(width, height int) string {
	title := s.th.Title.Render("Welcome to Lakshya")
	subtitle := s.th.Subtitle.Render("Your JEE/NEET preparation companion")

	form := s.th.Body.Render("Email") + "\n" +
		s.email.View() + "\n\n" +
		s.th.Body.Render("Name") + "\n" +
		s.name.View()

	body := title + "\n" + subtitle + "\n\n" + s.th.Card.Width(54).Render(form)

	if s.notice != "" {
		body += "\n\n" + s.th.Hint.Render(s.notice)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *SignInScreen) Title() string {
	return "Sign In"
}

// KeyHints implements screen.KeyHintProvider.
func (s *SignInScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+R", Description: "Reset password"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func validEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 {
		return false
	}
	dot := strings.LastIndex(s, ".")
	return dot > at+1 && dot < len(s)-1
}
