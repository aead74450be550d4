package sessiongate

import (
	"context"
	"fmt"
	"sync"

	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/store"
)

// Phase is what the gate allows the app to show.
type Phase int

const (
	// PhaseLoading means the account state is not yet known.
	PhaseLoading Phase = iota
	// PhaseSignedOut means no user; show the sign-in screen.
	PhaseSignedOut
	// PhaseEmailUnverified means a user exists but hasn't confirmed
	// their address; show the verification notice.
	PhaseEmailUnverified
	// PhaseNeedsExamSelection means the profile has no target exams yet.
	PhaseNeedsExamSelection
	// PhaseReady means the profile document is loaded; show the app.
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSignedOut:
		return "signed-out"
	case PhaseEmailUnverified:
		return "email-unverified"
	case PhaseNeedsExamSelection:
		return "needs-exam-selection"
	case PhaseReady:
		return "ready"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Gate consumes the auth stream and the profile repository and decides
// the current phase. Phases follow a strict precedence: signed-out
// beats everything, an unverified address beats profile state, and an
// empty exam selection beats ready.
type Gate struct {
	auth     AuthProvider
	profiles store.ProfileRepo
	live     *profile.Store

	mu       sync.Mutex
	phase    Phase
	user     *User
	listener func(Phase)
	cancel   func()
	loadErr  error
}

// NewGate creates a Gate. The live store is reset to the default
// profile whenever the user signs out and replaced with the persisted
// document when a user arrives.
func NewGate(auth AuthProvider, profiles store.ProfileRepo, live *profile.Store) *Gate {
	return &Gate{
		auth:     auth,
		profiles: profiles,
		live:     live,
		phase:    PhaseLoading,
	}
}

// Start subscribes to the auth stream. The first phase transition
// happens before Start returns because Subscribe emits immediately.
func (g *Gate) Start(ctx context.Context) {
	g.cancel = g.auth.Subscribe(func(u *User) {
		g.onUser(ctx, u)
	})
}

// Close unsubscribes from the auth stream.
func (g *Gate) Close() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

// Phase returns the current phase.
func (g *Gate) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// User returns the current user, or nil when signed out.
func (g *Gate) User() *User {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.user
}

// Err returns the most recent document load failure, if any.
func (g *Gate) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loadErr
}

// OnChange registers the single phase listener.
func (g *Gate) OnChange(fn func(Phase)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listener = fn
}

// Refresh re-evaluates the phase against the live profile. The exam
// selection screen calls this after writing selectedExams so the gate
// can advance to ready without an auth event.
func (g *Gate) Refresh() {
	g.mu.Lock()
	u := g.user
	g.mu.Unlock()
	if u == nil {
		return
	}
	g.setPhase(phaseFor(u, g.live.Get()))
}

func (g *Gate) onUser(ctx context.Context, u *User) {
	g.mu.Lock()
	g.user = u
	g.loadErr = nil
	g.mu.Unlock()

	if u == nil {
		g.live.Replace(profile.DefaultProfile())
		g.setPhase(PhaseSignedOut)
		return
	}

	rec, err := g.profiles.Get(ctx, u.ID)
	if err != nil {
		g.mu.Lock()
		g.loadErr = fmt.Errorf("load profile document: %w", err)
		g.mu.Unlock()
		g.live.Replace(profile.DefaultProfile())
		g.setPhase(phaseFor(u, g.live.Get()))
		return
	}

	if rec == nil {
		// First sign-in: seed the document so later debounced writes
		// always replace an existing record.
		p := profile.DefaultProfile()
		if err := g.profiles.Put(ctx, u.ID, p); err != nil {
			g.mu.Lock()
			g.loadErr = fmt.Errorf("seed profile document: %w", err)
			g.mu.Unlock()
		}
		g.live.Replace(p)
		g.setPhase(phaseFor(u, p))
		return
	}

	g.live.Replace(rec.Profile)
	g.setPhase(phaseFor(u, rec.Profile))
}

func (g *Gate) setPhase(p Phase) {
	g.mu.Lock()
	changed := g.phase != p
	g.phase = p
	fn := g.listener
	g.mu.Unlock()

	if changed && fn != nil {
		fn(p)
	}
}

// phaseFor applies the phase precedence for a signed-in user.
func phaseFor(u *User, p profile.Profile) Phase {
	if !u.EmailVerified {
		return PhaseEmailUnverified
	}
	if len(p.SelectedExams) == 0 {
		return PhaseNeedsExamSelection
	}
	return PhaseReady
}
