// Package sessiongate decides what the app may show: nothing until the
// account state is known, the sign-in screen without a user, the
// verification notice for an unverified address, exam selection for a
// fresh profile, and the full screen stack only once the profile
// document is loaded.
package sessiongate

import (
	"context"
	"fmt"
	"sync"

	"github.com/ritankar/lakshya/internal/store"
)

// User is the authenticated account as seen by the UI.
type User struct {
	ID            string
	Email         string
	EmailVerified bool
	DisplayName   string
	PhotoURL      string
}

// AuthProvider abstracts the identity source. Subscribe delivers the
// current user immediately and again on every change; a nil user means
// signed out.
type AuthProvider interface {
	Subscribe(fn func(*User)) (cancel func())
	SignIn(ctx context.Context, email, displayName string) error
	SignOut(ctx context.Context) error
	SendVerification(ctx context.Context) error
	SendPasswordReset(ctx context.Context, email string) error
}

// LocalAuth implements AuthProvider over the local account registry.
// There is no password: possession of the local database is the
// credential, and "verification" is acknowledged in-app.
type LocalAuth struct {
	accounts store.AccountRepo

	mu        sync.Mutex
	current   *User
	listeners map[int]func(*User)
	nextID    int
}

// NewLocalAuth creates a LocalAuth over the account repository.
func NewLocalAuth(accounts store.AccountRepo) *LocalAuth {
	return &LocalAuth{
		accounts:  accounts,
		listeners: map[int]func(*User){},
	}
}

// Resume signs in as a previously created account without user
// interaction, used at startup when a remembered email exists.
func (a *LocalAuth) Resume(ctx context.Context, email string) error {
	acct, err := a.accounts.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("resume session: %w", err)
	}
	if acct == nil {
		return nil
	}
	if err := a.accounts.Touch(ctx, acct.ID); err != nil {
		return fmt.Errorf("touch account: %w", err)
	}
	a.setCurrent(userFromAccount(acct))
	return nil
}

func (a *LocalAuth) Subscribe(fn func(*User)) (cancel func()) {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = fn
	current := a.current
	a.mu.Unlock()

	// Emit the current state immediately so subscribers never have to
	// poll for the initial value.
	fn(current)

	return func() {
		a.mu.Lock()
		delete(a.listeners, id)
		a.mu.Unlock()
	}
}

// SignIn looks up the account for email, creating it on first use, and
// makes it the current user.
func (a *LocalAuth) SignIn(ctx context.Context, email, displayName string) error {
	acct, err := a.accounts.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("look up account: %w", err)
	}
	if acct == nil {
		acct, err = a.accounts.Create(ctx, email, displayName)
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}
	} else if err := a.accounts.Touch(ctx, acct.ID); err != nil {
		return fmt.Errorf("touch account: %w", err)
	}

	a.setCurrent(userFromAccount(acct))
	return nil
}

func (a *LocalAuth) SignOut(ctx context.Context) error {
	a.setCurrent(nil)
	return nil
}

// SendVerification marks the current account verified. A local
// registry has no mail transport, so the acknowledgement itself is the
// verification.
func (a *LocalAuth) SendVerification(ctx context.Context) error {
	a.mu.Lock()
	u := a.current
	a.mu.Unlock()
	if u == nil {
		return fmt.Errorf("no signed-in user")
	}

	if err := a.accounts.MarkVerified(ctx, u.ID); err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}

	verified := *u
	verified.EmailVerified = true
	a.setCurrent(&verified)
	return nil
}

// SendPasswordReset is a no-op for the local registry; it exists so
// the sign-in screen can keep its reset affordance.
func (a *LocalAuth) SendPasswordReset(ctx context.Context, email string) error {
	return nil
}

func (a *LocalAuth) setCurrent(u *User) {
	a.mu.Lock()
	a.current = u
	fns := make([]func(*User), 0, len(a.listeners))
	for _, fn := range a.listeners {
		fns = append(fns, fn)
	}
	a.mu.Unlock()

	for _, fn := range fns {
		fn(u)
	}
}

func userFromAccount(acct *store.Account) *User {
	return &User{
		ID:            acct.ID,
		Email:         acct.Email,
		EmailVerified: acct.EmailVerified,
		DisplayName:   acct.DisplayName,
		PhotoURL:      acct.PhotoURL,
	}
}
