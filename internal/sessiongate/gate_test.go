package sessiongate

import (
	"context"
	"errors"
	"testing"

	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/store"
)

// fakeAccounts is an in-memory store.AccountRepo.
type fakeAccounts struct {
	byEmail map[string]*store.Account
	nextID  int
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byEmail: map[string]*store.Account{}}
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (*store.Account, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccounts) Create(_ context.Context, email, displayName string) (*store.Account, error) {
	f.nextID++
	a := &store.Account{
		ID:          string(rune('a' + f.nextID)),
		Email:       email,
		DisplayName: displayName,
	}
	f.byEmail[email] = a
	cp := *a
	return &cp, nil
}

func (f *fakeAccounts) MarkVerified(_ context.Context, id string) error {
	for _, a := range f.byEmail {
		if a.ID == id {
			a.EmailVerified = true
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeAccounts) Touch(_ context.Context, id string) error { return nil }

// fakeProfiles is an in-memory store.ProfileRepo.
type fakeProfiles struct {
	docs map[string]profile.Profile
	vers map[string]int64
	err  error
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{docs: map[string]profile.Profile{}, vers: map[string]int64{}}
}

func (f *fakeProfiles) Get(_ context.Context, accountID string) (*store.ProfileRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.docs[accountID]
	if !ok {
		return nil, nil
	}
	return &store.ProfileRecord{AccountID: accountID, Version: f.vers[accountID], Profile: p}, nil
}

func (f *fakeProfiles) Put(_ context.Context, accountID string, p profile.Profile) error {
	if f.err != nil {
		return f.err
	}
	f.docs[accountID] = p
	f.vers[accountID]++
	return nil
}

func (f *fakeProfiles) Delete(_ context.Context, accountID string) error {
	delete(f.docs, accountID)
	return nil
}

func newTestGate(t *testing.T) (*Gate, *LocalAuth, *fakeProfiles, *profile.Store) {
	t.Helper()
	auth := NewLocalAuth(newFakeAccounts())
	profiles := newFakeProfiles()
	live := profile.NewStore(profile.DefaultProfile())
	gate := NewGate(auth, profiles, live)
	t.Cleanup(gate.Close)
	return gate, auth, profiles, live
}

func TestGateStartsSignedOut(t *testing.T) {
	gate, _, _, _ := newTestGate(t)

	if gate.Phase() != PhaseLoading {
		t.Fatalf("phase before start = %v, want loading", gate.Phase())
	}

	gate.Start(context.Background())

	if gate.Phase() != PhaseSignedOut {
		t.Errorf("phase = %v, want signed-out", gate.Phase())
	}
}

func TestSignInLeadsToUnverifiedThenExamSelection(t *testing.T) {
	gate, auth, profiles, _ := newTestGate(t)
	ctx := context.Background()
	gate.Start(ctx)

	if err := auth.SignIn(ctx, "ritankar@example.com", "Ritankar"); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	// New account: unverified beats everything else.
	if gate.Phase() != PhaseEmailUnverified {
		t.Fatalf("phase = %v, want email-unverified", gate.Phase())
	}

	// First sign-in must have seeded the document.
	if len(profiles.docs) != 1 {
		t.Fatalf("expected seeded profile document, got %d", len(profiles.docs))
	}

	if err := auth.SendVerification(ctx); err != nil {
		t.Fatalf("send verification: %v", err)
	}

	// Verified but no exams selected yet.
	if gate.Phase() != PhaseNeedsExamSelection {
		t.Errorf("phase = %v, want needs-exam-selection", gate.Phase())
	}
}

func TestGateReadyAfterExamSelection(t *testing.T) {
	gate, auth, _, live := newTestGate(t)
	ctx := context.Background()
	gate.Start(ctx)

	if err := auth.SignIn(ctx, "r@example.com", "R"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if err := auth.SendVerification(ctx); err != nil {
		t.Fatalf("verify: %v", err)
	}

	live.Set(func(p profile.Profile) profile.Profile {
		return profile.SetSelectedExams(p, []string{"JEE Main", "JEE Advanced"})
	})
	gate.Refresh()

	if gate.Phase() != PhaseReady {
		t.Errorf("phase = %v, want ready", gate.Phase())
	}
}

func TestSignOutResetsLiveProfile(t *testing.T) {
	gate, auth, _, live := newTestGate(t)
	ctx := context.Background()
	gate.Start(ctx)

	if err := auth.SignIn(ctx, "r@example.com", "R"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	live.Set(func(p profile.Profile) profile.Profile {
		return profile.SetDailyGoal(p, 10)
	})

	if err := auth.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}

	if gate.Phase() != PhaseSignedOut {
		t.Errorf("phase = %v, want signed-out", gate.Phase())
	}
	if live.Get().DailyGoal != profile.DefaultProfile().DailyGoal {
		t.Errorf("dailyGoal = %v, want default after sign-out", live.Get().DailyGoal)
	}
}

func TestExistingDocumentLoadsIntoLiveStore(t *testing.T) {
	gate, auth, profiles, live := newTestGate(t)
	ctx := context.Background()

	gate.Start(ctx)
	if err := auth.SignIn(ctx, "back@example.com", "Back"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if err := auth.SendVerification(ctx); err != nil {
		t.Fatalf("verify: %v", err)
	}

	// Save a document with exams, sign out, sign back in.
	u := gate.User()
	saved := profile.SetSelectedExams(profile.SetDailyGoal(profile.DefaultProfile(), 9), []string{"NEET"})
	if err := profiles.Put(ctx, u.ID, saved); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := auth.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if err := auth.SignIn(ctx, "back@example.com", "Back"); err != nil {
		t.Fatalf("sign in again: %v", err)
	}

	if gate.Phase() != PhaseReady {
		t.Errorf("phase = %v, want ready", gate.Phase())
	}
	if live.Get().DailyGoal != 9 {
		t.Errorf("dailyGoal = %v, want 9 from saved document", live.Get().DailyGoal)
	}
}

func TestLoadErrorFallsBackToDefault(t *testing.T) {
	gate, auth, profiles, live := newTestGate(t)
	ctx := context.Background()
	profiles.err = errors.New("disk gone")

	gate.Start(ctx)
	if err := auth.SignIn(ctx, "r@example.com", "R"); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	if gate.Err() == nil {
		t.Error("expected load error to be surfaced")
	}
	if live.Get().DailyGoal != profile.DefaultProfile().DailyGoal {
		t.Error("expected default profile after load failure")
	}
}

func TestSubscribeEmitsImmediately(t *testing.T) {
	auth := NewLocalAuth(newFakeAccounts())

	var got []*User
	cancel := auth.Subscribe(func(u *User) { got = append(got, u) })
	defer cancel()

	if len(got) != 1 || got[0] != nil {
		t.Fatalf("expected one immediate nil emission, got %d", len(got))
	}

	if err := auth.SignIn(context.Background(), "r@example.com", "R"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if len(got) != 2 || got[1] == nil {
		t.Fatalf("expected emission on sign-in, got %d", len(got))
	}
	if got[1].Email != "r@example.com" {
		t.Errorf("email = %q", got[1].Email)
	}

	cancel()
	if err := auth.SignOut(context.Background()); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if len(got) != 2 {
		t.Error("expected no emission after cancel")
	}
}
