package store

import (
	"context"
	"testing"

	"github.com/ritankar/lakshya/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAccountCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	repo := s.AccountRepo()
	ctx := context.Background()

	a, err := repo.GetByEmail(ctx, "ritankar@example.com")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if a != nil {
		t.Fatal("expected nil account before create")
	}

	created, err := repo.Create(ctx, "Ritankar@Example.com", "Ritankar")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Error("expected non-empty account ID")
	}
	if created.Email != "ritankar@example.com" {
		t.Errorf("email = %q, want normalized lowercase", created.Email)
	}
	if created.EmailVerified {
		t.Error("new account should start unverified")
	}

	// Lookup is case-insensitive via normalization.
	got, err := repo.GetByEmail(ctx, "RITANKAR@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Fatalf("lookup returned %+v, want account %s", got, created.ID)
	}
}

func TestAccountMarkVerified(t *testing.T) {
	s := openTestStore(t)
	repo := s.AccountRepo()
	ctx := context.Background()

	a, err := repo.Create(ctx, "v@example.com", "V")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.MarkVerified(ctx, a.ID); err != nil {
		t.Fatalf("mark verified: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "v@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.EmailVerified {
		t.Error("expected account to be verified")
	}
}

func TestProfilePutIncrementsVersion(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	rec, err := repo.Get(ctx, "acct-1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record before first put")
	}

	p := profile.DefaultProfile()
	if err := repo.Put(ctx, "acct-1", p); err != nil {
		t.Fatalf("put 1: %v", err)
	}

	p = profile.SetDailyGoal(p, 8)
	if err := repo.Put(ctx, "acct-1", p); err != nil {
		t.Fatalf("put 2: %v", err)
	}

	rec, err = repo.Get(ctx, "acct-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record after put")
	}
	if rec.Version != 2 {
		t.Errorf("version = %d, want 2", rec.Version)
	}
	if rec.Profile.DailyGoal != 8 {
		t.Errorf("dailyGoal = %v, want 8 (whole-document replacement)", rec.Profile.DailyGoal)
	}
}

func TestProfileDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, "acct-2", profile.DefaultProfile()); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Delete(ctx, "acct-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rec, err := repo.Get(ctx, "acct-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record after delete")
	}
}

func TestEventSequenceSharedAcrossTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendStudySession(ctx, StudySessionEventData{
		AccountID: "acct-1", Subject: "Physics", Seconds: 125, Minutes: 2.08, Mode: "stopwatch", XPGained: 2,
	})
	if err != nil {
		t.Fatalf("append session: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "chat", Success: true,
	})
	if err != nil {
		t.Fatalf("append llm: %v", err)
	}

	sessions, err := repo.QueryStudySessions(ctx, "acct-1", QueryOpts{})
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}

	llms, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(llms) != 1 {
		t.Fatalf("got %d llm events, want 1", len(llms))
	}

	if sessions[0].Sequence == llms[0].Sequence {
		t.Error("expected distinct sequence numbers across event types")
	}
	if llms[0].Sequence < sessions[0].Sequence {
		t.Error("expected later event to carry the larger sequence")
	}
}

func TestQueryStudySessionsFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendStudySession(ctx, StudySessionEventData{
			AccountID: "acct-1", Subject: "Maths", Seconds: 60 * (i + 1), Minutes: float64(i + 1), Mode: "stopwatch", XPGained: i + 1,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryStudySessions(ctx, "acct-1", QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	// Newest first.
	if got[0].Seconds != 180 {
		t.Errorf("first result seconds = %d, want 180", got[0].Seconds)
	}

	other, err := repo.QueryStudySessions(ctx, "acct-other", QueryOpts{})
	if err != nil {
		t.Fatalf("query other: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("got %d events for unknown account, want 0", len(other))
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "chat", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "chat", InputTokens: 200, OutputTokens: 70, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "briefing", InputTokens: 80, OutputTokens: 40, LatencyMs: 300, Success: true},
	}
	for i, c := range calls {
		if err := repo.AppendLLMRequest(ctx, c); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}

	byPurpose := map[string]PurposeUsage{}
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}

	chat, ok := byPurpose["chat"]
	if !ok {
		t.Fatal("missing chat usage row")
	}
	if chat.Calls != 2 || chat.InputTokens != 300 || chat.OutputTokens != 120 {
		t.Errorf("chat usage = %+v, want 2 calls, 300 in, 120 out", chat)
	}
	if chat.AvgLatencyMs != 300 {
		t.Errorf("chat avg latency = %d, want 300", chat.AvgLatencyMs)
	}

	if _, ok := byPurpose["briefing"]; !ok {
		t.Error("missing briefing usage row")
	}
}

func TestGetLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5",
		Purpose:      "chat",
		Success:      false,
		ErrorMessage: "rate limited",
		RequestBody:  "[user]\nhello",
		ResponseBody: "",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event")
	}
	if got.ErrorMessage != "rate limited" || got.RequestBody == "" {
		t.Errorf("event = %+v, want failure details preserved", got.LLMRequestEventData)
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown event ID")
	}
}
