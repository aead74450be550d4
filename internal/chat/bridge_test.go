package chat

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ritankar/lakshya/internal/llm"
	"github.com/ritankar/lakshya/internal/profile"
)

func testSnapshot() Snapshot {
	return Snapshot{
		SelectedExams:  []string{"JEE Main 2026"},
		PendingTasks:   []string{"Revise optics"},
		DailyGoalHours: 6,
	}
}

func TestBridge_StartsWithGreeting(t *testing.T) {
	b := NewBridge(llm.NewMockProvider())
	entries := b.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Role != RoleModel || entries[0].Text != Greeting {
		t.Errorf("entries[0] = %+v, want the greeting", entries[0])
	}
}

func TestSend_AppendsUserAndModelEntries(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Do optics first.")})
	b := NewBridge(mock)

	reply, ok := b.Send(context.Background(), testSnapshot(), "what should I study?")
	if !ok {
		t.Fatal("Send returned ok=false for real input")
	}
	if reply.Text != "Do optics first." {
		t.Errorf("reply = %q, want model text", reply.Text)
	}

	entries := b.Entries()
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want greeting + user + model", len(entries))
	}
	if entries[1].Role != RoleUser || entries[1].Text != "what should I study?" {
		t.Errorf("entries[1] = %+v, want the user turn", entries[1])
	}
	if entries[2].Role != RoleModel {
		t.Errorf("entries[2].Role = %v, want model", entries[2].Role)
	}
}

func TestSend_SnapshotFoldedIntoPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("ok")})
	b := NewBridge(mock)

	b.Send(context.Background(), testSnapshot(), "hello")

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"JEE Main 2026", "Revise optics", "6.0 hours", "hello"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestSend_EmptyInputIsNoOp(t *testing.T) {
	mock := llm.NewMockProvider()
	b := NewBridge(mock)

	if _, ok := b.Send(context.Background(), testSnapshot(), "   \n\t"); ok {
		t.Error("whitespace input must be a no-op")
	}
	if mock.CallCount() != 0 {
		t.Errorf("calls = %d, want 0", mock.CallCount())
	}
	if len(b.Entries()) != 1 {
		t.Errorf("entries = %d, transcript must be untouched", len(b.Entries()))
	}
}

func TestSend_FailureAppendsFallback(t *testing.T) {
	// Empty mock queue fails as unavailable.
	b := NewBridge(llm.NewMockProvider())

	reply, ok := b.Send(context.Background(), testSnapshot(), "hi")
	if !ok {
		t.Fatal("Send must not surface the failure")
	}
	if reply.Text != Fallback {
		t.Errorf("reply = %q, want the fallback message", reply.Text)
	}
}

func TestDailyBriefing(t *testing.T) {
	now := time.Date(2026, time.February, 10, 19, 0, 0, 0, time.UTC)
	p := profile.DefaultProfile()
	p = profile.CommitStudySession(p, "Physics", 3600, now)

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"briefing": "An hour in already - nice start."}`),
	})

	got := DailyBriefing(context.Background(), mock, p, now)
	if got != "An hour in already - nice start." {
		t.Errorf("DailyBriefing = %q", got)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "daily-briefing" {
		t.Error("briefing request must carry the briefing schema")
	}
	if !strings.Contains(req.Messages[0].Content, "60 minutes") {
		t.Errorf("prompt missing today's minutes:\n%s", req.Messages[0].Content)
	}
}

func TestDailyBriefing_FailureReturnsFallback(t *testing.T) {
	got := DailyBriefing(context.Background(), llm.NewMockProvider(), profile.DefaultProfile(), time.Now())
	if got != briefingFallback {
		t.Errorf("DailyBriefing = %q, want fallback", got)
	}
}
