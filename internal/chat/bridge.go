// Package chat bridges the UI to the text-completion provider. The
// bridge holds the transcript, assembles the state snapshot sent with
// every request (the service keeps no conversation state), and turns
// every failure into a fixed fallback reply instead of an error.
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ritankar/lakshya/internal/llm"
	"github.com/ritankar/lakshya/internal/profile"
)

// Role identifies a transcript entry author.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Entry is one transcript message.
type Entry struct {
	Role Role
	Text string
}

// Greeting seeds every new transcript.
const Greeting = "Hey! I'm your study assistant. Ask me about your prep, your syllabus, or how to plan today."

// Fallback is appended whenever a request fails, whatever the cause.
const Fallback = "I'm having trouble connecting right now. Give me a moment and try again."

const systemPrompt = `You are a friendly, concise study assistant inside a JEE/NEET exam-prep
tracker. Keep answers short and practical. Structure longer answers with
lines ending in ":" as headings, "* " bullets, and **bold** for emphasis.
Never invent data about the student beyond the snapshot you are given.`

// Snapshot is the compact application state attached to each request.
type Snapshot struct {
	SelectedExams  []string
	PendingTasks   []string
	DailyGoalHours float64
}

// SnapshotFrom extracts the request snapshot from the current profile.
func SnapshotFrom(p profile.Profile) Snapshot {
	return Snapshot{
		SelectedExams:  append([]string(nil), p.SelectedExams...),
		PendingTasks:   p.PendingTasks(),
		DailyGoalHours: p.DailyGoal,
	}
}

func (s Snapshot) render() string {
	var b strings.Builder
	b.WriteString("Student snapshot:\n")
	if len(s.SelectedExams) > 0 {
		fmt.Fprintf(&b, "- Preparing for: %s\n", strings.Join(s.SelectedExams, ", "))
	}
	fmt.Fprintf(&b, "- Daily goal: %.1f hours\n", s.DailyGoalHours)
	if len(s.PendingTasks) > 0 {
		fmt.Fprintf(&b, "- Pending tasks: %s\n", strings.Join(s.PendingTasks, "; "))
	} else {
		b.WriteString("- Pending tasks: none\n")
	}
	return b.String()
}

// Bridge owns the chat transcript.
type Bridge struct {
	mu       sync.Mutex
	provider llm.Provider
	entries  []Entry
}

// NewBridge creates a Bridge seeded with the greeting entry.
func NewBridge(provider llm.Provider) *Bridge {
	return &Bridge{
		provider: provider,
		entries:  []Entry{{Role: RoleModel, Text: Greeting}},
	}
}

// Entries returns a copy of the transcript.
func (b *Bridge) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Entry(nil), b.entries...)
}

// Send appends the user entry, issues one single-turn completion with
// the snapshot folded into the prompt, and appends the reply. Empty or
// whitespace-only input is a no-op. Failures append Fallback and are
// never returned to the caller. The returned entry is the model reply,
// and ok is false only for the empty-input no-op.
func (b *Bridge) Send(ctx context.Context, snap Snapshot, text string) (Entry, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Entry{}, false
	}

	b.append(Entry{Role: RoleUser, Text: trimmed})

	prompt := snap.render() + "\nStudent says: " + trimmed

	resp, err := b.provider.Generate(llm.WithPurpose(ctx, "chat"), llm.Request{
		System:    systemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens: 700,
	})

	reply := Entry{Role: RoleModel, Text: Fallback}
	if err == nil {
		if text := strings.TrimSpace(string(resp.Content)); text != "" {
			reply.Text = text
		}
	}
	b.append(reply)
	return reply, true
}

func (b *Bridge) append(e Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, e)
}
