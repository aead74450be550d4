package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ritankar/lakshya/internal/analytics"
	"github.com/ritankar/lakshya/internal/llm"
	"github.com/ritankar/lakshya/internal/profile"
)

// briefingSchema constrains the one-shot briefing to a single field so
// the reply can be lifted straight into the dashboard.
var briefingSchema = &llm.Schema{
	Name:        "daily-briefing",
	Description: "A one- or two-sentence study briefing for today",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"briefing": map[string]any{
				"type":        "string",
				"description": "1-2 encouraging sentences about today's study state",
			},
		},
		"required": []any{"briefing"},
	},
}

// briefingFallback is shown when the briefing request fails.
const briefingFallback = "Couldn't fetch today's briefing. Your streak and goals are below."

// DailyBriefing issues one completion summarizing today's minutes,
// streak, and pending-task count. Failures return the fallback text;
// no error escapes.
func DailyBriefing(ctx context.Context, provider llm.Provider, p profile.Profile, now time.Time) string {
	minutes := analytics.TodayMinutes(p.History, now)
	streak := analytics.Streak(p.History, now)
	pending := len(p.PendingTasks())

	prompt := fmt.Sprintf(
		"Today the student studied %.0f minutes (goal %.1f hours), is on a %d-day streak, and has %d pending tasks. "+
			"Write a 1-2 sentence briefing. Be specific and encouraging, never preachy.",
		minutes, p.DailyGoal, streak, pending,
	)

	resp, err := provider.Generate(llm.WithPurpose(ctx, "briefing"), llm.Request{
		System:    systemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    briefingSchema,
		MaxTokens: 200,
	})
	if err != nil {
		return briefingFallback
	}

	var out struct {
		Briefing string `json:"briefing"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil || out.Briefing == "" {
		return briefingFallback
	}
	return out.Briefing
}
