package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ritankar/lakshya/internal/chat"
	"github.com/ritankar/lakshya/internal/llm"
	"github.com/spf13/cobra"
)

var briefingCmd = &cobra.Command{
	Use:   "briefing <email>",
	Short: "Print today's AI study briefing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		acct, err := s.AccountRepo().GetByEmail(ctx, args[0])
		if err != nil {
			return fmt.Errorf("look up account: %w", err)
		}
		if acct == nil {
			return fmt.Errorf("no account for %s", args[0])
		}
		rec, err := s.ProfileRepo().Get(ctx, acct.ID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("no profile recorded for %s", args[0])
		}

		line := chat.DailyBriefing(ctx, provider, rec.Profile, time.Now())
		if line == "" {
			return fmt.Errorf("briefing unavailable")
		}
		fmt.Println(line)
		return nil
	},
}
