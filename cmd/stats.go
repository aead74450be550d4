package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ritankar/lakshya/internal/analytics"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <email>",
	Short: "Show study statistics for an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
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
			fmt.Println("No profile data recorded yet.")
			return nil
		}

		p := rec.Profile
		now := time.Now()

		fmt.Printf("Streak:      %d days\n", analytics.Streak(p.History, now))
		fmt.Printf("Today:       %.0f min of %.1fh goal (%.0f%%)\n",
			analytics.TodayMinutes(p.History, now), p.DailyGoal,
			analytics.GoalProgress(p.History, p.DailyGoal, now)*100)
		fmt.Printf("XP:          %d\n", p.XP)

		fmt.Println()
		fmt.Println("This Week")
		fmt.Println(strings.Repeat("─", 40))
		for _, b := range analytics.WeekBuckets(p.History, now) {
			fmt.Printf("%-4s  %6.0f min\n", b.Label, b.Minutes)
		}

		fmt.Println()
		fmt.Println("Subject Mix")
		fmt.Println(strings.Repeat("─", 40))
		total := 0
		mix := analytics.SubjectMix(p.Subjects)
		for _, m := range mix {
			total += m.Seconds
		}
		for _, m := range mix {
			pct := 0.0
			if total > 0 {
				pct = float64(m.Seconds) / float64(total) * 100
			}
			fmt.Printf("%-12s  %6.1fh  %5.1f%%\n",
				m.Category, float64(m.Seconds)/3600, pct)
		}

		return nil
	},
}
