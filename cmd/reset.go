package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <email>",
	Short: "Delete all study data for an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to delete without --yes")
		}

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

		if err := s.ProfileRepo().Delete(ctx, acct.ID); err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		fmt.Printf("Study data for %s deleted.\n", acct.Email)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the deletion")
}
