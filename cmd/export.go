package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ritankar/lakshya/internal/profile"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <email> <file>",
	Short: "Write an account's profile document to a JSON file",
	Args:  cobra.ExactArgs(2),
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
			return fmt.Errorf("no profile recorded for %s", args[0])
		}

		data, err := json.MarshalIndent(rec.Profile, "", "  ")
		if err != nil {
			return fmt.Errorf("encode profile: %w", err)
		}
		if err := os.WriteFile(args[1], data, 0o600); err != nil {
			return fmt.Errorf("write %s: %w", args[1], err)
		}
		fmt.Printf("Exported profile for %s to %s\n", acct.Email, args[1])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <email> <file>",
	Short: "Replace an account's profile document from a JSON file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("import overwrites the current profile; pass --yes to confirm")
		}

		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[1], err)
		}
		var p profile.Profile
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("decode profile: %w", err)
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

		if err := s.ProfileRepo().Put(ctx, acct.ID, p); err != nil {
			return fmt.Errorf("store profile: %w", err)
		}
		fmt.Printf("Imported profile for %s from %s\n", acct.Email, args[1])
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("yes", false, "Confirm the overwrite")
}
