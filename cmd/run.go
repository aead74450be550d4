package cmd

import (
	"fmt"
	"os"

	"github.com/ritankar/lakshya/internal/app"
	"github.com/ritankar/lakshya/internal/llm"
	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/sessiongate"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	auth := sessiongate.NewLocalAuth(st.AccountRepo())
	live := profile.NewStore(profile.DefaultProfile())
	gate := sessiongate.NewGate(auth, st.ProfileRepo(), live)

	opts := app.Options{
		Store: st,
		Live:  live,
		Auth:  auth,
		Gate:  gate,
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI mentor and daily briefing will be unavailable.")
	} else {
		opts.Provider = provider
	}

	// Skip the sign-in screen when the last account is known.
	if email := os.Getenv("LAKSHYA_EMAIL"); email != "" {
		if err := auth.Resume(ctx, email); err != nil {
			fmt.Fprintln(os.Stderr, "resume session:", err)
		}
	}

	return app.Run(ctx, opts)
}
