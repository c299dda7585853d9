package command

// root.go defines the root command for libraryCLI and its global flags.

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"libraryhub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:8080"

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	apiURL  string
	timeout time.Duration
}

func (o *globalOptions) client() *client.HTTPClient {
	return client.NewHTTPClient(o.apiURL)
}

func (o *globalOptions) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), o.timeout)
}

// NewRootCmd creates the command tree. Tests build a fresh tree per run.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "libraryCLI",
		Short: "libraryCLI - command line client for the libraryhub API",
		Long: `libraryCLI talks to a running libraryhub server. Use it to register users
and books, record a borrow, and list what a user has borrowed.

Use "libraryCLI command -h" to see all available commands.`,
		SilenceUsage: true,
	}

	defaultURL := os.Getenv("LIBRARYHUB_API_URL")
	if defaultURL == "" {
		defaultURL = defaultAPIURL
	}
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api", defaultURL, "API server URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "per-command timeout")

	cmd.AddCommand(
		newUserCmd(opts),
		newBookCmd(opts),
		newBorrowCmd(opts),
		newPingCmd(opts),
	)
	return cmd
}

// Execute is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPingCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the API and its storage are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			if err := opts.client().Ping(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ API is reachable")
			return nil
		},
	}
}

func parseID(kind, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s ID: %q", kind, raw)
	}
	return id, nil
}
