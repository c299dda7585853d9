package command

import (
	"fmt"

	"libraryhub/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

func newUserCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Register and look up library users",
	}

	var req dto.CreateUserRequest
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			user, err := opts.client().CreateUser(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Created user %q (ID: %d)\n", user.Username, user.ID)
			return nil
		},
	}
	createCmd.Flags().StringVar(&req.Username, "username", "", "unique username")
	createCmd.Flags().StringVar(&req.FullName, "fullname", "", "full name")
	_ = createCmd.MarkFlagRequired("username")
	_ = createCmd.MarkFlagRequired("fullname")

	getCmd := &cobra.Command{
		Use:   "get [user_id]",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID("user", args[0])
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			user, err := opts.client().GetUser(ctx, userID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "User %d\n", user.ID)
			fmt.Fprintf(out, "   Username: %s\n", user.Username)
			fmt.Fprintf(out, "   Full name: %s\n", user.FullName)
			return nil
		},
	}

	cmd.AddCommand(createCmd, getCmd)
	return cmd
}
