package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBorrowCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "borrow",
		Short: "Record borrows and list a user's borrowed books",
	}

	createCmd := &cobra.Command{
		Use:   "create [user_id] [book_id]",
		Short: "Record that a user borrowed a book",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID("user", args[0])
			if err != nil {
				return err
			}
			bookID, err := parseID("book", args[1])
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			record, err := opts.client().Borrow(ctx, userID, bookID)
			if err != nil {
				return fmt.Errorf("failed to borrow book: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ User %d borrowed book %d (record ID: %d)\n",
				record.UserID, record.BookID, record.ID)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list [user_id]",
		Short: "List every book a user has borrowed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID("user", args[0])
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			records, err := opts.client().ListBorrows(ctx, userID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintf(out, "📚 User %d has not borrowed anything\n", userID)
				return nil
			}
			fmt.Fprintf(out, "📚 Borrowed by user %d (%d records)\n", userID, len(records))
			for i, r := range records {
				fmt.Fprintf(out, "%d. book %d (record %d) at %s\n",
					i+1, r.BookID, r.ID, r.BorrowedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.AddCommand(createCmd, listCmd)
	return cmd
}
