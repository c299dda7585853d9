package command

import (
	"fmt"

	"libraryhub/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

func newBookCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Add and look up books",
	}

	var req dto.CreateBookRequest
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Add a book to the catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			book, err := opts.client().CreateBook(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to create book: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Created book %q (ID: %d)\n", book.Title, book.ID)
			return nil
		},
	}
	createCmd.Flags().StringVar(&req.Title, "title", "", "book title")
	createCmd.Flags().StringVar(&req.FirstAuthor, "author", "", "first author")
	createCmd.Flags().StringVar(&req.ISBN, "isbn", "", "ISBN")
	for _, name := range []string{"title", "author", "isbn"} {
		_ = createCmd.MarkFlagRequired(name)
	}

	getCmd := &cobra.Command{
		Use:   "get [book_id]",
		Short: "Show a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := parseID("book", args[0])
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			book, err := opts.client().GetBook(ctx, bookID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Book %d: %s\n", book.ID, book.Title)
			fmt.Fprintf(out, "   Author: %s\n", book.FirstAuthor)
			fmt.Fprintf(out, "   ISBN: %s\n", book.ISBN)
			return nil
		},
	}

	cmd.AddCommand(createCmd, getCmd)
	return cmd
}
