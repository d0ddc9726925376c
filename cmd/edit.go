/*
Copyright © 2026 The quotetray authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewEditCmd creates the edit command with explicit dependencies.
func NewEditCmd(open storeOpener) *cobra.Command {
	if open == nil {
		panic("NewEditCmd: store opener cannot be nil")
	}

	var textFlag string
	var authorFlag string
	var categoryFlag string

	editCmd := &cobra.Command{
		Use:   "edit [OPTIONS] <number>",
		Short: "Edit an existing quote",
		Long: `quotetray edit - Edit an existing quote

USAGE:
    quotetray edit [OPTIONS] <number>

Fields not passed as options keep their current value. The rating is
always preserved.

OPTIONS:
    --text <text>         Replace the quote text
    --author <name>       Replace the attribution
    --category <name>     Replace the category
    -h, --help            Show this help`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			pos, err := parseQuoteNumber(args[0], s.Len())
			if err != nil {
				return err
			}
			q, err := s.Get(pos)
			if err != nil {
				return err
			}

			text, author, category := q.Text, q.Author, q.Category
			if cmd.Flags().Changed("text") {
				text = textFlag
			}
			if cmd.Flags().Changed("author") {
				author = authorFlag
			}
			if cmd.Flags().Changed("category") {
				category = categoryFlag
			}

			if err := s.Edit(pos, text, author, category); err != nil {
				return err
			}
			if err := s.SaveAll(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated quote #%d\n", pos+1)
			return nil
		},
	}

	editCmd.Flags().StringVar(&textFlag, "text", "", "Replace the quote text")
	editCmd.Flags().StringVar(&authorFlag, "author", "", "Replace the attribution")
	editCmd.Flags().StringVar(&categoryFlag, "category", "", "Replace the category")

	return editCmd
}
