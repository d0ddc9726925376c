/*
Copyright © 2026 The quotetray authors
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quotetray/quotetray/internal/quote"
)

// NewAddCmd creates the add command with explicit dependencies.
func NewAddCmd(open storeOpener) *cobra.Command {
	if open == nil {
		panic("NewAddCmd: store opener cannot be nil")
	}

	var authorFlag string
	var categoryFlag string
	var ratingFlag int

	addCmd := &cobra.Command{
		Use:   "add [OPTIONS] <text>",
		Short: "Add a quote to the collection",
		Long: `quotetray add - Add a quote to the collection

USAGE:
    quotetray add [OPTIONS] <text>

OPTIONS:
    --author <name>       Attribution for the quote
    --category <name>     Category label
    --rating <0-5>        Initial star rating
    -h, --help            Show this help`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("add requires quote text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			text := strings.Join(args, " ")
			pos, err := s.Add(text, authorFlag, categoryFlag)
			if err != nil {
				return err
			}
			if ratingFlag != quote.MinRating {
				if err := s.Rate(pos, ratingFlag); err != nil {
					return err
				}
			}
			if err := s.SaveAll(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added quote #%d\n", pos+1)
			return nil
		},
	}

	addCmd.Flags().StringVar(&authorFlag, "author", "", "Attribution for the quote")
	addCmd.Flags().StringVar(&categoryFlag, "category", "", "Category label")
	addCmd.Flags().IntVar(&ratingFlag, "rating", quote.MinRating, "Initial star rating (0-5)")

	return addCmd
}
