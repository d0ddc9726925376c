/*
Copyright © 2026 The quotetray authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRemoveCmd creates the remove command with explicit dependencies.
func NewRemoveCmd(open storeOpener) *cobra.Command {
	if open == nil {
		panic("NewRemoveCmd: store opener cannot be nil")
	}

	removeCmd := &cobra.Command{
		Use:     "remove <number>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a quote from the collection",
		Long: `quotetray remove - Remove a quote from the collection

USAGE:
    quotetray remove <number>

OPTIONS:
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
			if err := s.Delete(pos); err != nil {
				return err
			}
			if err := s.SaveAll(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed quote #%d\n", pos+1)
			return nil
		},
	}

	return removeCmd
}
