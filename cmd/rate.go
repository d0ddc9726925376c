/*
Copyright © 2026 The quotetray authors
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quotetray/quotetray/internal/quote"
)

// NewRateCmd creates the rate command with explicit dependencies.
func NewRateCmd(open storeOpener) *cobra.Command {
	if open == nil {
		panic("NewRateCmd: store opener cannot be nil")
	}

	rateCmd := &cobra.Command{
		Use:   "rate <number> <stars>",
		Short: "Rate a quote from 0 to 5 stars",
		Long: `quotetray rate - Rate a quote from 0 to 5 stars

USAGE:
    quotetray rate <number> <stars>

A rating of 0 clears the rating.

OPTIONS:
    -h, --help            Show this help`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stars, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid rating %q", args[1])
			}

			s, err := open()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			pos, err := parseQuoteNumber(args[0], s.Len())
			if err != nil {
				return err
			}
			if err := s.Rate(pos, stars); err != nil {
				return err
			}
			if err := s.SaveAll(); err != nil {
				return err
			}

			if stars == quote.MinRating {
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared rating on quote #%d\n", pos+1)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Rated quote #%d: %d star(s)\n", pos+1, stars)
			}
			return nil
		},
	}

	return rateCmd
}
