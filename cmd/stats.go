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

// NewStatsCmd creates the stats command with explicit dependencies.
func NewStatsCmd(open storeOpener) *cobra.Command {
	if open == nil {
		panic("NewStatsCmd: store opener cannot be nil")
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		Long: `quotetray stats - Show collection statistics

USAGE:
    quotetray stats

OPTIONS:
    -h, --help            Show this help`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			stats := quote.Collect(s.All())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Quotes:     %d\n", stats.Total)
			fmt.Fprintf(out, "Categories: %d\n", stats.Categories)
			fmt.Fprintf(out, "Authors:    %d\n", stats.Authors)
			fmt.Fprintf(out, "Rated:      %d\n", stats.Rated)

			if names := quote.CategoryNames(s.All()); len(names) > 0 {
				fmt.Fprintf(out, "\nCategory names: %s\n", strings.Join(names, ", "))
			}
			return nil
		},
	}

	return statsCmd
}
