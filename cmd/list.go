/*
Copyright © 2026 The quotetray authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quotetray/quotetray/internal/config"
	"github.com/quotetray/quotetray/internal/quote"
	"github.com/quotetray/quotetray/internal/search"
)

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(open storeOpener) *cobra.Command {
	if open == nil {
		panic("NewListCmd: store opener cannot be nil")
	}

	var categoryFlag string
	var keywordFlag string

	listCmd := &cobra.Command{
		Use:   "list [OPTIONS]",
		Short: "List quotes in the collection",
		Long: `quotetray list - List quotes in the collection

USAGE:
    quotetray list [OPTIONS]

OPTIONS:
    --category <name>     Only show quotes in this category ("all" for every category)
    --keyword <query>     Only show quotes matching this keyword
    -h, --help            Show this help`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			filter := quote.Filter{Category: categoryFlag, Keyword: keywordFlag}
			provider := search.NewProvider(config.Get("search_provider", "substring"))

			// Numbers are full-collection positions so they stay valid
			// as arguments to edit/remove/rate even when filtered.
			shown := 0
			for pos, q := range s.All() {
				if !filter.Matches(q, provider) {
					continue
				}
				fmt.Fprint(cmd.OutOrStdout(), formatQuoteLine(pos+1, q))
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No quotes found")
			}
			return nil
		},
	}

	listCmd.Flags().StringVar(&categoryFlag, "category", "", "Only show quotes in this category")
	listCmd.Flags().StringVar(&keywordFlag, "keyword", "", "Only show quotes matching this keyword")

	return listCmd
}

// formatQuoteLine renders one quote as a numbered list entry.
func formatQuoteLine(number int, q quote.Quote) string {
	line := fmt.Sprintf("%3d. %s", number, q.Text)
	if q.Author != "" {
		line += " — " + q.Author
	}
	if q.Category != "" {
		line += " [" + q.Category + "]"
	}
	if q.IsRated() {
		line += " " + q.Stars()
	}
	return line + "\n"
}
