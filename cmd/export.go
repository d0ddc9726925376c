/*
Copyright © 2026 The quotetray authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quotetray/quotetray/internal/codec"
)

// NewExportCmd creates the export command with explicit dependencies.
func NewExportCmd(open storeOpener) *cobra.Command {
	if open == nil {
		panic("NewExportCmd: store opener cannot be nil")
	}

	exportCmd := &cobra.Command{
		Use:   "export [file.csv]",
		Short: "Export quotes to CSV",
		Long: `quotetray export - Export quotes to CSV

USAGE:
    quotetray export [file.csv]

Without a file argument the CSV is written to stdout.

OPTIONS:
    -h, --help            Show this help`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if len(args) == 0 {
				return codec.Export(cmd.OutOrStdout(), s.All())
			}

			if err := codec.ExportFile(args[0], s.All()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d quote(s) to %s\n", s.Len(), args[0])
			return nil
		},
	}

	return exportCmd
}
