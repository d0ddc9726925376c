/*
Copyright © 2026 The quotetray authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quotetray/quotetray/internal/codec"
)

// NewImportCmd creates the import command with explicit dependencies.
func NewImportCmd(open storeOpener) *cobra.Command {
	if open == nil {
		panic("NewImportCmd: store opener cannot be nil")
	}

	var replaceFlag bool

	importCmd := &cobra.Command{
		Use:   "import [OPTIONS] <file.csv>",
		Short: "Import quotes from a CSV file",
		Long: `quotetray import - Import quotes from a CSV file

USAGE:
    quotetray import [OPTIONS] <file.csv>

The file must carry the header "text,author,category,rating". Imported
quotes are appended to the collection; a malformed file is rejected as a
whole and the collection is left unchanged.

OPTIONS:
    --replace             Replace the collection instead of appending
    -h, --help            Show this help`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quotes, err := codec.ImportFile(args[0])
			if err != nil {
				return err
			}

			s, err := open()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			n, err := s.Import(quotes, replaceFlag)
			if err != nil {
				return err
			}
			if err := s.SaveAll(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d quote(s)\n", n)
			return nil
		},
	}

	importCmd.Flags().BoolVar(&replaceFlag, "replace", false, "Replace the collection instead of appending")

	return importCmd
}
