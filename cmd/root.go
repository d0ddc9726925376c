/*
Copyright © 2026 The quotetray authors
*/
// Package cmd implements the quotetray command line interface.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quotetray/quotetray/internal/browser"
	"github.com/quotetray/quotetray/internal/clipboard"
	"github.com/quotetray/quotetray/internal/config"
	"github.com/quotetray/quotetray/internal/logging"
	"github.com/quotetray/quotetray/internal/search"
	"github.com/quotetray/quotetray/internal/settings"
	"github.com/quotetray/quotetray/internal/tui"
	"github.com/quotetray/quotetray/internal/version"
)

// rootCmd represents the base command. Called without a subcommand it
// starts the interactive browser.
var rootCmd = &cobra.Command{
	Use:   "quotetray",
	Short: "A pocket collection of quotes in your terminal.",
	Long:  `A pocket collection of quotes in your terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openBrowseStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		prefs := settings.Load()
		provider := search.NewProvider(config.Get("search_provider", "substring"))
		b := browser.New(s, provider, clipboard.NewSystemWriter(), nil)
		return tui.Run(b, s, prefs)
	},
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version.String()
	rootCmd.SilenceUsage = true
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		config.Load()
		// Logging failures never block the app.
		_ = logging.InitGlobal()
	}

	rootCmd.AddCommand(
		NewAddCmd(openStore),
		NewListCmd(openStore),
		NewEditCmd(openStore),
		NewRemoveCmd(openStore),
		NewRateCmd(openStore),
		NewImportCmd(openStore),
		NewExportCmd(openStore),
		NewStatsCmd(openStore),
		NewVersionCmd(),
	)
}
