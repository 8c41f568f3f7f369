package cmd

import (
	"fmt"
	"os"

	"github.com/podwatch/watchlist-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "watchlist-api",
	Short: "Podcast Watchlist API server",
	Long: `Podcast Watchlist API - a shared podcast watchlist with PIN-protected editing

The server exposes a JSON REST API for adding, browsing, searching and
filtering podcast entries. Every entry is protected by a 4-digit PIN that
must be supplied to edit or delete it; there are no user accounts.

Features:
  • Podcast CRUD with per-entry PIN authorization
  • Full-text search over title, host and description
  • Category filtering, sorting and field selection
  • Per-category rating statistics`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig loads the configuration lazily, skipping commands that don't need it
func initConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
