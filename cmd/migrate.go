package cmd

import (
	"fmt"

	"github.com/podwatch/watchlist-api/internal/database"
	"github.com/podwatch/watchlist-api/internal/models"
	"github.com/podwatch/watchlist-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply the database schema for the Podcast Watchlist API.

The schema is managed through GORM auto-migration: running this command
creates or updates the podcast table to match the current model without
dropping existing data.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().Bool("dry-run", false, "show what would be migrated without making changes")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		fmt.Fprintf(out, "Would migrate models against %s:\n", cfg.Database.Path)
		fmt.Fprintln(out, "  • podcasts")
		return nil
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Podcast{}); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	fmt.Fprintln(out, "Migration complete")
	return nil
}
