package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/daybook/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run database migrations",
	Long: `Run database migrations.

Without arguments, runs all pending migrations (up).
With a version number, migrates down to that version.

Examples:
  daybook migrate           # Run all pending migrations
  daybook migrate 1         # Roll back to version 1
  daybook migrate 0         # Roll back all migrations
  daybook migrate --status  # Show the current schema version`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

var migrateStatus bool

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "Show current schema version and exit")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	db, _, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if migrateStatus {
		if err := migrate.EnsureMigrationsTable(ctx, db); err != nil {
			return fmt.Errorf("failed to create migrations table: %w", err)
		}
		version, dirty, err := migrate.CurrentVersion(ctx, db)
		if err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}
		fmt.Printf("Current version: %d\n", version)
		if dirty {
			fmt.Println("WARNING: database is in dirty state, manual intervention required")
		}
		return nil
	}

	if len(args) == 0 {
		if err := migrate.RunAll(ctx, db); err != nil {
			return err
		}
	} else {
		target, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version number: %s", args[0])
		}
		if err := migrate.RunDownTo(ctx, db, target); err != nil {
			return err
		}
	}

	version, _, err := migrate.CurrentVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	fmt.Printf("Migrated to version %d\n", version)
	return nil
}
