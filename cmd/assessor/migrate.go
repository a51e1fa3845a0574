package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-assessor/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  "Applies all pending schema migrations to the configured database. Use --down to roll back the most recent migration instead.",
	RunE:  runMigrate,
}

var (
	migrateConfigPath string
	migrateDown       bool
)

func init() {
	migrateCmd.Flags().StringVar(&migrateConfigPath, "config", "", "Path to JSON config file")
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back the most recent migration")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(migrateConfigPath)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if migrateDown {
		if err := db.MigrateDown(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("migration rollback failed: %w", err)
		}
		fmt.Println("Rolled back one migration")
		return nil
	}

	if err := db.MigrateUp(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	fmt.Println("Migrations applied")
	return nil
}
