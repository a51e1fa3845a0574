package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-assessor/internal/db"
)

var verticalsCmd = &cobra.Command{
	Use:   "verticals",
	Short: "Manage the vertical catalog",
}

var verticalsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the default program areas",
	Long:  "Inserts the default vertical catalog into the database. Entries that already exist are left untouched.",
	RunE:  runVerticalsSeed,
}

var verticalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the vertical catalog",
	RunE:  runVerticalsList,
}

var verticalsConfigPath string

func init() {
	verticalsCmd.PersistentFlags().StringVar(&verticalsConfigPath, "config", "", "Path to JSON config file")
	verticalsCmd.AddCommand(verticalsSeedCmd)
	verticalsCmd.AddCommand(verticalsListCmd)
	rootCmd.AddCommand(verticalsCmd)
}

func verticalsDB(ctx context.Context) (*db.DB, error) {
	cfg, err := resolveConfig(verticalsConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return db.Connect(ctx, cfg.DatabaseURL)
}

func runVerticalsSeed(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	database, err := verticalsDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	inserted, err := database.SeedVerticals(ctx)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	fmt.Printf("Seeded %d verticals\n", inserted)
	return nil
}

func runVerticalsList(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	database, err := verticalsDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	verticals, err := database.ListVerticals(ctx, false)
	if err != nil {
		return err
	}
	for _, v := range verticals {
		status := "active"
		if !v.Active {
			status = "inactive"
		}
		fmt.Printf("%s  %-20s %-9s %s\n", v.ID, v.Name, status, v.Description)
	}
	return nil
}
