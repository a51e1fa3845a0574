package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-assessor/internal/analysis"
	"github.com/jonathan/candidate-assessor/internal/db"
	"github.com/jonathan/candidate-assessor/internal/llm"
	"github.com/jonathan/candidate-assessor/internal/observability"
	"github.com/jonathan/candidate-assessor/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a completed assessment",
	Long:  "Runs the full scoring pipeline over a completed assessment: WILL and SKILL breakdowns, quadrant classification, role recommendations, and the AI narrative. The result is persisted to the database.",
	RunE:  runAnalyze,
}

var (
	analyzeID         string
	analyzeConfigPath string
	analyzeForce      bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeID, "id", "", "Assessment ID (required)")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeForce, "force", false, "Replace an existing result")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print the full scoring breakdown")

	if err := analyzeCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	assessmentID, err := uuid.Parse(analyzeID)
	if err != nil {
		return fmt.Errorf("invalid assessment ID %q: %w", analyzeID, err)
	}

	cfg, err := resolveConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	if analyzeVerbose {
		cfg.Verbose = true
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	logger := zap.NewNop()
	if cfg.Verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync()
	}

	runner := pipeline.NewRunner(database, analysis.NewLLMAnalyzer(client), logger)

	result, err := runner.Analyze(ctx, assessmentID, analyzeForce)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResult(result)
	if cfg.Verbose {
		printer.PrintBreakdown(result)
		printer.PrintInsights(result.KeyInsights)
	}

	return nil
}
