// Package main provides the entry point for the candidate assessment service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "assessor",
	Short: "Candidate Assessment HTTP API Server",
	Long:  "Assessor scores candidate questionnaire responses along WILL and SKILL dimensions, classifies candidates into readiness quadrants, and generates role recommendations via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
