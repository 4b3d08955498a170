// Package main provides the entry point for the CV Generator HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_generator",
	Short: "CV Generator HTTP API Server",
	Long:  "CV Generator assembles recruiter-branded, optionally anonymized CV documents from structured candidate data and publishes them to object storage via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
