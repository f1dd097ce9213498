// Package main provides the entry point for the resume matcher CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Resume Matcher CLI and HTTP API Server",
	Long:  "Resume Matcher scores resumes against job descriptions, suggests alternative roles with course recommendations, and optionally runs an external Gemini analysis.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
