package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/server"
)

var (
	servePort     int
	serveConfig   string
	serveIndustry string
	servePolicy   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for parsing, matching, and resume analysis. The database and the Gemini API key are both optional: without a database match history is in-memory, and without an API key only the heuristic endpoints work.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveIndustry, "industry", "", "Default industry for role suggestions")
	serveCmd.Flags().StringVar(&servePolicy, "policy", "", "Skill classification policy (allow_overlap or exclusive_partial)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadConfigFile(serveConfig)
	if err != nil {
		return err
	}

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		Industry:    serveIndustry,
		Policy:      matching.Policy(servePolicy),
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fileCfg.DatabaseURL
	}
	if cfg.APIKey == "" {
		cfg.APIKey = fileCfg.APIKey
	}
	cfg.Model = fileCfg.Model
	if cfg.Industry == "" {
		cfg.Industry = fileCfg.Industry
	}
	if cfg.Policy == "" {
		cfg.Policy = matching.Policy(fileCfg.Policy)
	}
	if servePort == 8080 && fileCfg.Port != 0 {
		cfg.Port = fileCfg.Port
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	return srv.Start()
}
