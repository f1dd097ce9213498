package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch a job posting URL and parse it into structured JSON",
	Long:  "Fetch a job posting from a URL, extract the posting content from the page, and parse it into a structured job description JSON. Use --browser for job boards that render client-side.",
	RunE:  runIngest,
}

var (
	ingestURL     string
	ingestTitle   string
	ingestCompany string
	ingestBrowser bool
	ingestVerbose bool
	ingestOutput  string
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "Job posting URL (required)")
	ingestCmd.Flags().StringVar(&ingestTitle, "title", "", "Job title (overrides the extracted title)")
	ingestCmd.Flags().StringVar(&ingestCompany, "company", "", "Company name (overrides the extracted company)")
	ingestCmd.Flags().BoolVar(&ingestBrowser, "browser", false, "Render the page in a headless browser when static fetch yields too little text")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print a formatted summary alongside the JSON output")
	ingestCmd.Flags().StringVarP(&ingestOutput, "out", "o", "", "Path to output JSON file (stdout when omitted)")
	_ = ingestCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	jd, err := loadJobFromURL(context.Background(), ingestURL, ingestTitle, ingestCompany, ingestBrowser)
	if err != nil {
		return err
	}

	if ingestVerbose {
		observability.NewPrinter(os.Stderr).PrintJobDescription(&jd)
	}

	return writeJSON(ingestOutput, jd)
}
