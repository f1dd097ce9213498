package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job posting text file into structured JSON",
	Long:  "Parse a raw job posting text file into a structured job description JSON with extracted skills, requirements, and experience.",
	RunE:  runParseJob,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseTitle      string
	parseCompany    string
	parseVerbose    bool
)

func init() {
	parseJobCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to job posting text file (required)")
	parseJobCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (stdout when omitted)")
	parseJobCmd.Flags().StringVar(&parseTitle, "title", "", "Job title")
	parseJobCmd.Flags().StringVar(&parseCompany, "company", "", "Company name")
	parseJobCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a formatted summary alongside the JSON output")
	_ = parseJobCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(_ *cobra.Command, _ []string) error {
	jd, err := loadJobFromFile(parseInputFile, parseTitle, parseCompany)
	if err != nil {
		return err
	}

	if parseVerbose {
		observability.NewPrinter(os.Stderr).PrintJobDescription(&jd)
	}

	return writeJSON(parseOutputFile, jd)
}
