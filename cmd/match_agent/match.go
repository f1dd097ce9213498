package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long:  "Score a resume text file against a job posting (from a file or a URL) and output the match result as JSON. By default the deterministic heuristic scorer runs; pass --llm to use the external Gemini analysis instead.",
	RunE:  runMatch,
}

var (
	matchConfigFile string
	matchResume     string
	matchJob        string
	matchJobURL     string
	matchTitle      string
	matchCompany    string
	matchUserID     string
	matchPolicy     string
	matchUseLLM     bool
	matchAPIKey     string
	matchModel      string
	matchBrowser    bool
	matchVerbose    bool
	matchOutput     string
)

func init() {
	matchCmd.Flags().StringVar(&matchConfigFile, "config", "", "Path to JSON config file")
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume text file")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job posting text file")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch the job posting from")
	matchCmd.Flags().StringVar(&matchTitle, "title", "", "Job title (overrides the extracted title)")
	matchCmd.Flags().StringVar(&matchCompany, "company", "", "Company name (overrides the extracted company)")
	matchCmd.Flags().StringVar(&matchUserID, "user-id", "", "User identifier attached to the result")
	matchCmd.Flags().StringVar(&matchPolicy, "policy", "", "Skill classification policy (allow_overlap or exclusive_partial)")
	matchCmd.Flags().BoolVar(&matchUseLLM, "llm", false, "Use the external Gemini analysis instead of the heuristic scorer")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	matchCmd.Flags().StringVar(&matchModel, "model", "", "Gemini model name")
	matchCmd.Flags().BoolVar(&matchBrowser, "browser", false, "Render the job page in a headless browser when static fetch yields too little text")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted summary alongside the JSON output")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON file (stdout when omitted)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadConfigFile(matchConfigFile)
	if err != nil {
		return err
	}

	resumePath := matchResume
	if resumePath == "" {
		resumePath = fileCfg.Resume
	}
	jobPath := matchJob
	if jobPath == "" {
		jobPath = fileCfg.Job
	}
	jobURL := matchJobURL
	if jobURL == "" {
		jobURL = fileCfg.JobURL
	}
	userID := matchUserID
	if userID == "" {
		userID = fileCfg.UserID
	}
	policy := matchPolicy
	if policy == "" {
		policy = fileCfg.Policy
	}

	if jobPath != "" && jobURL != "" {
		return fmt.Errorf("cannot use --job with --job-url")
	}
	if jobPath == "" && jobURL == "" {
		return fmt.Errorf("must provide either --job or --job-url")
	}

	ctx := context.Background()

	resume, err := loadResume(resumePath)
	if err != nil {
		return err
	}

	var jd types.JobDescription
	if jobPath != "" {
		jd, err = loadJobFromFile(jobPath, matchTitle, matchCompany)
	} else {
		jd, err = loadJobFromURL(ctx, jobURL, matchTitle, matchCompany, matchBrowser || fileCfg.UseBrowser)
	}
	if err != nil {
		return err
	}

	var result *types.MatchResult
	if matchUseLLM {
		result, err = runExternalMatch(ctx, resume, jd, userID, fileCfg.APIKey, fileCfg.Model)
		if err != nil {
			return err
		}
	} else {
		result = scoring.CompileMatch(resume, jd, scoring.Options{
			UserID: userID,
			Policy: matching.Policy(policy),
		})
	}

	if matchVerbose || fileCfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobDescription(&jd)
		printer.PrintMatchResult(result)
	}

	return writeJSON(matchOutput, result)
}

func runExternalMatch(ctx context.Context, resume *types.ParsedResume, jd types.JobDescription, userID, fallbackKey, fallbackModel string) (*types.MatchResult, error) {
	apiKey := matchAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		apiKey = fallbackKey
	}

	model := matchModel
	if model == "" {
		model = fallbackModel
	}

	client, err := llm.NewGeminiClient(ctx, apiKey, model)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	return llm.AnalyzeMatch(ctx, client, resume, jd, userID)
}
