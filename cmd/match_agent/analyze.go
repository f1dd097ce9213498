package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/courses"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/roles"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume and suggest alternative roles",
	Long:  "Analyze a resume text file without a job description: score overall readiness, suggest matching roles for the target industry, and recommend courses for the skill gaps.",
	RunE:  runAnalyze,
}

var (
	analyzeConfigFile string
	analyzeResume     string
	analyzeIndustry   string
	analyzeUseLLM     bool
	analyzeAPIKey     string
	analyzeModel      string
	analyzeVerbose    bool
	analyzeOutput     string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCmd.Flags().StringVar(&analyzeIndustry, "industry", "", "Target industry for role suggestions")
	analyzeCmd.Flags().BoolVar(&analyzeUseLLM, "llm", false, "Use the external Gemini analysis instead of the heuristic scorer")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Gemini model name")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted summary alongside the JSON output")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output JSON file (stdout when omitted)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadConfigFile(analyzeConfigFile)
	if err != nil {
		return err
	}

	resumePath := analyzeResume
	if resumePath == "" {
		resumePath = fileCfg.Resume
	}
	industry := analyzeIndustry
	if industry == "" {
		industry = fileCfg.Industry
	}

	resume, err := loadResume(resumePath)
	if err != nil {
		return err
	}

	var result *types.ResumeAnalysisResult
	if analyzeUseLLM {
		result, err = runExternalAnalysis(context.Background(), resume, industry, fileCfg.APIKey, fileCfg.Model)
		if err != nil {
			return err
		}
	} else {
		result = scoring.AnalyzeResume(resume, industry, roles.DefaultCatalog(), courses.Default())
	}

	if analyzeVerbose || fileCfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintAnalysis(result)
	}

	return writeJSON(analyzeOutput, result)
}

func runExternalAnalysis(ctx context.Context, resume *types.ParsedResume, industry, fallbackKey, fallbackModel string) (*types.ResumeAnalysisResult, error) {
	apiKey := analyzeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		apiKey = fallbackKey
	}

	model := analyzeModel
	if model == "" {
		model = fallbackModel
	}

	client, err := llm.NewGeminiClient(ctx, apiKey, model)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	return llm.AnalyzeResume(ctx, client, resume, industry)
}
