package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/types"
)

const defaultResumeID = "current-resume"

// AnalyzeMatch runs the external job-match analysis: the resume and job
// description are sent as a structured prompt and the strict-JSON reply is
// decoded into a MatchResult. One attempt only; any failure surfaces as one
// of the boundary error kinds.
func AnalyzeMatch(ctx context.Context, client Client, resume *types.ParsedResume, jd types.JobDescription, userID string) (*types.MatchResult, error) {
	prompt, err := buildMatchPrompt(resume, jd)
	if err != nil {
		return nil, err
	}

	text, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	reply, err := CoerceMatchReply(raw)
	if err != nil {
		return nil, err
	}

	return &types.MatchResult{
		ID:                 uuid.NewString(),
		UserID:             userID,
		ResumeID:           defaultResumeID,
		JobDescription:     jd,
		CompatibilityScore: reply.CompatibilityScore,
		MatchedSkills:      reply.MatchedSkills,
		PartialSkills:      reply.PartialSkills,
		MissingSkills:      reply.MissingSkills,
		Feedback:           reply.Feedback,
		Recommendations:    reply.Recommendations,
		CreatedAt:          time.Now().UTC(),
	}, nil
}

// AnalyzeResume runs the external resume-only analysis variant.
func AnalyzeResume(ctx context.Context, client Client, resume *types.ParsedResume, industry string) (*types.ResumeAnalysisResult, error) {
	prompt, err := buildAnalysisPrompt(resume, industry)
	if err != nil {
		return nil, err
	}

	text, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	return CoerceAnalysisReply(raw)
}

func buildMatchPrompt(resume *types.ParsedResume, jd types.JobDescription) (string, error) {
	template, err := prompts.Get(prompts.AnalysisFile, prompts.KeyJobMatch)
	if err != nil {
		return "", err
	}

	resumeJSON, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode resume for prompt: %w", err)
	}
	jdJSON, err := json.MarshalIndent(jd, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode job description for prompt: %w", err)
	}

	return prompts.Format(template, map[string]string{
		"Resume":         string(resumeJSON),
		"JobDescription": string(jdJSON),
	}), nil
}

func buildAnalysisPrompt(resume *types.ParsedResume, industry string) (string, error) {
	template, err := prompts.Get(prompts.AnalysisFile, prompts.KeyResumeAnalysis)
	if err != nil {
		return "", err
	}

	resumeJSON, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode resume for prompt: %w", err)
	}
	if industry == "" {
		industry = "general"
	}

	return prompts.Format(template, map[string]string{
		"Resume":   string(resumeJSON),
		"Industry": industry,
	}), nil
}
