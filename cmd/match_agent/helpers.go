package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

// loadConfigFile loads and validates the optional JSON config file.
// Returns an empty config when no path is given.
func loadConfigFile(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

// loadResume reads and parses a resume text file.
func loadResume(path string) (*types.ParsedResume, error) {
	if path == "" {
		return nil, fmt.Errorf("resume file is required (use --resume)")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return nil, fmt.Errorf("resume file is empty: %s", path)
	}
	return parsing.ParseResumeText(string(content)), nil
}

// loadJobFromFile reads and parses a job posting text file.
func loadJobFromFile(path, title, company string) (types.JobDescription, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.JobDescription{}, fmt.Errorf("failed to read job file: %w", err)
	}
	return parsing.ParseJobDescription(title, company, string(content)), nil
}

// loadJobFromURL fetches a job posting URL, extracts the posting content,
// and parses it. Falls back to browser rendering when the static fetch
// yields too little text and the caller allows it.
func loadJobFromURL(ctx context.Context, url, title, company string, useBrowser bool) (types.JobDescription, error) {
	result, err := fetch.Posting(ctx, url, nil)
	if err != nil {
		return types.JobDescription{}, err
	}

	extracted, err := fetch.ExtractPosting(result.HTML)
	if err != nil {
		return types.JobDescription{}, err
	}

	if useBrowser && fetch.ShouldUseBrowser(extracted.Description) {
		html, err := fetch.RenderPosting(ctx, url, fetch.DefaultTimeout)
		if err != nil {
			return types.JobDescription{}, fmt.Errorf("browser rendering failed: %w", err)
		}
		if rendered, err := fetch.ExtractPosting(html); err == nil {
			extracted = rendered
		}
	}

	if title == "" {
		title = extracted.Title
	}
	if company == "" {
		company = extracted.Company
	}

	return parsing.ParseJobDescription(title, company, extracted.Description), nil
}

// writeJSON marshals v with indentation and writes it to the given path,
// or to stdout when the path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}
