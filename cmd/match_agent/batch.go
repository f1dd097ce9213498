package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score one resume against a directory of job postings",
	Long:  "Score a resume against every job posting text file in a directory concurrently and output the results ranked by compatibility score.",
	RunE:  runBatch,
}

var (
	batchResume      string
	batchJobsDir     string
	batchUserID      string
	batchPolicy      string
	batchConcurrency int
	batchOutput      string
)

// batchEntry pairs a match result with the job file it came from.
type batchEntry struct {
	File   string             `json:"file"`
	Result *types.MatchResult `json:"result"`
}

func init() {
	batchCmd.Flags().StringVarP(&batchResume, "resume", "r", "", "Path to resume text file (required)")
	batchCmd.Flags().StringVarP(&batchJobsDir, "jobs", "j", "", "Directory of job posting .txt files (required)")
	batchCmd.Flags().StringVar(&batchUserID, "user-id", "", "User identifier attached to the results")
	batchCmd.Flags().StringVar(&batchPolicy, "policy", "", "Skill classification policy (allow_overlap or exclusive_partial)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of job files to score in parallel")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output JSON file (stdout when omitted)")
	_ = batchCmd.MarkFlagRequired("resume")
	_ = batchCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	resume, err := loadResume(batchResume)
	if err != nil {
		return err
	}

	jobFiles, err := listJobFiles(batchJobsDir)
	if err != nil {
		return err
	}
	if len(jobFiles) == 0 {
		return fmt.Errorf("no .txt job files found in %s", batchJobsDir)
	}

	policy := matching.Policy(batchPolicy)

	var mu sync.Mutex
	entries := make([]batchEntry, 0, len(jobFiles))

	var g errgroup.Group
	g.SetLimit(batchConcurrency)
	for _, file := range jobFiles {
		g.Go(func() error {
			jd, err := loadJobFromFile(file, "", "")
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			result := scoring.CompileMatch(resume, jd, scoring.Options{
				UserID: batchUserID,
				Policy: policy,
			})

			mu.Lock()
			entries = append(entries, batchEntry{File: file, Result: result})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Best match first; file name breaks ties for stable output.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Result.CompatibilityScore != entries[j].Result.CompatibilityScore {
			return entries[i].Result.CompatibilityScore > entries[j].Result.CompatibilityScore
		}
		return entries[i].File < entries[j].File
	})

	for i, entry := range entries {
		_, _ = fmt.Fprintf(os.Stderr, "#%d  %3d  %s\n", i+1, entry.Result.CompatibilityScore, filepath.Base(entry.File))
	}

	return writeJSON(batchOutput, entries)
}

// listJobFiles returns the .txt files in dir, sorted by name.
func listJobFiles(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs directory: %w", err)
	}

	var files []string
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
