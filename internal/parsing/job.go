// Package parsing derives structured records from raw resume and job
// posting text. Extraction is deliberately keyword-based: the system is a
// demo-grade heuristic, not a language-understanding layer.
package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// skillKeywords is the fixed vocabulary scanned for in job descriptions.
// Keys are lowercase; matching is substring-based over the lowered text.
var skillKeywords = []string{
	"javascript", "react", "node", "python", "java", "sql", "git", "aws", "docker",
	"typescript", "angular", "vue", "express", "mongodb", "postgresql", "redis",
	"kubernetes", "jenkins", "terraform", "graphql", "rest api", "microservices",
	"agile", "scrum", "ci/cd", "devops", "machine learning", "ai", "data science",
}

// requirementMarkers flag sentences that state a requirement.
var requirementMarkers = []string{"require", "must have", "need"}

// maxRequirements caps how many requirement sentences are extracted.
const maxRequirements = 5

var (
	sentenceSplit   = regexp.MustCompile(`[.!?]`)
	experiencePhase = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*years?\s*(of\s+)?experience`)
)

// ParseJobDescription derives a JobDescription from a raw posting text.
// The derivation is deterministic: a keyword scan for skills, a sentence
// scan for requirement statements, and a regex for the years-of-experience
// phrase.
func ParseJobDescription(title, company, description string) types.JobDescription {
	lower := strings.ToLower(description)

	skills := []string{}
	for _, keyword := range skillKeywords {
		if strings.Contains(lower, keyword) {
			skills = append(skills, keyword)
		}
	}

	requirements := []string{}
	for _, sentence := range sentenceSplit.Split(description, -1) {
		if len(requirements) >= maxRequirements {
			break
		}
		lowered := strings.ToLower(sentence)
		for _, marker := range requirementMarkers {
			if strings.Contains(lowered, marker) {
				requirements = append(requirements, strings.TrimSpace(sentence))
				break
			}
		}
	}

	experienceRequired := "Not specified"
	if m := experiencePhase.FindStringSubmatch(description); m != nil {
		experienceRequired = m[1] + "+ years"
	}

	return types.JobDescription{
		Title:              title,
		Company:            company,
		Description:        description,
		Requirements:       requirements,
		Skills:             skills,
		ExperienceRequired: experienceRequired,
	}
}
