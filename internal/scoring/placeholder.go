// Package scoring assembles match results from skill classification,
// sub-scores, and templated feedback.
package scoring

import (
	"hash/fnv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Placeholder sub-score bands. These mirror the bands the product used
// before real experience/education analysis existed.
const (
	experienceFloor = 70
	experienceSpan  = 31 // [70,100]
	educationFloor  = 80
	educationSpan   = 21 // [80,100]
)

// ExperiencePlaceholderScore produces a stand-in experience sub-score in
// [70,100]. There is no real experience analysis yet; the value is a
// deterministic function of the resume's experience entries so repeated
// runs on the same input agree. TODO: replace with duration-based scoring
// once parsed durations are normalized to month counts.
func ExperiencePlaceholderScore(resume *types.ParsedResume) int {
	var sb strings.Builder
	for _, exp := range resume.Experience {
		sb.WriteString(exp.Title)
		sb.WriteString(exp.Company)
		sb.WriteString(exp.Duration)
	}
	return experienceFloor + hashMod(sb.String(), experienceSpan)
}

// EducationPlaceholderScore produces a stand-in education sub-score in
// [80,100], deterministic in the resume's education entries.
func EducationPlaceholderScore(resume *types.ParsedResume) int {
	var sb strings.Builder
	for _, edu := range resume.Education {
		sb.WriteString(edu.Degree)
		sb.WriteString(edu.Institution)
		sb.WriteString(edu.Year)
	}
	return educationFloor + hashMod(sb.String(), educationSpan)
}

// hashMod maps a string into [0,span) via FNV-1a.
func hashMod(s string, span int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return int(h.Sum32() % uint32(span))
}
