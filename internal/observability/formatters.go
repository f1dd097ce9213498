// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

func writeSkillList(sb *strings.Builder, label string, skills []string) {
	if len(skills) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}
}

// PrintJobDescription outputs a human-readable summary of the parsed job posting.
func (p *Printer) PrintJobDescription(jd *types.JobDescription) {
	if jd == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", jd.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", jd.Company))
	if jd.ExperienceRequired != "" {
		sb.WriteString(fmt.Sprintf("Experience: %s\n", jd.ExperienceRequired))
	}
	sb.WriteString("\n")

	writeSkillList(&sb, "Skills", jd.Skills)

	if len(jd.Requirements) > 0 {
		sb.WriteString("\nRequirements:\n")
		count := min(len(jd.Requirements), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(jd.Requirements[i], 50)))
		}
		if len(jd.Requirements) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(jd.Requirements)-3))
		}
	}

	p.printBox("PARSED JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the compatibility score with the skill lists and
// feedback sub-scores.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Compatibility: %d/100\n", result.CompatibilityScore))
	sb.WriteString(fmt.Sprintf("  Skills:     %d\n", result.Feedback.SkillScore))
	sb.WriteString(fmt.Sprintf("  Experience: %d\n", result.Feedback.ExperienceScore))
	sb.WriteString(fmt.Sprintf("  Education:  %d\n", result.Feedback.EducationScore))
	sb.WriteString("\n")

	writeSkillList(&sb, "Matched", result.MatchedSkills)
	writeSkillList(&sb, "Partial", result.PartialSkills)
	writeSkillList(&sb, "Missing", result.MissingSkills)

	if result.Feedback.OverallAssessment != "" {
		sb.WriteString("\n")
		sb.WriteString(truncate(result.Feedback.OverallAssessment, 54))
		sb.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(result.Recommendations), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(result.Recommendations[i], 50)))
		}
		if len(result.Recommendations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Recommendations)-3))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the resume-only analysis with suggested roles and
// their course recommendations.
func (p *Printer) PrintAnalysis(result *types.ResumeAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall: %d/100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("  Skills:     %d\n", result.Breakdown.SkillScore))
	sb.WriteString(fmt.Sprintf("  Experience: %d\n", result.Breakdown.ExperienceScore))
	sb.WriteString(fmt.Sprintf("  Education:  %d\n", result.Breakdown.EducationScore))
	sb.WriteString("\n")

	writeSkillList(&sb, "Strengths", result.Strengths)
	writeSkillList(&sb, "Weaknesses", result.Weaknesses)

	if len(result.SuggestedRoles) > 0 {
		sb.WriteString("\nSuggested Roles:\n")
		count := min(len(result.SuggestedRoles), maxItemsToShow)
		for i := 0; i < count; i++ {
			role := result.SuggestedRoles[i]
			sb.WriteString(fmt.Sprintf("#%d  %s (%d)\n", i+1, role.Title, role.MatchScore))
			if len(role.Reasons) > 0 {
				sb.WriteString(fmt.Sprintf("    %s\n", truncate(role.Reasons[0], 48)))
			}
			if len(role.RecommendedCourses) > 0 {
				sb.WriteString(fmt.Sprintf("    Courses: %d suggested\n", len(role.RecommendedCourses)))
			}
		}
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCourses outputs course recommendations grouped as a flat list.
func (p *Printer) PrintCourses(recommendations []types.CourseRecommendation) {
	if len(recommendations) == 0 {
		p.printBox("COURSE RECOMMENDATIONS", "No courses found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d courses:\n\n", len(recommendations)))

	count := min(len(recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		course := recommendations[i]
		sb.WriteString(fmt.Sprintf("• %s\n", truncate(course.Title, 50)))
		sb.WriteString(fmt.Sprintf("  %s [%s]\n", course.Provider, course.Skill))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more courses", len(recommendations)-maxItemsToShow))
	}

	p.printBox("COURSE RECOMMENDATIONS", sb.String())
}
