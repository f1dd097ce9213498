package scoring

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/courses"
	"github.com/jonathan/resume-matcher/internal/roles"
	"github.com/jonathan/resume-matcher/internal/types"
)

// AnalyzeResume runs the resume-only path: score the candidate's skill set
// against the role catalog and assemble an overall readiness result with
// ranked role suggestions.
func AnalyzeResume(resume *types.ParsedResume, industry string, catalog []roles.Role, courseCatalog courses.Catalog) *types.ResumeAnalysisResult {
	candidateSkills := resume.AllSkills()
	suggestions := roles.Suggest(candidateSkills, industry, catalog, courseCatalog)

	// Skill readiness is the best role fit; experience and education use the
	// same placeholder sub-scores as the job-match path.
	skillScore := 0
	if len(suggestions) > 0 {
		skillScore = suggestions[0].MatchScore
	}
	experienceScore := ExperiencePlaceholderScore(resume)
	educationScore := EducationPlaceholderScore(resume)

	overall := types.ClampScore(
		float64(skillScore)*skillWeight +
			float64(experienceScore)*experienceWeight +
			float64(educationScore)*educationWeight)

	return &types.ResumeAnalysisResult{
		OverallScore: overall,
		Breakdown: types.ScoreBreakdown{
			SkillScore:      skillScore,
			ExperienceScore: experienceScore,
			EducationScore:  educationScore,
		},
		Strengths:      analysisStrengths(resume, candidateSkills, suggestions),
		Weaknesses:     analysisWeaknesses(resume, candidateSkills, suggestions),
		SuggestedRoles: suggestions,
	}
}

// analysisStrengths derives strength statements from the resume shape and
// the best role fit.
func analysisStrengths(resume *types.ParsedResume, skills []string, suggestions []types.SuggestedRole) []string {
	strengths := []string{}
	if len(skills) >= 5 {
		strengths = append(strengths, fmt.Sprintf("Broad skill set covering %d distinct skills", len(skills)))
	}
	if len(suggestions) > 0 && suggestions[0].MatchScore >= bandExcellent {
		strengths = append(strengths, fmt.Sprintf("Strong readiness for %s roles", suggestions[0].Title))
	}
	if len(resume.Experience) >= 2 {
		strengths = append(strengths, fmt.Sprintf("Work history spans %d roles", len(resume.Experience)))
	}
	return strengths
}

// analysisWeaknesses derives improvement areas from gaps in the resume.
func analysisWeaknesses(resume *types.ParsedResume, skills []string, suggestions []types.SuggestedRole) []string {
	weaknesses := []string{}
	if len(skills) < 5 {
		weaknesses = append(weaknesses, "Few listed skills; add the technologies you have worked with")
	}
	if len(suggestions) > 0 && suggestions[0].MatchScore < bandGood {
		weaknesses = append(weaknesses, fmt.Sprintf("Closest role fit (%s) is still below a comfortable match", suggestions[0].Title))
	}
	if len(resume.Education) == 0 {
		weaknesses = append(weaknesses, "No education entries found on the resume")
	}
	return weaknesses
}
