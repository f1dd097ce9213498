package scoring

import (
	"fmt"
	"strings"
)

// Score bands used across feedback and presentation.
const (
	bandExcellent = 80
	bandGood      = 60
)

// ScoreBand names the band a composite score falls into.
func ScoreBand(score int) string {
	switch {
	case score >= bandExcellent:
		return "excellent"
	case score >= bandGood:
		return "good"
	default:
		return "moderate"
	}
}

// generateStrengths builds the strengths list from matched skills and the
// composite score.
func generateStrengths(matchedCount, score int) []string {
	strengths := []string{}
	if matchedCount > 0 {
		strengths = append(strengths, fmt.Sprintf("Strong alignment with %d required skills", matchedCount))
	}
	if score >= bandExcellent {
		strengths = append(strengths, "Excellent overall compatibility with job requirements")
	} else if score >= bandGood {
		strengths = append(strengths, "Good foundation matching job requirements")
	}
	strengths = append(strengths, "Well-structured resume with clear experience progression")
	return strengths
}

// generateWeaknesses builds the weaknesses list from the missing skills.
func generateWeaknesses(missingCount int) []string {
	weaknesses := []string{}
	if missingCount > 0 {
		weaknesses = append(weaknesses, fmt.Sprintf("Missing %d key skills mentioned in job description", missingCount))
	}
	if missingCount > 5 {
		weaknesses = append(weaknesses, "Significant skill gaps that may need addressing")
	}
	return weaknesses
}

// generateAssessment produces the one-line overall assessment.
func generateAssessment(score int) string {
	switch ScoreBand(score) {
	case "excellent":
		return "Excellent match! Your resume strongly aligns with the job requirements."
	case "good":
		return "Good match with room for improvement. Consider addressing the missing skills."
	default:
		return "Moderate match. Focus on developing the missing skills and highlighting relevant experience."
	}
}

// generateRecommendations produces actionable recommendations from the
// missing skills and the composite score.
func generateRecommendations(missingSkills []string, score int) []string {
	recommendations := []string{}
	if len(missingSkills) > 0 {
		limit := min(3, len(missingSkills))
		recommendations = append(recommendations,
			fmt.Sprintf("Consider adding these skills to your resume: %s", strings.Join(missingSkills[:limit], ", ")))
	}
	if score < 70 {
		recommendations = append(recommendations,
			"Tailor your resume to better highlight relevant experience",
			"Use keywords from the job description in your resume")
	}
	recommendations = append(recommendations, "Quantify your achievements with specific metrics and results")
	return recommendations
}
