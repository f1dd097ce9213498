package scoring

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/courses"
	"github.com/jonathan/resume-matcher/internal/roles"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeResume_ProducesRankedRoles(t *testing.T) {
	analysis := AnalyzeResume(sampleResume(), "", roles.DefaultCatalog(), courses.Default())

	require.NotEmpty(t, analysis.SuggestedRoles)
	for i := 1; i < len(analysis.SuggestedRoles); i++ {
		assert.GreaterOrEqual(t,
			analysis.SuggestedRoles[i-1].MatchScore,
			analysis.SuggestedRoles[i].MatchScore,
			"roles not sorted descending")
	}
}

func TestAnalyzeResume_ScoresInRange(t *testing.T) {
	analysis := AnalyzeResume(sampleResume(), "web", roles.DefaultCatalog(), courses.Default())

	scores := []int{
		analysis.OverallScore,
		analysis.Breakdown.SkillScore,
		analysis.Breakdown.ExperienceScore,
		analysis.Breakdown.EducationScore,
	}
	for _, score := range scores {
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestAnalyzeResume_EmptyResumeStillSuggests(t *testing.T) {
	analysis := AnalyzeResume(&types.ParsedResume{}, "", roles.DefaultCatalog(), courses.Default())

	assert.NotEmpty(t, analysis.SuggestedRoles)
	assert.NotEmpty(t, analysis.Weaknesses)
}

func TestAnalyzeResume_StrengthsReflectResume(t *testing.T) {
	analysis := AnalyzeResume(sampleResume(), "", roles.DefaultCatalog(), courses.Default())

	require.NotEmpty(t, analysis.Strengths)
	assert.Contains(t, analysis.Strengths[0], "skill set")
}

func TestAnalyzeResume_Deterministic(t *testing.T) {
	a := AnalyzeResume(sampleResume(), "web", roles.DefaultCatalog(), courses.Default())
	b := AnalyzeResume(sampleResume(), "web", roles.DefaultCatalog(), courses.Default())
	assert.Equal(t, a, b)
}
