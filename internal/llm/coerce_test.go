package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`, false},
		{"prose wrapped", `Sure! {"a": 1} There you go.`, `{"a": 1}`, false},
		{"nested braces", `prefix {"a": {"b": 2}} suffix`, `{"a": {"b": 2}}`, false},
		{"no object", "no json here", "", true},
		{"unbalanced", `{"a": 1`, "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var decodeErr *DecodeError
				assert.ErrorAs(t, err, &decodeErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceMatchReply_Idempotent(t *testing.T) {
	first, err := CoerceMatchReply(fullMatchReply)
	require.NoError(t, err)

	// Re-encode the coerced reply and run it through coercion again; a
	// well-formed reply must survive the round trip unchanged.
	reencoded, err := json.Marshal(map[string]any{
		"compatibility_score": first.CompatibilityScore,
		"matched_skills":      first.MatchedSkills,
		"partial_skills":      first.PartialSkills,
		"missing_skills":      first.MissingSkills,
		"feedback": map[string]any{
			"strengths":          first.Feedback.Strengths,
			"weaknesses":         first.Feedback.Weaknesses,
			"skill_score":        first.Feedback.SkillScore,
			"experience_score":   first.Feedback.ExperienceScore,
			"education_score":    first.Feedback.EducationScore,
			"overall_assessment": first.Feedback.OverallAssessment,
		},
		"recommendations": first.Recommendations,
	})
	require.NoError(t, err)

	second, err := CoerceMatchReply(string(reencoded))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCoerceMatchReply_EmptyObject(t *testing.T) {
	reply, err := CoerceMatchReply(`{}`)
	require.NoError(t, err)

	assert.Equal(t, 0, reply.CompatibilityScore)
	assert.Equal(t, []string{}, reply.MatchedSkills)
	assert.Equal(t, []string{}, reply.Feedback.Strengths)
	assert.Equal(t, "", reply.Feedback.OverallAssessment)
}

func TestCoerceAnalysisReply_SkipsMalformedRoleEntries(t *testing.T) {
	raw := `{"suggested_roles": [{"title": "Backend Engineer", "match_score": 70}]}`

	result, err := CoerceAnalysisReply(raw)
	require.NoError(t, err)

	require.Len(t, result.SuggestedRoles, 1)
	role := result.SuggestedRoles[0]
	assert.Equal(t, "Backend Engineer", role.Title)
	assert.Equal(t, 70, role.MatchScore)
	assert.Equal(t, []string{}, role.Reasons)
	assert.Empty(t, role.RecommendedCourses)
}
