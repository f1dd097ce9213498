package llm

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ExtractJSON locates the JSON object in reply text. Direct parse is tried
// first; when the model wrapped the object in prose, the region between the
// first '{' and the last '}' is used instead.
func ExtractJSON(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return trimmed, nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return "", &DecodeError{Raw: text}
	}

	candidate := trimmed[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", &DecodeError{Raw: text}
	}
	return candidate, nil
}

// CoerceMatchReply validates and decodes a job-match reply into a
// MatchFeedback-bearing partial result. Fields absent from the reply default
// to zero values and empty slices; fields present with the wrong type fail
// validation and surface as a DecodeError naming the offending field.
func CoerceMatchReply(raw string) (*MatchReply, error) {
	if err := schemas.ValidateMatchReply(raw); err != nil {
		return nil, &DecodeError{Raw: raw, Cause: err}
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &DecodeError{Raw: raw, Cause: err}
	}

	feedback := asObject(parsed["feedback"])
	reply := &MatchReply{
		CompatibilityScore: toInt(parsed["compatibility_score"]),
		MatchedSkills:      toStringSlice(parsed["matched_skills"]),
		PartialSkills:      toStringSlice(parsed["partial_skills"]),
		MissingSkills:      toStringSlice(parsed["missing_skills"]),
		Feedback: types.MatchFeedback{
			Strengths:         toStringSlice(feedback["strengths"]),
			Weaknesses:        toStringSlice(feedback["weaknesses"]),
			SkillScore:        toInt(feedback["skill_score"]),
			ExperienceScore:   toInt(feedback["experience_score"]),
			EducationScore:    toInt(feedback["education_score"]),
			OverallAssessment: toString(feedback["overall_assessment"]),
		},
		Recommendations: toStringSlice(parsed["recommendations"]),
	}
	return reply, nil
}

// MatchReply is the typed, coerced form of a job-match reply before it is
// stamped into a MatchResult.
type MatchReply struct {
	CompatibilityScore int
	MatchedSkills      []string
	PartialSkills      []string
	MissingSkills      []string
	Feedback           types.MatchFeedback
	Recommendations    []string
}

// CoerceAnalysisReply validates and decodes a resume-only analysis reply.
func CoerceAnalysisReply(raw string) (*types.ResumeAnalysisResult, error) {
	if err := schemas.ValidateAnalysisReply(raw); err != nil {
		return nil, &DecodeError{Raw: raw, Cause: err}
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &DecodeError{Raw: raw, Cause: err}
	}

	breakdown := asObject(parsed["breakdown"])
	result := &types.ResumeAnalysisResult{
		OverallScore: toInt(parsed["overall_score"]),
		Breakdown: types.ScoreBreakdown{
			SkillScore:      toInt(breakdown["skill_score"]),
			ExperienceScore: toInt(breakdown["experience_score"]),
			EducationScore:  toInt(breakdown["education_score"]),
		},
		Strengths:      toStringSlice(parsed["strengths"]),
		Weaknesses:     toStringSlice(parsed["weaknesses"]),
		SuggestedRoles: toSuggestedRoles(parsed["suggested_roles"]),
	}
	return result, nil
}

func toSuggestedRoles(v any) []types.SuggestedRole {
	items, ok := v.([]any)
	if !ok {
		return []types.SuggestedRole{}
	}
	roles := make([]types.SuggestedRole, 0, len(items))
	for _, item := range items {
		obj := asObject(item)
		if obj == nil {
			continue
		}
		roles = append(roles, types.SuggestedRole{
			Title:              toString(obj["title"]),
			MatchScore:         toInt(obj["match_score"]),
			Reasons:            toStringSlice(obj["reasons"]),
			RecommendedCourses: toCourses(obj["recommended_courses"]),
		})
	}
	return roles
}

func toCourses(v any) []types.CourseRecommendation {
	items, ok := v.([]any)
	if !ok {
		return []types.CourseRecommendation{}
	}
	courses := make([]types.CourseRecommendation, 0, len(items))
	for _, item := range items {
		obj := asObject(item)
		if obj == nil {
			continue
		}
		courses = append(courses, types.CourseRecommendation{
			Title:    toString(obj["title"]),
			Provider: toString(obj["provider"]),
			URL:      toString(obj["url"]),
			Skill:    toString(obj["skill"]),
		})
	}
	return courses
}

func asObject(v any) map[string]any {
	obj, _ := v.(map[string]any)
	return obj
}

// toInt rounds a numeric field and clamps it to [0,100]. Missing or
// non-numeric values become zero.
func toInt(v any) int {
	n, ok := v.(float64)
	if !ok {
		return 0
	}
	return types.ClampScore(n)
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}

// toStringSlice coerces an array field to []string. Missing or non-array
// values become an empty slice, never nil, so JSON round-trips emit [].
func toStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
