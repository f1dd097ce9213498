package types

import "time"

// MatchResult records a single resume-to-job scoring run.
// It is created by the match compiler (or coerced from an external analysis
// reply) and is immutable afterwards.
type MatchResult struct {
	ID                 string         `json:"id"`
	UserID             string         `json:"user_id"`
	ResumeID           string         `json:"resume_id"`
	JobDescription     JobDescription `json:"job_description"`
	CompatibilityScore int            `json:"compatibility_score"`
	MatchedSkills      []string       `json:"matched_skills"`
	PartialSkills      []string       `json:"partial_skills"`
	MissingSkills      []string       `json:"missing_skills"`
	Feedback           MatchFeedback  `json:"feedback"`
	Recommendations    []string       `json:"recommendations"`
	CreatedAt          time.Time      `json:"created_at"`
}

// MatchFeedback holds the sub-scores and generated textual feedback for a match.
type MatchFeedback struct {
	Strengths         []string `json:"strengths"`
	Weaknesses        []string `json:"weaknesses"`
	SkillScore        int      `json:"skill_score"`
	ExperienceScore   int      `json:"experience_score"`
	EducationScore    int      `json:"education_score"`
	OverallAssessment string   `json:"overall_assessment"`
}

// ClampScore rounds a raw score to the nearest integer and clamps it to
// [0,100]. Every score field in the system passes through this.
func ClampScore(raw float64) int {
	n := int(raw + 0.5)
	if raw < 0 {
		n = int(raw - 0.5)
	}
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
