package types

// ResumeAnalysisResult is the resume-only analysis variant: an overall
// readiness score with a three-way breakdown and ranked role suggestions.
type ResumeAnalysisResult struct {
	OverallScore   int             `json:"overall_score"`
	Breakdown      ScoreBreakdown  `json:"breakdown"`
	Strengths      []string        `json:"strengths"`
	Weaknesses     []string        `json:"weaknesses"`
	SuggestedRoles []SuggestedRole `json:"suggested_roles"`
}

// ScoreBreakdown splits a composite score into its three components.
type ScoreBreakdown struct {
	SkillScore      int `json:"skill_score"`
	ExperienceScore int `json:"experience_score"`
	EducationScore  int `json:"education_score"`
}

// SuggestedRole is a single ranked role suggestion with supporting reasons
// and course recommendations for the gaps.
type SuggestedRole struct {
	Title              string                 `json:"title"`
	MatchScore         int                    `json:"match_score"`
	Reasons            []string               `json:"reasons"`
	RecommendedCourses []CourseRecommendation `json:"recommended_courses"`
}

// CourseRecommendation is one external learning resource tied to a skill gap.
type CourseRecommendation struct {
	Title    string `json:"title"`
	Provider string `json:"provider"`
	URL      string `json:"url"`
	Skill    string `json:"skill"`
}
