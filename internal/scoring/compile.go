package scoring

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Composite score weights: skills carry half the score, experience and
// education the rest.
const (
	skillWeight      = 0.5
	experienceWeight = 0.3
	educationWeight  = 0.2
)

// Options configures a compile run.
type Options struct {
	UserID   string
	ResumeID string
	Policy   matching.Policy
}

// CompileMatch runs the heuristic job-description path: classify skills,
// derive the sub-scores, compose the compatibility score, and generate the
// textual feedback. The returned MatchResult is freshly allocated and
// immutable by convention.
func CompileMatch(resume *types.ParsedResume, jd types.JobDescription, opts Options) *types.MatchResult {
	if opts.ResumeID == "" {
		opts.ResumeID = "current-resume"
	}
	if opts.Policy == "" {
		opts.Policy = matching.PolicyAllowOverlap
	}

	cls := matching.Classify(resume.Skills, jd.Skills, opts.Policy)

	skillScore := computeSkillScore(len(cls.Matched), len(cls.Partial), len(jd.Skills))
	experienceScore := ExperiencePlaceholderScore(resume)
	educationScore := EducationPlaceholderScore(resume)

	compatibility := types.ClampScore(
		float64(skillScore)*skillWeight +
			float64(experienceScore)*experienceWeight +
			float64(educationScore)*educationWeight)

	return &types.MatchResult{
		ID:                 uuid.NewString(),
		UserID:             opts.UserID,
		ResumeID:           opts.ResumeID,
		JobDescription:     jd,
		CompatibilityScore: compatibility,
		MatchedSkills:      cls.Matched,
		PartialSkills:      cls.Partial,
		MissingSkills:      cls.Missing,
		Feedback: types.MatchFeedback{
			Strengths:         generateStrengths(len(cls.Matched), compatibility),
			Weaknesses:        generateWeaknesses(len(cls.Missing)),
			SkillScore:        skillScore,
			ExperienceScore:   experienceScore,
			EducationScore:    educationScore,
			OverallAssessment: generateAssessment(compatibility),
		},
		Recommendations: generateRecommendations(cls.Missing, compatibility),
		CreatedAt:       time.Now().UTC(),
	}
}

// computeSkillScore scores skill overlap: matched skills count fully,
// partial skills half, normalized by the job's skill count and capped at 100.
// A job with no extracted skills scores zero rather than dividing by zero.
func computeSkillScore(matched, partial, jobSkillCount int) int {
	if jobSkillCount == 0 {
		return 0
	}
	raw := (float64(matched) + float64(partial)*0.5) / float64(jobSkillCount) * 100
	if raw > 100 {
		raw = 100
	}
	return types.ClampScore(raw)
}
