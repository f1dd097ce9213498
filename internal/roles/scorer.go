package roles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/courses"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Scoring weights and thresholds for role suggestions.
const (
	requiredWeight = 70.0
	niceWeight     = 30.0
	industryBonus  = 5
	minScore       = 40
	fallbackTop    = 3
	// maxReasonSkills limits how many skill names a reason string lists.
	maxReasonSkills = 3
)

// Suggest evaluates every role in the catalog against the candidate's skill
// set and returns ranked suggestions, highest score first. Ties keep catalog
// declaration order. Roles scoring below 40 are filtered out unless all of
// them do, in which case the top 3 are returned instead; the result is never
// empty for a non-empty catalog.
func Suggest(candidateSkills []string, industry string, catalog []Role, courseCatalog courses.Catalog) []types.SuggestedRole {
	normalized := matching.NormalizeAll(candidateSkills)

	suggestions := make([]types.SuggestedRole, 0, len(catalog))
	for _, role := range catalog {
		suggestions = append(suggestions, scoreRole(role, normalized, industry, courseCatalog))
	}

	// Stable sort keeps catalog order for equal scores.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchScore > suggestions[j].MatchScore
	})

	filtered := make([]types.SuggestedRole, 0, len(suggestions))
	for _, s := range suggestions {
		if s.MatchScore >= minScore {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) == 0 {
		limit := min(fallbackTop, len(suggestions))
		return suggestions[:limit]
	}
	return filtered
}

// scoreRole computes the match score, reasons, and course recommendations
// for a single role.
func scoreRole(role Role, candidateSkills []string, industry string, courseCatalog courses.Catalog) types.SuggestedRole {
	presentRequired, missingRequired := partitionByPresence(role.Required, candidateSkills)
	presentNice, missingNice := partitionByPresence(role.NiceToHave, candidateSkills)

	requiredCoverage := 0.0
	if len(role.Required) > 0 {
		requiredCoverage = float64(len(presentRequired)) / float64(len(role.Required))
	}
	niceCoverage := 0.0
	if len(role.NiceToHave) > 0 {
		niceCoverage = float64(len(presentNice)) / float64(len(role.NiceToHave))
	}

	raw := requiredCoverage*requiredWeight + niceCoverage*niceWeight
	if raw > 100 {
		raw = 100
	}
	score := types.ClampScore(raw)

	if industry != "" && matching.Normalize(industry) == matching.Normalize(role.Industry) {
		score += industryBonus
		if score > 100 {
			score = 100
		}
	}

	// Courses target missing required skills first, falling back to the
	// nice-to-haves the candidate does not hold yet.
	courseTargets := missingRequired
	if len(courseTargets) == 0 {
		courseTargets = missingNice
	}

	return types.SuggestedRole{
		Title:              role.Title,
		MatchScore:         score,
		Reasons:            buildReasons(presentRequired, presentNice, missingRequired),
		RecommendedCourses: courseCatalog.ForSkills(courseTargets, "", courses.DefaultPerSkill),
	}
}

// partitionByPresence splits role skills into those the candidate holds and
// those they do not, using the loose bidirectional containment rule.
func partitionByPresence(roleSkills, candidateSkills []string) (present, missing []string) {
	for _, skill := range roleSkills {
		if matching.ContainsMatch(matching.Normalize(skill), candidateSkills) {
			present = append(present, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return present, missing
}

// buildReasons generates up to three short reason strings for a suggestion.
func buildReasons(presentRequired, presentNice, missingRequired []string) []string {
	reasons := []string{}
	if len(presentRequired) > 0 {
		reasons = append(reasons, fmt.Sprintf("Has %d of the core skills: %s",
			len(presentRequired), summarize(presentRequired)))
	}
	if len(presentNice) > 0 {
		reasons = append(reasons, fmt.Sprintf("Bonus strengths: %s", summarize(presentNice)))
	}
	if len(missingRequired) > 0 {
		reasons = append(reasons, fmt.Sprintf("Missing core skills: %s", summarize(missingRequired)))
	}
	return reasons
}

// summarize joins at most maxReasonSkills names, noting how many were omitted.
func summarize(skills []string) string {
	if len(skills) <= maxReasonSkills {
		return strings.Join(skills, ", ")
	}
	shown := strings.Join(skills[:maxReasonSkills], ", ")
	return fmt.Sprintf("%s (+%d more)", shown, len(skills)-maxReasonSkills)
}
