package courses

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultPerSkill is the number of courses returned per skill when the
// caller does not specify a limit.
const DefaultPerSkill = 2

// genericFallbacks are the single foundational courses appended when no
// skill-specific course was found but an industry hint was supplied.
var genericFallbacks = map[string]types.CourseRecommendation{
	"cloud":   {Title: "Cloud Computing Basics", Provider: "Coursera", URL: "https://www.coursera.org/learn/cloud-computing-basics", Skill: "Cloud"},
	"data":    {Title: "Data Science Foundations", Provider: "Coursera", URL: "https://www.coursera.org/specializations/ibm-data-science", Skill: "Data"},
	"mobile":  {Title: "Mobile App Development with React Native", Provider: "Coursera", URL: "https://www.coursera.org/learn/react-native", Skill: "Mobile"},
	"general": {Title: "Programming Foundations", Provider: "Coursera", URL: "https://www.coursera.org/specializations/java-programming", Skill: "Programming"},
}

// ForSkills looks up course recommendations for a list of skills.
// Each skill is normalized and matched against an exact catalog key first,
// then against any key in a bidirectional substring relationship. Up to
// perSkill entries are taken per skill; entries whose URL already appeared
// earlier in the same call are skipped. Each returned entry is tagged with
// the normalized skill that produced it.
//
// If nothing matched and an industry hint was supplied, exactly one generic
// fallback course is returned, keyed by industry (default "general").
func (c Catalog) ForSkills(skills []string, industry string, perSkill int) []types.CourseRecommendation {
	if perSkill <= 0 {
		perSkill = DefaultPerSkill
	}

	seen := make(map[string]bool)
	results := []types.CourseRecommendation{}

	for _, raw := range skills {
		skill := matching.Normalize(raw)
		if skill == "" {
			continue
		}

		candidates, ok := c[skill]
		if !ok {
			candidates = c.substringMatch(skill)
		}

		limit := min(perSkill, len(candidates))
		for _, course := range candidates[:limit] {
			if seen[course.URL] {
				continue
			}
			seen[course.URL] = true
			course.Skill = skill
			results = append(results, course)
		}
	}

	if len(results) == 0 && industry != "" {
		fallback, ok := genericFallbacks[matching.Normalize(industry)]
		if !ok {
			fallback = genericFallbacks["general"]
		}
		results = append(results, fallback)
	}

	return results
}

// substringMatch finds the course list for the first catalog key (in sorted
// order, for determinism) that is a substring of skill or contains it.
func (c Catalog) substringMatch(skill string) []types.CourseRecommendation {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.Contains(skill, key) || strings.Contains(key, skill) {
			return c[key]
		}
	}
	return nil
}
