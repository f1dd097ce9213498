package matching

import "strings"

// Partial-match similarity bounds: a skill counts as a partial match when
// its similarity to some job skill is strictly between these values.
const (
	partialLowerBound = 0.6
	partialUpperBound = 1.0
)

// Policy controls how the matched and partial sets relate.
type Policy string

const (
	// PolicyAllowOverlap keeps the original classification: a resume skill
	// may appear in both matched (via containment with one job skill) and
	// partial (via similarity with another).
	PolicyAllowOverlap Policy = "allow_overlap"
	// PolicyExclusivePartial removes skills from the partial set that are
	// already in the matched set.
	PolicyExclusivePartial Policy = "exclusive_partial"
)

// Classification is the three-way partition of skills produced by Classify.
// Skills are reported in their normalized (lowercase) form.
type Classification struct {
	Matched []string `json:"matched"`
	Partial []string `json:"partial"`
	Missing []string `json:"missing"`
}

// Classify partitions job-required skills against a candidate's skill set.
// Inputs may carry arbitrary casing; comparison is on normalized tokens.
//
//   - Matched: resume skills in a bidirectional substring relationship with
//     some job skill. The containment rule is deliberately loose: "node"
//     matches "node.js" and vice versa.
//   - Partial: resume skills whose similarity to some job skill is strictly
//     between 0.6 and 1.0.
//   - Missing: job skills with no resume skill in a containment relationship.
func Classify(resumeSkills, jobSkills []string, policy Policy) Classification {
	r := NormalizeAll(resumeSkills)
	j := NormalizeAll(jobSkills)

	cls := Classification{
		Matched: []string{},
		Partial: []string{},
		Missing: []string{},
	}

	matchedSet := make(map[string]bool)
	for _, skill := range r {
		if ContainsMatch(skill, j) {
			cls.Matched = append(cls.Matched, skill)
			matchedSet[skill] = true
		}
	}

	for _, skill := range r {
		if policy == PolicyExclusivePartial && matchedSet[skill] {
			continue
		}
		if anySimilar(skill, j) {
			cls.Partial = append(cls.Partial, skill)
		}
	}

	for _, jobSkill := range j {
		if !ContainsMatch(jobSkill, r) {
			cls.Missing = append(cls.Missing, jobSkill)
		}
	}

	return cls
}

// ContainsMatch reports whether skill is in a bidirectional substring
// relationship with any element of candidates. Both sides are expected to
// be normalized already.
func ContainsMatch(skill string, candidates []string) bool {
	for _, c := range candidates {
		if strings.Contains(c, skill) || strings.Contains(skill, c) {
			return true
		}
	}
	return false
}

// anySimilar reports whether skill is close-but-not-identical to any
// element of candidates under the partial-match similarity bounds.
func anySimilar(skill string, candidates []string) bool {
	for _, c := range candidates {
		sim := Similarity(skill, c)
		if sim > partialLowerBound && sim < partialUpperBound {
			return true
		}
	}
	return false
}
