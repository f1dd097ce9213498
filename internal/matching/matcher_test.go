package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_BidirectionalContainment(t *testing.T) {
	cls := Classify(
		[]string{"React", "Node.js", "Python"},
		[]string{"react", "node", "sql"},
		PolicyAllowOverlap,
	)

	assert.Contains(t, cls.Matched, "react")
	assert.Contains(t, cls.Matched, "node.js")
	assert.NotContains(t, cls.Matched, "python")
	assert.Contains(t, cls.Missing, "sql")
	assert.NotContains(t, cls.Missing, "react")
	assert.NotContains(t, cls.Missing, "node")
}

func TestClassify_MissingContainmentProperty(t *testing.T) {
	resumeSkills := []string{"JavaScript", "Docker", "Kubernetes"}
	jobSkills := []string{"javascript", "terraform", "docker", "go"}

	cls := Classify(resumeSkills, jobSkills, PolicyAllowOverlap)

	// Every job skill absent from missing must satisfy the containment rule
	// against at least one resume skill.
	missing := make(map[string]bool)
	for _, m := range cls.Missing {
		missing[m] = true
	}
	r := NormalizeAll(resumeSkills)
	for _, j := range NormalizeAll(jobSkills) {
		if !missing[j] {
			assert.True(t, ContainsMatch(j, r), "job skill %q not missing but has no containment match", j)
		}
	}
}

func TestClassify_PartialNearMiss(t *testing.T) {
	// "flask" vs "flash": distance 1 over length 5 -> similarity 0.8,
	// strictly between 0.6 and 1.0, and no substring containment.
	cls := Classify([]string{"flask"}, []string{"flash"}, PolicyAllowOverlap)

	assert.Empty(t, cls.Matched)
	assert.Equal(t, []string{"flask"}, cls.Partial)
	assert.Equal(t, []string{"flash"}, cls.Missing)
}

func TestClassify_ExactMatchNotPartial(t *testing.T) {
	// Identical skills have similarity 1.0, which is excluded from partial.
	cls := Classify([]string{"docker"}, []string{"docker"}, PolicyAllowOverlap)

	assert.Equal(t, []string{"docker"}, cls.Matched)
	assert.Empty(t, cls.Partial)
	assert.Empty(t, cls.Missing)
}

func TestClassify_OverlapPolicies(t *testing.T) {
	// "reacts" contains "react" (matched) and has similarity 5/6 ~ 0.83 to
	// "react" (partial), so it lands in both sets under the default policy.
	resumeSkills := []string{"reacts"}
	jobSkills := []string{"react"}

	overlap := Classify(resumeSkills, jobSkills, PolicyAllowOverlap)
	assert.Equal(t, []string{"reacts"}, overlap.Matched)
	assert.Equal(t, []string{"reacts"}, overlap.Partial)

	exclusive := Classify(resumeSkills, jobSkills, PolicyExclusivePartial)
	assert.Equal(t, []string{"reacts"}, exclusive.Matched)
	assert.Empty(t, exclusive.Partial)
}

func TestClassify_EmptyInputs(t *testing.T) {
	cls := Classify(nil, nil, PolicyAllowOverlap)
	assert.Empty(t, cls.Matched)
	assert.Empty(t, cls.Partial)
	assert.Empty(t, cls.Missing)

	cls = Classify(nil, []string{"go"}, PolicyAllowOverlap)
	assert.Equal(t, []string{"go"}, cls.Missing)
}
