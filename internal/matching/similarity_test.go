package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_Identity(t *testing.T) {
	for _, s := range []string{"react", "node.js", "a", "machine learning"} {
		assert.InDelta(t, 1.0, Similarity(s, s), 1e-9, "similarity(%q, %q)", s, s)
	}
}

func TestSimilarity_BothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("", ""))
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"react", "redux"},
		{"node", "node.js"},
		{"python", "typescript"},
		{"", "sql"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]),
			"similarity(%q,%q) should be symmetric", p[0], p[1])
	}
}

func TestSimilarity_Range(t *testing.T) {
	pairs := [][2]string{
		{"react", "angular"},
		{"a", "zzzzzzzz"},
		{"sql", ""},
		{"docker", "docker"},
	}
	for _, p := range pairs {
		sim := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, sim, 0.0)
		assert.LessOrEqual(t, sim, 1.0)
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"node", "node.js", 3},
		{"flask", "flash", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EditDistance(tt.a, tt.b), "distance(%q,%q)", tt.a, tt.b)
		assert.Equal(t, tt.want, EditDistance(tt.b, tt.a), "distance(%q,%q)", tt.b, tt.a)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "react", Normalize("  React "))
	assert.Equal(t, "node.js", Normalize("Node.js"))
	assert.Equal(t, "", Normalize("   "))
}

func TestNormalizeAll_DropsEmptyTokens(t *testing.T) {
	assert.Equal(t, []string{"react", "sql"}, NormalizeAll([]string{"React", "  ", "SQL"}))
}
