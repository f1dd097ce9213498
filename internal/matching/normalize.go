// Package matching implements skill normalization, fuzzy similarity, and
// the three-way matched/partial/missing skill classification.
package matching

import "strings"

// Normalize lowercases and trims a free-text skill token. The normalized
// form is the comparison key everywhere; display always uses the
// original-cased token.
func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// NormalizeAll normalizes every skill in a list, dropping tokens that
// normalize to the empty string.
func NormalizeAll(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if n := Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}
