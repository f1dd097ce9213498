package types

import "strings"

// JobDescription is the structured form of a job posting. It is derived
// deterministically from the raw description text and immutable once produced.
type JobDescription struct {
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	Description        string   `json:"description"`
	Requirements       []string `json:"requirements"`
	Skills             []string `json:"skills"`
	ExperienceRequired string   `json:"experience_required"`
}

// normalizeKey lowercases and trims a skill for case-insensitive comparison.
// The canonical normalizer lives in internal/matching; this local copy keeps
// the types package dependency-free.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
