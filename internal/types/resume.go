// Package types defines the shared data structures for resume/job matching.
package types

// ParsedResume is the structured form of an uploaded resume.
// It is produced once per upload and treated as immutable afterwards.
type ParsedResume struct {
	Text        string           `json:"text"`
	Skills      []string         `json:"skills"`
	Experience  []ExperienceItem `json:"experience"`
	Education   []EducationItem  `json:"education"`
	ContactInfo ContactInfo      `json:"contact_info"`
}

// ExperienceItem is a single work-history entry.
type ExperienceItem struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// EducationItem is a single education entry. GPA is optional.
type EducationItem struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa,omitempty"`
}

// ContactInfo holds contact details extracted from the resume text.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Location string `json:"location,omitempty"`
}

// AllSkills returns the candidate's full skill set: top-level resume skills
// plus skills nested in each experience item, deduplicated case-insensitively.
// Original casing of the first occurrence is preserved for display.
func (r *ParsedResume) AllSkills() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(skills []string) {
		for _, s := range skills {
			key := normalizeKey(s)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	add(r.Skills)
	for _, exp := range r.Experience {
		add(exp.Skills)
	}
	return out
}
