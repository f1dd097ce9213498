package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// resumeSkillVocabulary maps lowercase detection keys to display casing for
// skills extracted from resume text.
var resumeSkillVocabulary = []struct {
	key     string
	display string
}{
	{"javascript", "JavaScript"},
	{"typescript", "TypeScript"},
	{"react", "React"},
	{"angular", "Angular"},
	{"vue", "Vue"},
	{"node.js", "Node.js"},
	{"node", "Node.js"},
	{"python", "Python"},
	{"java", "Java"},
	{"go", "Go"},
	{"sql", "SQL"},
	{"postgresql", "PostgreSQL"},
	{"mongodb", "MongoDB"},
	{"redis", "Redis"},
	{"git", "Git"},
	{"aws", "AWS"},
	{"azure", "Azure"},
	{"gcp", "GCP"},
	{"docker", "Docker"},
	{"kubernetes", "Kubernetes"},
	{"terraform", "Terraform"},
	{"graphql", "GraphQL"},
	{"rest api", "REST APIs"},
	{"machine learning", "Machine Learning"},
	{"ci/cd", "CI/CD"},
	{"devops", "DevOps"},
}

var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,2}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[a-zA-Z0-9-]+`)
	locationPattern = regexp.MustCompile(`[A-Z][a-z]+(?: [A-Z][a-z]+)*,\s*[A-Z]{2}\b`)
	durationPattern = regexp.MustCompile(`(?i)\b(19|20)\d{2}\s*[-–]\s*((19|20)\d{2}|present)`)
	yearPattern     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	gpaPattern      = regexp.MustCompile(`(?i)gpa[:\s]*([0-4]\.\d{1,2})`)
)

// shortKeyPatterns holds word-boundary matchers for vocabulary keys too
// short for plain substring matching.
var shortKeyPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, entry := range resumeSkillVocabulary {
		if len(entry.key) <= 2 {
			patterns[entry.key] = regexp.MustCompile(`\b` + regexp.QuoteMeta(entry.key) + `\b`)
		}
	}
	return patterns
}()

// degreeMarkers flag education lines.
var degreeMarkers = []string{"bachelor", "master", "ph.d", "phd", "b.s.", "m.s.", "b.sc", "m.sc", "associate"}

// institutionMarkers flag institution names.
var institutionMarkers = []string{"university", "college", "institute", "school"}

// ParseResumeText extracts a ParsedResume from plain resume text. The parser
// is line-oriented and keyword-driven; anything it cannot identify is left
// empty rather than guessed at. Binary formats (PDF/DOCX) are out of scope;
// callers must supply extracted text.
func ParseResumeText(text string) *types.ParsedResume {
	lower := strings.ToLower(text)

	resume := &types.ParsedResume{
		Text:        text,
		Skills:      extractSkills(lower),
		Experience:  extractExperience(text),
		Education:   extractEducation(text),
		ContactInfo: extractContactInfo(text),
	}
	return resume
}

// extractSkills scans the lowered text for every vocabulary entry, keeping
// the display casing. Keys that are prefixes of an already-found skill
// ("node" after "node.js") are deduplicated by display name.
func extractSkills(lower string) []string {
	seen := make(map[string]bool)
	skills := []string{}
	for _, entry := range resumeSkillVocabulary {
		if !strings.Contains(lower, entry.key) {
			continue
		}
		// Two-letter keys ("go") are too short for bare substring matching
		// and require word boundaries.
		if len(entry.key) <= 2 && !shortKeyPatterns[entry.key].MatchString(lower) {
			continue
		}
		if seen[entry.display] {
			continue
		}
		seen[entry.display] = true
		skills = append(skills, entry.display)
	}
	return skills
}

// extractContactInfo pulls email, phone, LinkedIn, and a "City, ST" location
// from anywhere in the text.
func extractContactInfo(text string) types.ContactInfo {
	info := types.ContactInfo{
		Email:    emailPattern.FindString(text),
		Phone:    strings.TrimSpace(phonePattern.FindString(text)),
		LinkedIn: linkedinPattern.FindString(text),
		Location: locationPattern.FindString(text),
	}
	return info
}

// extractExperience finds work-history entries. A line containing a year
// range ("2018 - 2020", "2020 - Present") starts an entry; the line's
// remaining text (or the nearest preceding non-empty line) is treated as
// "Title, Company" or "Title - Company" or "Title at Company".
func extractExperience(text string) []types.ExperienceItem {
	lines := strings.Split(text, "\n")
	items := []types.ExperienceItem{}

	for i, line := range lines {
		duration := durationPattern.FindString(line)
		if duration == "" {
			continue
		}

		header := strings.TrimSpace(durationPattern.ReplaceAllString(line, ""))
		header = strings.Trim(header, " ,()|-–")
		if header == "" {
			for j := i - 1; j >= 0; j-- {
				if candidate := strings.TrimSpace(lines[j]); candidate != "" {
					header = candidate
					break
				}
			}
		}

		title, company := splitHeader(header)
		item := types.ExperienceItem{
			Title:    title,
			Company:  company,
			Duration: duration,
		}
		// The following line, when not another entry, is the description.
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next != "" && durationPattern.FindString(next) == "" {
				item.Description = next
				item.Skills = extractSkills(strings.ToLower(next))
			}
		}
		items = append(items, item)
	}
	return items
}

// splitHeader divides an experience header into title and company.
func splitHeader(header string) (title, company string) {
	for _, sep := range []string{" at ", " - ", " – ", ", ", " | "} {
		if idx := strings.Index(header, sep); idx > 0 {
			return strings.TrimSpace(header[:idx]), strings.TrimSpace(header[idx+len(sep):])
		}
	}
	return header, ""
}

// extractEducation finds degree lines and pairs them with an institution,
// year, and GPA when present on the same or following line.
func extractEducation(text string) []types.EducationItem {
	lines := strings.Split(text, "\n")
	items := []types.EducationItem{}

	for i, line := range lines {
		lowered := strings.ToLower(line)
		if !containsAnyMarker(lowered, degreeMarkers) {
			continue
		}

		item := types.EducationItem{Degree: strings.TrimSpace(line)}

		// Institution and year may sit on the same line or the next one.
		window := line
		if i+1 < len(lines) {
			window += "\n" + lines[i+1]
		}
		for _, wline := range strings.Split(window, "\n") {
			if containsAnyMarker(strings.ToLower(wline), institutionMarkers) && item.Institution == "" {
				item.Institution = strings.TrimSpace(wline)
			}
		}
		item.Year = yearPattern.FindString(window)
		if m := gpaPattern.FindStringSubmatch(window); m != nil {
			item.GPA = m[1]
		}

		// Degree line doubling as institution line keeps the degree text only.
		if item.Institution == item.Degree {
			item.Institution = ""
		}
		items = append(items, item)
	}
	return items
}

func containsAnyMarker(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
