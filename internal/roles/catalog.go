// Package roles evaluates a fixed catalog of role profiles against a
// candidate's skill set and produces ranked role suggestions.
package roles

// Role is a single role profile in the static catalog.
type Role struct {
	Title      string
	Required   []string
	NiceToHave []string
	Industry   string
}

// DefaultCatalog returns the built-in role catalog. Declaration order is
// significant: ties in score keep this order.
func DefaultCatalog() []Role {
	return []Role{
		{
			Title:      "Frontend Developer",
			Required:   []string{"JavaScript", "React", "TypeScript"},
			NiceToHave: []string{"Next.js", "Angular", "Git"},
			Industry:   "web",
		},
		{
			Title:      "Backend Developer",
			Required:   []string{"Node.js", "SQL", "REST APIs"},
			NiceToHave: []string{"Python", "MongoDB", "Docker"},
			Industry:   "web",
		},
		{
			Title:      "Full-Stack Developer",
			Required:   []string{"JavaScript", "React", "Node.js", "SQL"},
			NiceToHave: []string{"TypeScript", "AWS", "Docker"},
			Industry:   "web",
		},
		{
			Title:      "DevOps Engineer",
			Required:   []string{"Docker", "Kubernetes", "CI/CD"},
			NiceToHave: []string{"AWS", "Terraform", "Git"},
			Industry:   "cloud",
		},
		{
			Title:      "Cloud Engineer",
			Required:   []string{"AWS", "Docker"},
			NiceToHave: []string{"Kubernetes", "Azure", "GCP", "Terraform"},
			Industry:   "cloud",
		},
		{
			Title:      "Data Engineer",
			Required:   []string{"Python", "SQL"},
			NiceToHave: []string{"AWS", "Machine Learning", "PostgreSQL"},
			Industry:   "data",
		},
		{
			Title:      "Machine Learning Engineer",
			Required:   []string{"Python", "Machine Learning"},
			NiceToHave: []string{"SQL", "AWS", "Algorithms"},
			Industry:   "data",
		},
		{
			Title:      "Mobile Developer",
			Required:   []string{"JavaScript", "React"},
			NiceToHave: []string{"TypeScript", "REST APIs"},
			Industry:   "mobile",
		},
	}
}
