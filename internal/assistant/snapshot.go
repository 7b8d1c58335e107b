package assistant

// Scope narrows which portfolio slices the context assembler fetches.
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeProjects Scope = "projects"
	ScopeSkills   Scope = "skills"
	ScopeProfile  Scope = "profile"
)

// ParseScope maps a request hint to a Scope, defaulting to ScopeAll for
// anything unrecognized.
func ParseScope(s string) Scope {
	switch Scope(s) {
	case ScopeProjects, ScopeSkills, ScopeProfile:
		return Scope(s)
	default:
		return ScopeAll
	}
}

// ProfileView is the display slice of the owner profile.
type ProfileView struct {
	Name     string `json:"name"`
	Headline string `json:"headline,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Location string `json:"location,omitempty"`
}

// ProjectView is the display slice of a project.
type ProjectView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Tech        string `json:"tech,omitempty"`
}

// SkillView is the display slice of a skill.
type SkillView struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Level    string `json:"level,omitempty"`
}

// ExperienceView is the display slice of a work-experience entry.
type ExperienceView struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Years       string `json:"years,omitempty"`
	Description string `json:"description,omitempty"`
}

// BlogPostView is the display slice of a blog post. Content has been
// flattened from markdown to plain text.
type BlogPostView struct {
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"`
	Content string `json:"content,omitempty"`
}

// CertificateView is the display slice of a certificate.
type CertificateView struct {
	Title    string `json:"title"`
	Issuer   string `json:"issuer,omitempty"`
	IssuedOn string `json:"date,omitempty"`
}

// Snapshot is the bounded, read-only aggregate of portfolio data used to
// ground one assistant reply. It is built fresh per request and never
// cached across requests.
type Snapshot struct {
	Profile      *ProfileView
	Projects     []ProjectView
	Skills       []SkillView
	Experience   []ExperienceView
	BlogPosts    []BlogPostView
	Certificates []CertificateView
}

// Empty reports whether no slice of the snapshot carries any data.
func (s *Snapshot) Empty() bool {
	return s.Profile == nil &&
		len(s.Projects) == 0 &&
		len(s.Skills) == 0 &&
		len(s.Experience) == 0 &&
		len(s.BlogPosts) == 0 &&
		len(s.Certificates) == 0
}
