package storage

import "time"

// ProfileRecord is the single owner profile row.
type ProfileRecord struct {
	Name     string
	Headline string
	Bio      string
	Email    string
	LinkedIn string
	GitHub   string
	Location string
}

// ProjectRecord represents a portfolio project.
type ProjectRecord struct {
	ID          string
	Title       string
	Description string
	Tech        string
	Link        string
	Featured    bool
}

// SkillRecord represents a single skill entry.
type SkillRecord struct {
	ID       string
	Name     string
	Category string
	Level    string
}

// ExperienceRecord represents one work-experience entry.
type ExperienceRecord struct {
	ID          string
	Company     string
	Position    string
	Years       string
	Description string
}

// BlogPostRecord represents a blog post. Content is markdown.
type BlogPostRecord struct {
	ID          string
	Title       string
	Summary     string
	Content     string
	PublishedAt time.Time
}

// CertificateRecord represents a certificate or award.
type CertificateRecord struct {
	ID       string
	Title    string
	Issuer   string
	IssuedOn string
}

// ChatLogRecord is one transcript line of an assistant conversation.
type ChatLogRecord struct {
	ID        string
	SessionID string
	Sender    string // "user" or "bot"
	Text      string
	CreatedAt time.Time
}
