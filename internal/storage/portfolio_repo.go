package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_portfolio_store.go -package=mocks github.com/DARSHAN2224/Portfolio-sub000/internal/storage PortfolioStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// PortfolioStore defines read access to portfolio content.
// Only display-relevant fields are exposed; administrative columns stay
// inside this package.
type PortfolioStore interface {
	// GetProfile returns the owner profile, or ErrNotFound if none exists.
	GetProfile(ctx context.Context) (*ProfileRecord, error)
	// ListProjects returns up to limit projects, featured and newest first.
	ListProjects(ctx context.Context, limit int) ([]ProjectRecord, error)
	// ListSkills returns up to limit skills ordered by category and name.
	ListSkills(ctx context.Context, limit int) ([]SkillRecord, error)
	// ListExperience returns all experience entries in display order.
	ListExperience(ctx context.Context) ([]ExperienceRecord, error)
	// ListBlogPosts returns up to limit posts, newest first.
	ListBlogPosts(ctx context.Context, limit int) ([]BlogPostRecord, error)
	// ListCertificates returns all certificates.
	ListCertificates(ctx context.Context) ([]CertificateRecord, error)
}

// PortfolioRepo provides methods for portfolio content reads.
// It implements the PortfolioStore interface.
type PortfolioRepo struct {
	db *sql.DB
}

// NewPortfolioRepo creates a new PortfolioRepo.
func NewPortfolioRepo(db *sql.DB) *PortfolioRepo {
	return &PortfolioRepo{db: db}
}

// GetProfile returns the owner profile, or ErrNotFound if none exists.
func (r *PortfolioRepo) GetProfile(ctx context.Context) (*ProfileRecord, error) {
	var p ProfileRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT name, headline, bio, email, linkedin, github, location FROM profile WHERE id = 1",
	).Scan(&p.Name, &p.Headline, &p.Bio, &p.Email, &p.LinkedIn, &p.GitHub, &p.Location)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}
	return &p, nil
}

// ListProjects returns up to limit projects, featured and newest first.
func (r *PortfolioRepo) ListProjects(ctx context.Context, limit int) ([]ProjectRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, tech, link, featured FROM projects
		 ORDER BY featured DESC, created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var projects []ProjectRecord
	for rows.Next() {
		var p ProjectRecord
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Tech, &p.Link, &p.Featured); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, nil
}

// ListSkills returns up to limit skills ordered by category and name.
func (r *PortfolioRepo) ListSkills(ctx context.Context, limit int) ([]SkillRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, category, level FROM skills ORDER BY category, name LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var skills []SkillRecord
	for rows.Next() {
		var s SkillRecord
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Level); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate skills: %w", err)
	}
	return skills, nil
}

// ListExperience returns all experience entries in display order.
func (r *PortfolioRepo) ListExperience(ctx context.Context) ([]ExperienceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, company, position, years, description FROM experience ORDER BY sort_order, company")
	if err != nil {
		return nil, fmt.Errorf("failed to query experience: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []ExperienceRecord
	for rows.Next() {
		var e ExperienceRecord
		if err := rows.Scan(&e.ID, &e.Company, &e.Position, &e.Years, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate experience: %w", err)
	}
	return entries, nil
}

// ListBlogPosts returns up to limit posts, newest first.
func (r *PortfolioRepo) ListBlogPosts(ctx context.Context, limit int) ([]BlogPostRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, summary, content, published_at FROM blog_posts
		 ORDER BY published_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var posts []BlogPostRecord
	for rows.Next() {
		var b BlogPostRecord
		var publishedAt string
		if err := rows.Scan(&b.ID, &b.Title, &b.Summary, &b.Content, &publishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		b.PublishedAt = parseSQLiteTime(publishedAt)
		posts = append(posts, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blog posts: %w", err)
	}
	return posts, nil
}

// ListCertificates returns all certificates.
func (r *PortfolioRepo) ListCertificates(ctx context.Context) ([]CertificateRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, issuer, issued_on FROM certificates ORDER BY issued_on DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query certificates: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var certs []CertificateRecord
	for rows.Next() {
		var c CertificateRecord
		if err := rows.Scan(&c.ID, &c.Title, &c.Issuer, &c.IssuedOn); err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate certificates: %w", err)
	}
	return certs, nil
}
