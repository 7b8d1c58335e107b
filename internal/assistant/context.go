package assistant

import (
	"context"
	"errors"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/contextutil"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/storage"
)

// maxRecordsPerSlice bounds how many records of each collection enter the
// prompt, to keep prompt size sane.
const maxRecordsPerSlice = 10

// maxBlogContentRunes bounds how much of each flattened blog post is kept.
const maxBlogContentRunes = 600

// Assembler builds a bounded Snapshot of portfolio data for one request.
// A failing sub-fetch degrades that slice to empty instead of failing the
// chat call; reads are the only side effect.
type Assembler struct {
	store storage.PortfolioStore
}

// NewAssembler creates a new context Assembler.
func NewAssembler(store storage.PortfolioStore) *Assembler {
	return &Assembler{store: store}
}

// Assemble fetches the slices the scope requires and returns the snapshot.
func (a *Assembler) Assemble(ctx context.Context, scope Scope) Snapshot {
	logger := contextutil.LoggerFromContext(ctx)
	var snap Snapshot

	wantProfile := scope == ScopeAll || scope == ScopeProfile
	wantProjects := scope == ScopeAll || scope == ScopeProjects
	wantSkills := scope == ScopeAll || scope == ScopeSkills

	if wantProfile {
		profile, err := a.store.GetProfile(ctx)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				logger.WarnContext(ctx, "failed to fetch profile for context", "error", err)
			}
		} else {
			snap.Profile = &ProfileView{
				Name:     profile.Name,
				Headline: profile.Headline,
				Bio:      profile.Bio,
				Email:    profile.Email,
				LinkedIn: profile.LinkedIn,
				GitHub:   profile.GitHub,
				Location: profile.Location,
			}
		}
	}

	if wantProjects {
		projects, err := a.store.ListProjects(ctx, maxRecordsPerSlice)
		if err != nil {
			logger.WarnContext(ctx, "failed to fetch projects for context", "error", err)
		}
		for _, p := range projects {
			snap.Projects = append(snap.Projects, ProjectView{
				ID:          p.ID,
				Title:       p.Title,
				Description: p.Description,
				Tech:        p.Tech,
			})
		}
	}

	if wantSkills {
		skills, err := a.store.ListSkills(ctx, maxRecordsPerSlice)
		if err != nil {
			logger.WarnContext(ctx, "failed to fetch skills for context", "error", err)
		}
		for _, s := range skills {
			snap.Skills = append(snap.Skills, SkillView{
				Name:     s.Name,
				Category: s.Category,
				Level:    s.Level,
			})
		}
	}

	if scope == ScopeAll {
		experience, err := a.store.ListExperience(ctx)
		if err != nil {
			logger.WarnContext(ctx, "failed to fetch experience for context", "error", err)
		}
		for _, e := range experience {
			snap.Experience = append(snap.Experience, ExperienceView{
				Company:     e.Company,
				Position:    e.Position,
				Years:       e.Years,
				Description: e.Description,
			})
		}

		posts, err := a.store.ListBlogPosts(ctx, maxRecordsPerSlice)
		if err != nil {
			logger.WarnContext(ctx, "failed to fetch blog posts for context", "error", err)
		}
		for _, b := range posts {
			snap.BlogPosts = append(snap.BlogPosts, BlogPostView{
				Title:   b.Title,
				Summary: b.Summary,
				Content: truncateRunes(flattenMarkdown(b.Content), maxBlogContentRunes),
			})
		}

		certs, err := a.store.ListCertificates(ctx)
		if err != nil {
			logger.WarnContext(ctx, "failed to fetch certificates for context", "error", err)
		}
		for _, c := range certs {
			snap.Certificates = append(snap.Certificates, CertificateView{
				Title:    c.Title,
				Issuer:   c.Issuer,
				IssuedOn: c.IssuedOn,
			})
		}
	}

	logger.DebugContext(ctx, "context snapshot assembled",
		"scope", string(scope),
		"projects", len(snap.Projects),
		"skills", len(snap.Skills),
		"experience", len(snap.Experience),
		"blog_posts", len(snap.BlogPosts),
		"certificates", len(snap.Certificates),
		"has_profile", snap.Profile != nil,
	)
	return snap
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
