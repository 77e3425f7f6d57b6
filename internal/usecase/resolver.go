package usecase

import (
	"context"

	"github.com/streampulse/sportscast/internal/domain/schedule"
	"github.com/streampulse/sportscast/internal/domain/team"
)

// Prober answers whether a slug currently has a live stream. Any fault
// is a plain false; no error crosses this boundary.
type Prober interface {
	Verify(ctx context.Context, slug string) bool
}

// Resolver finds the first verified slug for a schedule row.
type Resolver struct {
	registry *team.Registry
	prober   Prober
}

func NewResolver(registry *team.Registry, prober Prober) *Resolver {
	return &Resolver{registry: registry, prober: prober}
}

type ResolveInput struct {
	HomeText   string
	AwayText   string
	PageKey    string
	BackupSlug string
	// Allowed restricts candidates to a fixed roster; nil means
	// unrestricted. The backup probe deliberately bypasses it.
	Allowed map[string]struct{}
	Mode    schedule.Mode
}

// Resolve walks the strategy chain: page-declared backup slug, home
// candidates, away candidates, page-supplied team key. First verified
// candidate wins; each later strategy runs only when the previous one
// found nothing.
func (r *Resolver) Resolve(ctx context.Context, in ResolveInput) (string, bool) {
	// A backup slug is trusted only when it is consistent with the home
	// side's own candidate set. Home only, never away.
	if in.BackupSlug != "" && r.prober.Verify(ctx, in.BackupSlug) {
		if _, ok := r.registry.CandidateSet(in.HomeText, in.Mode)[in.BackupSlug]; ok {
			return in.BackupSlug, true
		}
	}

	strategies := [][]string{
		r.registry.Candidates(in.HomeText, in.Mode),
		r.registry.Candidates(in.AwayText, in.Mode),
	}
	if in.PageKey != "" {
		strategies = append(strategies, r.registry.ExpandPageKey(in.PageKey, in.Mode))
	}

	for _, candidates := range strategies {
		if slug, ok := r.firstVerified(ctx, candidates, in.Allowed); ok {
			return slug, true
		}
	}
	return "", false
}

func (r *Resolver) firstVerified(ctx context.Context, candidates []string, allowed map[string]struct{}) (string, bool) {
	for _, slug := range candidates {
		if allowed != nil {
			if _, ok := allowed[slug]; !ok {
				continue
			}
		}
		if r.prober.Verify(ctx, slug) {
			return slug, true
		}
	}
	return "", false
}
