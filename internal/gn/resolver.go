package gn

import (
	"context"

	"gtestfilter/internal/domain"
)

// Resolver unions the sources of several targets
type Resolver struct {
	querier Querier
}

// NewResolver creates a new Resolver
func NewResolver(querier Querier) *Resolver {
	return &Resolver{querier: querier}
}

// Resolve queries every target in order and returns the union of their
// sources. The first failing target aborts the run.
func (r *Resolver) Resolve(ctx context.Context, outputDir string, targets []string) (domain.SourceSet, error) {
	sources := domain.NewSourceSet()
	for _, target := range targets {
		paths, err := r.querier.Sources(ctx, outputDir, target)
		if err != nil {
			return nil, err
		}
		sources.Add(paths...)
	}
	return sources, nil
}
