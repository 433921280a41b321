// Package match resolves a posting's niche to the seekers who declared it.
package match

import (
	"context"
	"fmt"

	"nichenest/board-service/internal/model"
)

// SeekerSource is the slice of the store the resolver reads.
type SeekerSource interface {
	SeekersByNiche(ctx context.Context, niche string) ([]model.Seeker, error)
}

// Resolver answers "which seekers declared this niche". Matching is exact and
// case-sensitive against any of the three niche slots; there is no ranking and
// no partial match. It is safe to call concurrently with profile updates — a
// seeker updating niches mid-cycle may or may not appear in the result, which
// is acceptable because still-unsent postings are re-matched every tick.
type Resolver struct {
	seekers SeekerSource
}

// NewResolver returns a Resolver reading from the given source.
func NewResolver(seekers SeekerSource) *Resolver {
	return &Resolver{seekers: seekers}
}

// Resolve returns the seekers matching niche. An empty set is a valid result.
func (r *Resolver) Resolve(ctx context.Context, niche string) ([]model.Seeker, error) {
	if niche == "" {
		return nil, nil
	}
	seekers, err := r.seekers.SeekersByNiche(ctx, niche)
	if err != nil {
		return nil, fmt.Errorf("resolve niche %q: %w", niche, err)
	}
	return seekers, nil
}
