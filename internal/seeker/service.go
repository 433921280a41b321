// Package seeker contains the profile operations the matching pipeline reads.
package seeker

import (
	"context"

	"nichenest/board-service/internal/model"
)

// Store is the persistence surface for seeker profiles.
type Store interface {
	UpdateSeekerNiches(ctx context.Context, seekerID, first, second, third string) error
}

// NichesRequest carries a seeker's three declared niches.
type NichesRequest struct {
	FirstNiche  string `json:"firstNiche"`
	SecondNiche string `json:"secondNiche"`
	ThirdNiche  string `json:"thirdNiche"`
}

// Service encapsulates seeker profile updates.
type Service struct {
	store Store
}

// NewService returns a configured Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Validate checks that all three niches are present and distinct.
func (r *NichesRequest) Validate() error {
	if r.FirstNiche == "" || r.SecondNiche == "" || r.ThirdNiche == "" {
		return model.Validationf("please provide your three preferred job niches")
	}
	if r.FirstNiche == r.SecondNiche || r.FirstNiche == r.ThirdNiche || r.SecondNiche == r.ThirdNiche {
		return model.Validationf("job niches must be distinct")
	}
	return nil
}

// UpdateNiches replaces the seeker's declared niche set. Postings already
// dispatched are never re-matched against the new set; still-unsent postings
// pick it up on the next tick.
func (s *Service) UpdateNiches(ctx context.Context, seekerID string, req NichesRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.store.UpdateSeekerNiches(ctx, seekerID, req.FirstNiche, req.SecondNiche, req.ThirdNiche)
}
