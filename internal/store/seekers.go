package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"nichenest/board-service/internal/model"
)

// SeekersByNiche returns every job seeker with the given niche in any of the
// three slots. An empty result is valid — "no audience" is not an error.
func (s *Store) SeekersByNiche(ctx context.Context, niche string) ([]model.Seeker, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email,
		        COALESCE(first_niche, ''), COALESCE(second_niche, ''), COALESCE(third_niche, '')
		 FROM users
		 WHERE role = $1
		   AND (first_niche = $2 OR second_niche = $2 OR third_niche = $2)`,
		string(model.RoleJobSeeker), niche)
	if err != nil {
		return nil, fmt.Errorf("seekersByNiche query: %w", err)
	}
	defer rows.Close()

	seekers := make([]model.Seeker, 0)
	for rows.Next() {
		var u model.Seeker
		if err := rows.Scan(&u.ID, &u.Name, &u.Email,
			&u.FirstNiche, &u.SecondNiche, &u.ThirdNiche); err != nil {
			return nil, fmt.Errorf("seekersByNiche scan: %w", err)
		}
		seekers = append(seekers, u)
	}
	return seekers, rows.Err()
}

// SeekerResume returns the resume reference stored on a seeker's profile.
// Both fields are empty when the seeker has never uploaded one.
func (s *Store) SeekerResume(ctx context.Context, seekerID string) (model.Resume, error) {
	var r model.Resume
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(resume_public_id, ''), COALESCE(resume_url, '')
		 FROM users WHERE id = $1`,
		seekerID,
	).Scan(&r.PublicID, &r.URL)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Resume{}, model.ErrNotFound
	}
	if err != nil {
		return model.Resume{}, fmt.Errorf("seekerResume: %w", err)
	}
	return r, nil
}

// UpdateSeekerNiches replaces the three niche slots on a seeker profile.
// A seeker who updates mid-dispatch may or may not be included in the running
// tick; still-unsent postings are re-matched on the next tick.
func (s *Store) UpdateSeekerNiches(ctx context.Context, seekerID, first, second, third string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users
		 SET first_niche = $1, second_niche = $2, third_niche = $3, updated_at = NOW()
		 WHERE id = $4 AND role = $5`,
		first, second, third, seekerID, string(model.RoleJobSeeker))
	if err != nil {
		return fmt.Errorf("updateSeekerNiches: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
