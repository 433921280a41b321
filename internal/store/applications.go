package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"nichenest/board-service/internal/model"
)

const applicationColumns = `id, job_seeker_id, job_seeker_name, job_seeker_email,
	job_seeker_phone, job_seeker_address, cover_letter,
	COALESCE(resume_public_id, ''), COALESCE(resume_url, ''),
	employer_id, job_id, job_title,
	deleted_by_job_seeker, deleted_by_employer, created_at`

func scanApplication(row pgx.Row) (*model.Application, error) {
	var a model.Application
	err := row.Scan(
		&a.ID, &a.JobSeekerID, &a.JobSeekerName, &a.JobSeekerEmail,
		&a.JobSeekerPhone, &a.JobSeekerAddress, &a.CoverLetter,
		&a.ResumePublicID, &a.ResumeURL,
		&a.EmployerID, &a.JobID, &a.JobTitle,
		&a.DeletedByJobSeeker, &a.DeletedByEmployer, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateApplication inserts a new application row. The unique index on
// (job_seeker_id, job_id) rejects duplicate submissions.
func (s *Store) CreateApplication(ctx context.Context, a *model.Application) error {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO applications (
		   id, job_seeker_id, job_seeker_name, job_seeker_email,
		   job_seeker_phone, job_seeker_address, cover_letter,
		   resume_public_id, resume_url, employer_id, job_id, job_title,
		   deleted_by_job_seeker, deleted_by_employer, created_at
		 ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,false,false,$13)`,
		a.ID, a.JobSeekerID, a.JobSeekerName, a.JobSeekerEmail,
		a.JobSeekerPhone, a.JobSeekerAddress, a.CoverLetter,
		a.ResumePublicID, a.ResumeURL, a.EmployerID, a.JobID, a.JobTitle,
		a.CreatedAt,
	)
	if isUniqueViolation(err) {
		return model.ErrDuplicateApplication
	}
	if err != nil {
		return fmt.Errorf("createApplication insert: %w", err)
	}
	return nil
}

// ApplicationByID returns a single application row.
func (s *Store) ApplicationByID(ctx context.Context, id string) (*model.Application, error) {
	a, err := scanApplication(s.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("applicationByID: %w", err)
	}
	return a, nil
}

// SetDeleteFlag flips the delete flag owned by role on one application and
// returns the updated row. Setting an already-true flag is a harmless no-op.
func (s *Store) SetDeleteFlag(ctx context.Context, id string, role model.Role) (*model.Application, error) {
	column := "deleted_by_job_seeker"
	if role == model.RoleEmployer {
		column = "deleted_by_employer"
	}

	a, err := scanApplication(s.pool.QueryRow(ctx,
		`UPDATE applications SET `+column+` = true
		 WHERE id = $1
		 RETURNING `+applicationColumns, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("setDeleteFlag: %w", err)
	}
	return a, nil
}

// DeleteApplication hard-deletes an application row. Called only once both
// soft-delete flags have converged to true.
func (s *Store) DeleteApplication(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx,
		`DELETE FROM applications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleteApplication: %w", err)
	}
	return nil
}

// ApplicationsBySeeker returns a seeker's applications newest-first, hiding
// rows the seeker has soft-deleted.
func (s *Store) ApplicationsBySeeker(ctx context.Context, seekerID string) ([]model.Application, error) {
	return s.queryApplications(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications
		 WHERE job_seeker_id = $1 AND deleted_by_job_seeker = false
		 ORDER BY created_at DESC`,
		seekerID)
}

// ApplicationsByEmployer returns an employer's received applications
// newest-first, hiding rows the employer has soft-deleted.
func (s *Store) ApplicationsByEmployer(ctx context.Context, employerID string) ([]model.Application, error) {
	return s.queryApplications(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications
		 WHERE employer_id = $1 AND deleted_by_employer = false
		 ORDER BY created_at DESC`,
		employerID)
}

func (s *Store) queryApplications(ctx context.Context, query string, args ...any) ([]model.Application, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("applications query: %w", err)
	}
	defer rows.Close()

	apps := make([]model.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("applications scan: %w", err)
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}
