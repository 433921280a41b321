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

const jobColumns = `id, title, job_type, location, company_name,
	COALESCE(introduction, ''), responsibilities, qualifications,
	COALESCE(offers, ''), salary, hiring_multiple_candidates,
	COALESCE(personal_website_title, ''), COALESCE(personal_website_url, ''),
	job_niche, newsletters_sent, posted_by, job_posted_on`

func scanJob(row pgx.Row) (*model.Job, error) {
	var j model.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.JobType, &j.Location, &j.CompanyName,
		&j.Introduction, &j.Responsibilities, &j.Qualifications,
		&j.Offers, &j.Salary, &j.HiringMultipleCandidates,
		&j.PersonalWebsiteTitle, &j.PersonalWebsiteURL,
		&j.JobNiche, &j.NewslettersSent, &j.PostedBy, &j.JobPostedOn,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// CreateJob inserts a new posting. Newly created jobs have
// newsletters_sent = false, so the next dispatch tick picks them up.
func (s *Store) CreateJob(ctx context.Context, j *model.Job) error {
	j.ID = uuid.NewString()
	j.JobPostedOn = time.Now().UTC()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO jobs (
		   id, title, job_type, location, company_name, introduction,
		   responsibilities, qualifications, offers, salary,
		   hiring_multiple_candidates, personal_website_title,
		   personal_website_url, job_niche, newsletters_sent,
		   posted_by, job_posted_on
		 ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,false,$15,$16)`,
		j.ID, j.Title, j.JobType, j.Location, j.CompanyName, j.Introduction,
		j.Responsibilities, j.Qualifications, j.Offers, j.Salary,
		j.HiringMultipleCandidates, j.PersonalWebsiteTitle,
		j.PersonalWebsiteURL, j.JobNiche, j.PostedBy, j.JobPostedOn,
	)
	if err != nil {
		return fmt.Errorf("createJob insert: %w", err)
	}
	return nil
}

// JobByID returns a single posting.
func (s *Store) JobByID(ctx context.Context, id string) (*model.Job, error) {
	j, err := scanJob(s.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("jobByID: %w", err)
	}
	return j, nil
}

// SearchJobs returns postings newest-first, optionally filtered by exact city,
// exact niche, and a keyword matched case-insensitively against title, company
// name and introduction.
func (s *Store) SearchJobs(ctx context.Context, city, niche, keyword string) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE 1=1`
	args := []any{}

	if city != "" {
		args = append(args, city)
		query += fmt.Sprintf(` AND location = $%d`, len(args))
	}
	if niche != "" {
		args = append(args, niche)
		query += fmt.Sprintf(` AND job_niche = $%d`, len(args))
	}
	if keyword != "" {
		args = append(args, "%"+keyword+"%")
		n := len(args)
		query += fmt.Sprintf(
			` AND (title ILIKE $%d OR company_name ILIKE $%d OR introduction ILIKE $%d)`,
			n, n, n)
	}
	query += ` ORDER BY job_posted_on DESC`

	return s.queryJobs(ctx, query, args...)
}

// JobsByEmployer returns the postings created by one employer, newest-first.
func (s *Store) JobsByEmployer(ctx context.Context, employerID string) ([]model.Job, error) {
	return s.queryJobs(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE posted_by = $1 ORDER BY job_posted_on DESC`,
		employerID)
}

// UnsentJobs returns every posting whose newsletters_sent flag is still false.
func (s *Store) UnsentJobs(ctx context.Context) ([]model.Job, error) {
	return s.queryJobs(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE newsletters_sent = false`)
}

// MarkJobSent flips the newsletters_sent flag to true. The flag never reverts.
func (s *Store) MarkJobSent(ctx context.Context, jobID string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE jobs SET newsletters_sent = true WHERE id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("markJobSent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteJob removes a posting. Only the posting employer may delete it; a
// mismatched owner is indistinguishable from a missing row.
func (s *Store) DeleteJob(ctx context.Context, id, employerID string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM jobs WHERE id = $1 AND posted_by = $2`, id, employerID)
	if err != nil {
		return fmt.Errorf("deleteJob: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (s *Store) queryJobs(ctx context.Context, query string, args ...any) ([]model.Job, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("jobs query: %w", err)
	}
	defer rows.Close()

	jobs := make([]model.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("jobs scan: %w", err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}
