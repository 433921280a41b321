// Package job contains the business logic for employer job postings.
package job

import (
	"context"

	"nichenest/board-service/internal/model"
)

// Store is the persistence surface for postings.
type Store interface {
	CreateJob(ctx context.Context, j *model.Job) error
	JobByID(ctx context.Context, id string) (*model.Job, error)
	SearchJobs(ctx context.Context, city, niche, keyword string) ([]model.Job, error)
	JobsByEmployer(ctx context.Context, employerID string) ([]model.Job, error)
	DeleteJob(ctx context.Context, id, employerID string) error
}

// PostRequest carries the fields of a new posting.
type PostRequest struct {
	Title                    string `json:"title"`
	JobType                  string `json:"jobType"`
	Location                 string `json:"location"`
	CompanyName              string `json:"companyName"`
	Introduction             string `json:"introduction"`
	Responsibilities         string `json:"responsibilities"`
	Qualifications           string `json:"qualifications"`
	Offers                   string `json:"offers"`
	Salary                   string `json:"salary"`
	HiringMultipleCandidates string `json:"hiringMultipleCandidates"`
	PersonalWebsiteTitle     string `json:"personalWebsiteTitle"`
	PersonalWebsiteURL       string `json:"personalWebsiteUrl"`
	JobNiche                 string `json:"jobNiche"`
}

// SearchFilter narrows the public posting list.
type SearchFilter struct {
	City    string
	Niche   string
	Keyword string
}

// Service encapsulates posting operations.
type Service struct {
	store Store
}

// NewService returns a configured Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Validate checks a PostRequest without touching storage.
func (r *PostRequest) Validate() error {
	if r.Title == "" || r.JobType == "" || r.Location == "" || r.CompanyName == "" ||
		r.Introduction == "" || r.Responsibilities == "" || r.Qualifications == "" ||
		r.Salary == "" || r.JobNiche == "" {
		return model.Validationf("please provide full job details")
	}
	if (r.PersonalWebsiteTitle == "") != (r.PersonalWebsiteURL == "") {
		return model.Validationf("provide both the website url and title, or leave both blank")
	}
	return nil
}

// Post creates a posting on behalf of employerID. The posting starts with its
// sent flag false, so the next dispatch tick announces it.
func (s *Service) Post(ctx context.Context, employerID string, req PostRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hiring := req.HiringMultipleCandidates
	if hiring == "" {
		hiring = "No"
	}

	j := &model.Job{
		Title:                    req.Title,
		JobType:                  req.JobType,
		Location:                 req.Location,
		CompanyName:              req.CompanyName,
		Introduction:             req.Introduction,
		Responsibilities:         req.Responsibilities,
		Qualifications:           req.Qualifications,
		Offers:                   req.Offers,
		Salary:                   req.Salary,
		HiringMultipleCandidates: hiring,
		PersonalWebsiteTitle:     req.PersonalWebsiteTitle,
		PersonalWebsiteURL:       req.PersonalWebsiteURL,
		JobNiche:                 req.JobNiche,
		PostedBy:                 employerID,
	}
	if err := s.store.CreateJob(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Search returns all postings matching the filter, newest first.
func (s *Service) Search(ctx context.Context, f SearchFilter) ([]model.Job, error) {
	return s.store.SearchJobs(ctx, f.City, f.Niche, f.Keyword)
}

// Get returns one posting by ID.
func (s *Service) Get(ctx context.Context, id string) (*model.Job, error) {
	return s.store.JobByID(ctx, id)
}

// Mine returns the postings created by employerID, newest first.
func (s *Service) Mine(ctx context.Context, employerID string) ([]model.Job, error) {
	return s.store.JobsByEmployer(ctx, employerID)
}

// Delete removes a posting owned by employerID.
func (s *Service) Delete(ctx context.Context, id, employerID string) error {
	return s.store.DeleteJob(ctx, id, employerID)
}
