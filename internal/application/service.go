package application

import (
	"context"
	"fmt"
	"log/slog"

	"nichenest/board-service/internal/events"
	"nichenest/board-service/internal/model"
)

// Store is the persistence surface the lifecycle needs. *store.Store
// satisfies it; tests use an in-memory fake.
type Store interface {
	JobByID(ctx context.Context, id string) (*model.Job, error)
	SeekerResume(ctx context.Context, seekerID string) (model.Resume, error)
	CreateApplication(ctx context.Context, a *model.Application) error
	ApplicationByID(ctx context.Context, id string) (*model.Application, error)
	SetDeleteFlag(ctx context.Context, id string, role model.Role) (*model.Application, error)
	DeleteApplication(ctx context.Context, id string) error
	ApplicationsBySeeker(ctx context.Context, seekerID string) ([]model.Application, error)
	ApplicationsByEmployer(ctx context.Context, employerID string) ([]model.Application, error)
}

// SubmitRequest carries the snapshot fields a seeker provides when applying.
// Resume, when non-nil, is the freshly uploaded reference; otherwise the
// seeker's stored profile resume is used.
type SubmitRequest struct {
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Address     string        `json:"address"`
	CoverLetter string        `json:"coverLetter"`
	Resume      *model.Resume `json:"resume,omitempty"`
}

// Service encapsulates submit/delete/list for applications.
// It has no dependency on net/http — it can be used by any transport layer.
type Service struct {
	store  Store
	events events.Publisher
}

// NewService returns a configured Service. publisher may be nil when no event
// side-channel is wired (tests).
func NewService(store Store, publisher events.Publisher) *Service {
	return &Service{store: store, events: publisher}
}

// Submit creates an application for (seeker, job). The snapshot fields are
// copied at creation and never re-read from the profile afterwards.
func (s *Service) Submit(ctx context.Context, seekerID, jobID string, req SubmitRequest) (*model.Application, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Address == "" || req.CoverLetter == "" {
		return nil, model.Validationf("all fields are required")
	}

	job, err := s.store.JobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	resume := req.Resume
	if resume == nil || resume.URL == "" {
		stored, err := s.store.SeekerResume(ctx, seekerID)
		if err != nil {
			return nil, err
		}
		if stored.URL == "" {
			return nil, model.ErrMissingResume
		}
		resume = &stored
	}

	app := &model.Application{
		JobSeekerID:      seekerID,
		JobSeekerName:    req.Name,
		JobSeekerEmail:   req.Email,
		JobSeekerPhone:   req.Phone,
		JobSeekerAddress: req.Address,
		CoverLetter:      req.CoverLetter,
		ResumePublicID:   resume.PublicID,
		ResumeURL:        resume.URL,
		EmployerID:       job.PostedBy,
		JobID:            job.ID,
		JobTitle:         job.Title,
	}

	if err := s.store.CreateApplication(ctx, app); err != nil {
		return nil, err
	}

	if s.events != nil {
		payload := map[string]string{
			"applicationId": app.ID,
			"jobId":         job.ID,
			"jobSeekerId":   seekerID,
			"employerId":    job.PostedBy,
		}
		if err := s.events.Publish(ctx, events.ChannelApplicationSubmitted, payload); err != nil {
			slog.Warn("publish EVENT_APPLICATION_SUBMITTED failed", "err", err)
		}
	}

	return app, nil
}

// Delete flips the delete flag owned by role on the given application, then
// hard-deletes the row if both flags have converged to true. A role that owns
// no flag is a recorded no-op, not an error. The caller observes only success,
// never which branch ran.
func (s *Service) Delete(ctx context.Context, actorID string, role model.Role, appID string) error {
	if _, err := s.store.ApplicationByID(ctx, appID); err != nil {
		return err
	}

	if !OwnsDeleteFlag(role) {
		slog.Info("application delete ignored for role",
			"applicationId", appID, "actorId", actorID, "role", string(role))
		return nil
	}

	app, err := s.store.SetDeleteFlag(ctx, appID, role)
	if err != nil {
		return err
	}

	if StateOf(app) == StateDestroyed {
		if err := s.store.DeleteApplication(ctx, appID); err != nil {
			return fmt.Errorf("destroy application: %w", err)
		}
	}
	return nil
}

// ListFor returns the actor's applications newest-first, excluding rows the
// actor has already soft-deleted.
func (s *Service) ListFor(ctx context.Context, actorID string, role model.Role) ([]model.Application, error) {
	switch role {
	case model.RoleJobSeeker:
		return s.store.ApplicationsBySeeker(ctx, actorID)
	case model.RoleEmployer:
		return s.store.ApplicationsByEmployer(ctx, actorID)
	}
	return nil, model.Validationf("role %q has no application list", role)
}
