package job_test

import (
	"context"
	"errors"
	"testing"

	"nichenest/board-service/internal/job"
	"nichenest/board-service/internal/model"
)

type stubStore struct {
	created []model.Job
}

func (s *stubStore) CreateJob(_ context.Context, j *model.Job) error {
	j.ID = "job-1"
	s.created = append(s.created, *j)
	return nil
}
func (s *stubStore) JobByID(context.Context, string) (*model.Job, error) { return nil, model.ErrNotFound }
func (s *stubStore) SearchJobs(context.Context, string, string, string) ([]model.Job, error) {
	return nil, nil
}
func (s *stubStore) JobsByEmployer(context.Context, string) ([]model.Job, error) { return nil, nil }
func (s *stubStore) DeleteJob(context.Context, string, string) error             { return nil }

func validPost() job.PostRequest {
	return job.PostRequest{
		Title:            "Backend Engineer",
		JobType:          "Full-time",
		Location:         "Berlin",
		CompanyName:      "Acme",
		Introduction:     "We build things.",
		Responsibilities: "Build APIs.",
		Qualifications:   "Go experience.",
		Salary:           "90k",
		JobNiche:         "Backend",
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	fields := []func(*job.PostRequest){
		func(r *job.PostRequest) { r.Title = "" },
		func(r *job.PostRequest) { r.JobType = "" },
		func(r *job.PostRequest) { r.Location = "" },
		func(r *job.PostRequest) { r.CompanyName = "" },
		func(r *job.PostRequest) { r.Introduction = "" },
		func(r *job.PostRequest) { r.Responsibilities = "" },
		func(r *job.PostRequest) { r.Qualifications = "" },
		func(r *job.PostRequest) { r.Salary = "" },
		func(r *job.PostRequest) { r.JobNiche = "" },
	}
	for i, blank := range fields {
		req := validPost()
		blank(&req)
		var ve *model.ValidationError
		if !errors.As(req.Validate(), &ve) {
			t.Errorf("case %d: expected ValidationError for missing field", i)
		}
	}
}

// Website title and url must be provided together or not at all.
func TestValidate_WebsitePairing(t *testing.T) {
	req := validPost()
	req.PersonalWebsiteTitle = "My Site"
	if req.Validate() == nil {
		t.Error("title without url must fail validation")
	}

	req = validPost()
	req.PersonalWebsiteURL = "https://example.com"
	if req.Validate() == nil {
		t.Error("url without title must fail validation")
	}

	req = validPost()
	req.PersonalWebsiteTitle = "My Site"
	req.PersonalWebsiteURL = "https://example.com"
	if err := req.Validate(); err != nil {
		t.Errorf("matched pair should validate, got %v", err)
	}
}

func TestPost_DefaultsAndOwnership(t *testing.T) {
	st := &stubStore{}
	svc := job.NewService(st)

	j, err := svc.Post(context.Background(), "emp-1", validPost())
	if err != nil {
		t.Fatalf("Post returned unexpected error: %v", err)
	}
	if j.PostedBy != "emp-1" {
		t.Errorf("PostedBy = %q, want emp-1", j.PostedBy)
	}
	if j.HiringMultipleCandidates != "No" {
		t.Errorf("HiringMultipleCandidates default = %q, want No", j.HiringMultipleCandidates)
	}
	if len(st.created) != 1 {
		t.Fatalf("expected 1 stored job, got %d", len(st.created))
	}
	if st.created[0].NewslettersSent {
		t.Error("new posting must start unsent so the dispatcher announces it")
	}
}

func TestPost_InvalidRequestNotStored(t *testing.T) {
	st := &stubStore{}
	svc := job.NewService(st)

	req := validPost()
	req.Title = ""
	if _, err := svc.Post(context.Background(), "emp-1", req); err == nil {
		t.Fatal("expected validation error")
	}
	if len(st.created) != 0 {
		t.Errorf("invalid posting must not be stored, got %d", len(st.created))
	}
}
