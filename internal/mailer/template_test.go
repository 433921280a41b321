package mailer_test

import (
	"strings"
	"testing"

	"nichenest/board-service/internal/mailer"
	"nichenest/board-service/internal/model"
)

func TestBuildAlert_Subject(t *testing.T) {
	job := model.Job{Title: "Backend Engineer", JobNiche: "Backend"}
	subject, _ := mailer.BuildAlert(model.Seeker{Name: "Jane"}, job)

	want := "Hot Job Alert: Backend Engineer in Backend Available Now"
	if subject != want {
		t.Errorf("subject = %q, want %q", subject, want)
	}
}

func TestBuildAlert_BodyFields(t *testing.T) {
	seeker := model.Seeker{Name: "Jane"}
	job := model.Job{
		Title:       "Backend Engineer",
		CompanyName: "Acme GmbH",
		Location:    "Berlin",
		Salary:      "90k EUR",
		JobNiche:    "Backend",
	}

	_, body := mailer.BuildAlert(seeker, job)

	for _, want := range []string{"Hi Jane,", "Backend Engineer", "Acme GmbH", "Berlin", "90k EUR", "NicheNest Team"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

// Same inputs must always render the same message.
func TestBuildAlert_Deterministic(t *testing.T) {
	seeker := model.Seeker{Name: "Jane"}
	job := model.Job{Title: "Backend Engineer", CompanyName: "Acme", Location: "Berlin", Salary: "90k", JobNiche: "Backend"}

	s1, b1 := mailer.BuildAlert(seeker, job)
	s2, b2 := mailer.BuildAlert(seeker, job)
	if s1 != s2 || b1 != b2 {
		t.Error("BuildAlert must be deterministic for identical inputs")
	}
}
