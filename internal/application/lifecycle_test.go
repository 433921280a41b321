package application_test

import (
	"testing"

	"nichenest/board-service/internal/application"
	"nichenest/board-service/internal/model"
)

// ── StateOf ────────────────────────────────────────────────────────────────

func TestStateOf(t *testing.T) {
	cases := []struct {
		bySeeker   bool
		byEmployer bool
		want       application.State
	}{
		{false, false, application.StateActive},
		{true, false, application.StateSeekerHidden},
		{false, true, application.StateEmployerHidden},
		{true, true, application.StateDestroyed},
	}
	for _, c := range cases {
		a := &model.Application{DeletedByJobSeeker: c.bySeeker, DeletedByEmployer: c.byEmployer}
		if got := application.StateOf(a); got != c.want {
			t.Errorf("StateOf(seeker=%v, employer=%v) = %s, want %s",
				c.bySeeker, c.byEmployer, got, c.want)
		}
	}
}

// ── VisibleTo ──────────────────────────────────────────────────────────────

// Each party's visibility depends only on its own flag.
func TestVisibleTo_OwnFlagOnly(t *testing.T) {
	a := &model.Application{DeletedByEmployer: true}
	if !application.VisibleTo(a, model.RoleJobSeeker) {
		t.Error("seeker should still see an application only the employer deleted")
	}
	if application.VisibleTo(a, model.RoleEmployer) {
		t.Error("employer should not see an application it deleted")
	}

	b := &model.Application{DeletedByJobSeeker: true}
	if application.VisibleTo(b, model.RoleJobSeeker) {
		t.Error("seeker should not see an application it deleted")
	}
	if !application.VisibleTo(b, model.RoleEmployer) {
		t.Error("employer should still see an application only the seeker deleted")
	}
}

func TestVisibleTo_UnknownRole(t *testing.T) {
	a := &model.Application{}
	if application.VisibleTo(a, model.Role("Admin")) {
		t.Error("an unknown role should see nothing")
	}
}

// ── OwnsDeleteFlag ─────────────────────────────────────────────────────────

func TestOwnsDeleteFlag(t *testing.T) {
	if !application.OwnsDeleteFlag(model.RoleJobSeeker) {
		t.Error("OwnsDeleteFlag(Job Seeker) should be true")
	}
	if !application.OwnsDeleteFlag(model.RoleEmployer) {
		t.Error("OwnsDeleteFlag(Employer) should be true")
	}
	for _, r := range []model.Role{"", "Admin", "job seeker"} {
		if application.OwnsDeleteFlag(r) {
			t.Errorf("OwnsDeleteFlag(%q) should be false", r)
		}
	}
}
