package model_test

import (
	"testing"

	"nichenest/board-service/internal/model"
)

// ── MatchesNiche ───────────────────────────────────────────────────────────

func TestMatchesNiche_AnySlot(t *testing.T) {
	s := model.Seeker{FirstNiche: "Backend", SecondNiche: "DevOps", ThirdNiche: "Data Science"}
	for _, niche := range []string{"Backend", "DevOps", "Data Science"} {
		if !s.MatchesNiche(niche) {
			t.Errorf("MatchesNiche(%q) should be true", niche)
		}
	}
}

func TestMatchesNiche_NoMatch(t *testing.T) {
	s := model.Seeker{FirstNiche: "Backend", SecondNiche: "DevOps", ThirdNiche: "Data Science"}
	if s.MatchesNiche("Frontend") {
		t.Error("MatchesNiche(\"Frontend\") should be false")
	}
}

// Matching is exact and case-sensitive as stored — no normalisation.
func TestMatchesNiche_CaseSensitive(t *testing.T) {
	s := model.Seeker{FirstNiche: "Backend"}
	for _, niche := range []string{"backend", "BACKEND", "Backend "} {
		if s.MatchesNiche(niche) {
			t.Errorf("MatchesNiche(%q) should be false (exact match only)", niche)
		}
	}
}

// An empty niche must never match, even against unfilled slots.
func TestMatchesNiche_EmptyNiche(t *testing.T) {
	s := model.Seeker{FirstNiche: "Backend"}
	if s.MatchesNiche("") {
		t.Error("MatchesNiche(\"\") should be false")
	}
}

func TestMatchesNiche_PartialSlots(t *testing.T) {
	s := model.Seeker{SecondNiche: "Frontend"}
	if !s.MatchesNiche("Frontend") {
		t.Error("MatchesNiche should match a niche in any slot, not just the first")
	}
	if s.MatchesNiche("Backend") {
		t.Error("MatchesNiche should be false for an undeclared niche")
	}
}

// ── ParseRole ──────────────────────────────────────────────────────────────

func TestParseRole_ValidValues(t *testing.T) {
	valid := []string{"Job Seeker", "Employer"}
	for _, s := range valid {
		got, err := model.ParseRole(s)
		if err != nil {
			t.Errorf("ParseRole(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseRole(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseRole_InvalidValues(t *testing.T) {
	invalid := []string{"", "Admin", "job seeker", "EMPLOYER", " Employer"}
	for _, s := range invalid {
		if _, err := model.ParseRole(s); err == nil {
			t.Errorf("ParseRole(%q) expected error, got nil", s)
		}
	}
}
