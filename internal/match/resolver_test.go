package match_test

import (
	"context"
	"errors"
	"testing"

	"nichenest/board-service/internal/match"
	"nichenest/board-service/internal/model"
)

type stubSource struct {
	seekers []model.Seeker
	err     error
	queried []string
}

func (s *stubSource) SeekersByNiche(_ context.Context, niche string) ([]model.Seeker, error) {
	s.queried = append(s.queried, niche)
	return s.seekers, s.err
}

func TestResolve_ReturnsSourceSeekers(t *testing.T) {
	src := &stubSource{seekers: []model.Seeker{{ID: "s1"}, {ID: "s2"}}}
	r := match.NewResolver(src)

	got, err := r.Resolve(context.Background(), "Backend")
	if err != nil {
		t.Fatalf("Resolve returned unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 seekers, got %d", len(got))
	}
	if len(src.queried) != 1 || src.queried[0] != "Backend" {
		t.Errorf("source queried with %v, want [Backend]", src.queried)
	}
}

// An empty niche never matches anyone and never reaches the store.
func TestResolve_EmptyNicheShortCircuits(t *testing.T) {
	src := &stubSource{seekers: []model.Seeker{{ID: "s1"}}}
	r := match.NewResolver(src)

	got, err := r.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve returned unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty niche must resolve to no seekers, got %d", len(got))
	}
	if len(src.queried) != 0 {
		t.Errorf("empty niche must not hit the source, got %v", src.queried)
	}
}

func TestResolve_WrapsSourceError(t *testing.T) {
	cause := errors.New("connection refused")
	r := match.NewResolver(&stubSource{err: cause})

	_, err := r.Resolve(context.Background(), "Backend")
	if !errors.Is(err, cause) {
		t.Fatalf("Resolve error = %v, want wrapped %v", err, cause)
	}
}
