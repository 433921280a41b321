package seeker_test

import (
	"context"
	"errors"
	"testing"

	"nichenest/board-service/internal/model"
	"nichenest/board-service/internal/seeker"
)

type stubStore struct {
	updated [][3]string
}

func (s *stubStore) UpdateSeekerNiches(_ context.Context, _ string, first, second, third string) error {
	s.updated = append(s.updated, [3]string{first, second, third})
	return nil
}

func TestUpdateNiches_AllThreeRequired(t *testing.T) {
	cases := []seeker.NichesRequest{
		{},
		{FirstNiche: "Backend"},
		{FirstNiche: "Backend", SecondNiche: "DevOps"},
		{SecondNiche: "DevOps", ThirdNiche: "Data"},
	}
	st := &stubStore{}
	svc := seeker.NewService(st)
	for i, req := range cases {
		err := svc.UpdateNiches(context.Background(), "seeker-1", req)
		var ve *model.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("case %d: expected ValidationError, got %v", i, err)
		}
	}
	if len(st.updated) != 0 {
		t.Errorf("invalid requests must not reach the store, got %d updates", len(st.updated))
	}
}

func TestUpdateNiches_MustBeDistinct(t *testing.T) {
	svc := seeker.NewService(&stubStore{})
	req := seeker.NichesRequest{FirstNiche: "Backend", SecondNiche: "Backend", ThirdNiche: "Data"}
	var ve *model.ValidationError
	if !errors.As(svc.UpdateNiches(context.Background(), "seeker-1", req), &ve) {
		t.Error("duplicate niches must fail validation")
	}
}

func TestUpdateNiches_Valid(t *testing.T) {
	st := &stubStore{}
	svc := seeker.NewService(st)
	req := seeker.NichesRequest{FirstNiche: "Backend", SecondNiche: "DevOps", ThirdNiche: "Data"}
	if err := svc.UpdateNiches(context.Background(), "seeker-1", req); err != nil {
		t.Fatalf("UpdateNiches returned unexpected error: %v", err)
	}
	if len(st.updated) != 1 || st.updated[0] != [3]string{"Backend", "DevOps", "Data"} {
		t.Errorf("store update = %v", st.updated)
	}
}
