package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"placement-hub/internal/domain/application"

	"github.com/google/uuid"
)

func seededApplication(status application.Status) application.Application {
	at := time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)
	return application.Application{
		ID:        uuid.New(),
		JobID:     uuid.New(),
		StudentID: uuid.New(),
		Status:    status,
		AppliedAt: at,
		UpdatedAt: at,
	}
}

func TestApplicationStatus_TransitionAdvancesUpdatedAt(t *testing.T) {
	seed := seededApplication(application.StatusApplied)
	repo := newFakeApplicationRepo(seed)
	pub := &recordingPublisher{}
	uc := NewApplicationStatusUsecase(repo, pub, false, quietLogger())
	later := seed.UpdatedAt.Add(time.Hour)
	uc.now = func() time.Time { return later }

	got, err := uc.Transition(context.Background(), seed.ID, "shortlisted")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != application.StatusShortlisted {
		t.Fatalf("expected shortlisted, got %s", got.Status)
	}
	if !got.UpdatedAt.After(seed.UpdatedAt) {
		t.Fatalf("expected updated_at to advance, got %s", got.UpdatedAt)
	}
	if len(pub.events) != 1 || pub.events[0].Type != application.EventStatusChanged || *pub.events[0].ApplicationID != seed.ID {
		t.Fatalf("unexpected events: %+v", pub.events)
	}
}

func TestApplicationStatus_NotFound(t *testing.T) {
	for _, strict := range []bool{false, true} {
		uc := NewApplicationStatusUsecase(newFakeApplicationRepo(), nil, strict, quietLogger())
		_, err := uc.Transition(context.Background(), uuid.New(), "shortlisted")
		if !errors.Is(err, application.ErrNotFound) {
			t.Fatalf("strict=%t: expected ErrNotFound, got %v", strict, err)
		}
		if errors.Is(err, ErrStore) {
			t.Fatalf("strict=%t: not found must not be a store error", strict)
		}
	}
}

func TestApplicationStatus_InvalidStatus(t *testing.T) {
	seed := seededApplication(application.StatusApplied)
	uc := NewApplicationStatusUsecase(newFakeApplicationRepo(seed), nil, false, quietLogger())
	for _, raw := range []string{"", "pending", "hired"} {
		if _, err := uc.Transition(context.Background(), seed.ID, raw); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("status %q: expected ErrInvalidStatus, got %v", raw, err)
		}
	}
}

func TestApplicationStatus_LenientAllowsAnyListedStatus(t *testing.T) {
	seed := seededApplication(application.StatusRejected)
	uc := NewApplicationStatusUsecase(newFakeApplicationRepo(seed), nil, false, quietLogger())
	got, err := uc.Transition(context.Background(), seed.ID, "APPLIED")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != application.StatusApplied {
		t.Fatalf("expected applied, got %s", got.Status)
	}
}

func TestApplicationStatus_StrictEdges(t *testing.T) {
	cases := []struct {
		from, to application.Status
		ok       bool
	}{
		{application.StatusApplied, application.StatusShortlisted, true},
		{application.StatusApplied, application.StatusRejected, true},
		{application.StatusApplied, application.StatusSelected, false},
		{application.StatusShortlisted, application.StatusSelected, true},
		{application.StatusShortlisted, application.StatusApplied, false},
		{application.StatusSelected, application.StatusRejected, false},
		{application.StatusRejected, application.StatusRejected, true},
	}
	for _, tc := range cases {
		seed := seededApplication(tc.from)
		uc := NewApplicationStatusUsecase(newFakeApplicationRepo(seed), nil, true, quietLogger())
		_, err := uc.Transition(context.Background(), seed.ID, string(tc.to))
		if tc.ok && err != nil {
			t.Fatalf("%s -> %s: unexpected err: %v", tc.from, tc.to, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", tc.from, tc.to, err)
		}
	}
}

func TestApplicationStatus_StoreError(t *testing.T) {
	repo := newFakeApplicationRepo()
	repo.findErr = errBoom
	uc := NewApplicationStatusUsecase(repo, nil, true, quietLogger())
	if _, err := uc.Transition(context.Background(), uuid.New(), "selected"); !errors.Is(err, ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}
