package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"placement-hub/internal/domain/application"
	"placement-hub/internal/repository"

	"github.com/google/uuid"
)

type ApplicationStatusUsecase interface {
	Transition(ctx context.Context, id uuid.UUID, status string) (application.Application, error)
}

type ApplicationStatus struct {
	apps      repository.ApplicationRepository
	publisher application.Publisher
	strict    bool
	logger    *log.Logger
	now       func() time.Time
}

// NewApplicationStatusUsecase builds the status transition. With strict set,
// only lifecycle edges accepted by application.CanTransition are allowed.
func NewApplicationStatusUsecase(apps repository.ApplicationRepository, publisher application.Publisher, strict bool, logger *log.Logger) *ApplicationStatus {
	if logger == nil {
		logger = log.Default()
	}
	return &ApplicationStatus{apps: apps, publisher: publisher, strict: strict, logger: logger, now: time.Now}
}

func (u *ApplicationStatus) Transition(ctx context.Context, id uuid.UUID, raw string) (application.Application, error) {
	status, ok := application.ParseStatus(raw)
	if !ok {
		return application.Application{}, fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}

	if u.strict {
		current, err := u.apps.FindByID(ctx, id)
		if err != nil {
			return application.Application{}, storeErr("find application", err)
		}
		if !application.CanTransition(current.Status, status) {
			return application.Application{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
		}
	}

	updated, err := u.apps.UpdateStatus(ctx, id, status, u.now())
	if err != nil {
		return application.Application{}, storeErr("update application status", err)
	}

	appID, studentID := updated.ID, updated.StudentID
	publishEvent(ctx, u.publisher, u.logger, application.Event{
		Type:          application.EventStatusChanged,
		ApplicationID: &appID,
		JobID:         updated.JobID,
		StudentID:     &studentID,
		Status:        updated.Status,
		Timestamp:     updated.UpdatedAt.UTC(),
	})

	u.logger.Printf("application_status id=%s status=%s strict=%t", id, status, u.strict)
	return updated, nil
}

// storeErr leaves application.ErrNotFound unwrapped and tags every other
// failure as ErrStore.
func storeErr(op string, err error) error {
	if errors.Is(err, application.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}
