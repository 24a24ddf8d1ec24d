package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"placement-hub/internal/domain/application"
	"placement-hub/internal/domain/eligibility"
	"placement-hub/internal/domain/job"
	"placement-hub/internal/domain/profile"
	"placement-hub/internal/repository"

	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	Submit(ctx context.Context, in SubmitInput) (application.Application, error)
	Get(ctx context.Context, id uuid.UUID) (application.Application, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]application.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error)
}

type SubmitInput struct {
	JobID       uuid.UUID
	StudentID   uuid.UUID
	CoverLetter string
	ResumeURL   string
}

type Applications struct {
	apps      repository.ApplicationRepository
	jobs      repository.JobRepository
	profiles  repository.ProfileRepository
	publisher application.Publisher
	logger    *log.Logger
	now       func() time.Time
	newID     func() uuid.UUID
}

func NewApplicationUsecase(apps repository.ApplicationRepository, jobs repository.JobRepository, profiles repository.ProfileRepository, publisher application.Publisher, logger *log.Logger) *Applications {
	if logger == nil {
		logger = log.Default()
	}
	return &Applications{
		apps:      apps,
		jobs:      jobs,
		profiles:  profiles,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.New,
	}
}

// Submit creates an application in the applied status for an eligible
// student. A student can hold at most one application per job.
func (u *Applications) Submit(ctx context.Context, in SubmitInput) (application.Application, error) {
	if in.JobID == uuid.Nil || in.StudentID == uuid.Nil {
		return application.Application{}, fmt.Errorf("%w: job_id and student_id are required", ErrInvalidInput)
	}

	j, err := u.jobs.FindByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, err
		}
		return application.Application{}, fmt.Errorf("%w: find job: %w", ErrStore, err)
	}
	if j.Status != job.StatusActive {
		return application.Application{}, ErrJobInactive
	}

	p, err := u.profiles.FindByID(ctx, in.StudentID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return application.Application{}, err
		}
		return application.Application{}, fmt.Errorf("%w: find profile: %w", ErrStore, err)
	}

	now := u.now()
	if v := eligibility.Evaluate(p, j, now); !v.Eligible {
		return application.Application{}, fmt.Errorf("%w: %s", ErrNotEligible, v.Detail)
	}

	existing, err := u.apps.FindByJobAndStudents(ctx, in.JobID, []uuid.UUID{in.StudentID})
	if err != nil {
		return application.Application{}, fmt.Errorf("%w: find applications: %w", ErrStore, err)
	}
	if len(existing) > 0 {
		return application.Application{}, ErrAlreadyApplied
	}

	created, err := u.apps.Insert(ctx, application.Application{
		ID:          u.newID(),
		JobID:       in.JobID,
		StudentID:   in.StudentID,
		Status:      application.StatusApplied,
		CoverLetter: optional(in.CoverLetter),
		ResumeURL:   optional(in.ResumeURL),
		AppliedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return application.Application{}, fmt.Errorf("%w: insert application: %w", ErrStore, err)
	}

	appID, studentID := created.ID, created.StudentID
	publishEvent(ctx, u.publisher, u.logger, application.Event{
		Type:          application.EventSubmitted,
		ApplicationID: &appID,
		JobID:         created.JobID,
		StudentID:     &studentID,
		Status:        created.Status,
		Timestamp:     now.UTC(),
	})

	u.logger.Printf("application_submit id=%s job_id=%s student_id=%s", created.ID, created.JobID, created.StudentID)
	return created, nil
}

func (u *Applications) Get(ctx context.Context, id uuid.UUID) (application.Application, error) {
	a, err := u.apps.FindByID(ctx, id)
	if err != nil {
		return application.Application{}, storeErr("find application", err)
	}
	return a, nil
}

func (u *Applications) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]application.Application, error) {
	items, err := u.apps.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("%w: list applications by student: %w", ErrStore, err)
	}
	return items, nil
}

func (u *Applications) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	if _, err := u.jobs.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: find job: %w", ErrStore, err)
	}
	items, err := u.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("%w: list applications by job: %w", ErrStore, err)
	}
	return items, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
