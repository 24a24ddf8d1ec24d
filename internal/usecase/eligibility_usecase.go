package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"placement-hub/internal/domain/eligibility"
	"placement-hub/internal/domain/job"
	"placement-hub/internal/domain/profile"
	"placement-hub/internal/repository"

	"github.com/google/uuid"
)

type EligibilityUsecase interface {
	EligibleJobs(ctx context.Context, studentID uuid.UUID) ([]job.Job, error)
	Report(ctx context.Context, studentID uuid.UUID) (EligibilityReport, error)
}

type JobVerdict struct {
	Job      job.Job
	Eligible bool
	Gate     eligibility.Gate
	Detail   string
}

type EligibilityReport struct {
	Profile       profile.Profile
	TotalJobs     int
	EligibleCount int
	Jobs          []JobVerdict
}

type Eligibility struct {
	profiles repository.ProfileRepository
	active   *ActiveJobSource
	logger   *log.Logger
	now      func() time.Time
}

func NewEligibilityUsecase(profiles repository.ProfileRepository, active *ActiveJobSource, logger *log.Logger) *Eligibility {
	if logger == nil {
		logger = log.Default()
	}
	return &Eligibility{profiles: profiles, active: active, logger: logger, now: time.Now}
}

// EligibleJobs returns the active jobs the student passes every gate for, in
// the order the store returned them.
func (u *Eligibility) EligibleJobs(ctx context.Context, studentID uuid.UUID) ([]job.Job, error) {
	report, err := u.evaluate(ctx, studentID)
	if err != nil {
		return nil, err
	}

	out := make([]job.Job, 0, report.EligibleCount)
	for _, v := range report.Jobs {
		if v.Eligible {
			out = append(out, v.Job)
		}
	}
	return out, nil
}

// Report returns every active job with its verdict and failing gate.
func (u *Eligibility) Report(ctx context.Context, studentID uuid.UUID) (EligibilityReport, error) {
	return u.evaluate(ctx, studentID)
}

func (u *Eligibility) evaluate(ctx context.Context, studentID uuid.UUID) (EligibilityReport, error) {
	p, err := u.profiles.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return EligibilityReport{}, err
		}
		return EligibilityReport{}, fmt.Errorf("%w: find profile: %w", ErrStore, err)
	}

	jobs, err := u.active.List(ctx)
	if err != nil {
		return EligibilityReport{}, err
	}

	now := u.now()
	report := EligibilityReport{Profile: p, TotalJobs: len(jobs), Jobs: make([]JobVerdict, 0, len(jobs))}
	for _, j := range jobs {
		v := eligibility.Evaluate(p, j, now)
		if v.Eligible {
			report.EligibleCount++
		}
		report.Jobs = append(report.Jobs, JobVerdict{Job: j, Eligible: v.Eligible, Gate: v.Gate, Detail: v.Detail})
	}

	u.logger.Printf("eligibility student_id=%s active_jobs=%d eligible=%d", studentID, report.TotalJobs, report.EligibleCount)
	return report, nil
}
