package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"placement-hub/internal/domain/job"
	"placement-hub/internal/repository"

	"github.com/google/uuid"
)

type JobUsecase interface {
	ListActive(ctx context.Context) ([]job.Job, error)
	// ListAll includes inactive jobs and bypasses the active-job cache.
	ListAll(ctx context.Context) ([]job.Job, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
	Create(ctx context.Context, in CreateJobInput) (job.Job, error)
}

type CreateJobInput struct {
	CompanyName       string
	Role              string
	Location          string
	Status            string
	MinCGPA           float64
	EligibleBranches  []string
	MaxActiveBacklogs int
	Deadline          *time.Time
}

type Jobs struct {
	jobs   repository.JobRepository
	active *ActiveJobSource
	logger *log.Logger
	now    func() time.Time
	newID  func() uuid.UUID
}

func NewJobUsecase(jobs repository.JobRepository, active *ActiveJobSource, logger *log.Logger) *Jobs {
	if logger == nil {
		logger = log.Default()
	}
	return &Jobs{jobs: jobs, active: active, logger: logger, now: time.Now, newID: uuid.New}
}

func (u *Jobs) ListActive(ctx context.Context) ([]job.Job, error) {
	return u.active.List(ctx)
}

func (u *Jobs) ListAll(ctx context.Context) ([]job.Job, error) {
	items, err := u.jobs.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: find all jobs: %w", ErrStore, err)
	}
	return items, nil
}

func (u *Jobs) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, err
		}
		return job.Job{}, fmt.Errorf("%w: find job: %w", ErrStore, err)
	}
	return j, nil
}

func (u *Jobs) Create(ctx context.Context, in CreateJobInput) (job.Job, error) {
	j, err := in.toJob()
	if err != nil {
		return job.Job{}, err
	}
	now := u.now().UTC()
	j.ID = u.newID()
	j.CreatedAt = now
	j.UpdatedAt = now

	created, err := u.jobs.Create(ctx, j)
	if err != nil {
		return job.Job{}, fmt.Errorf("%w: create job: %w", ErrStore, err)
	}

	if created.Status == job.StatusActive {
		u.active.Invalidate(ctx)
	}
	u.logger.Printf("job_create id=%s company=%q role=%q status=%s", created.ID, created.CompanyName, created.Role, created.Status)
	return created, nil
}

func (in CreateJobInput) toJob() (job.Job, error) {
	company := strings.TrimSpace(in.CompanyName)
	role := strings.TrimSpace(in.Role)
	if company == "" || role == "" {
		return job.Job{}, fmt.Errorf("%w: company_name and role are required", ErrInvalidInput)
	}
	if in.MinCGPA < 0 || in.MinCGPA > 10 {
		return job.Job{}, fmt.Errorf("%w: min_cgpa must be between 0 and 10", ErrInvalidInput)
	}
	if in.MaxActiveBacklogs < 0 {
		return job.Job{}, fmt.Errorf("%w: max_active_backlogs must not be negative", ErrInvalidInput)
	}

	status := job.StatusActive
	if raw := strings.ToLower(strings.TrimSpace(in.Status)); raw != "" {
		status = job.Status(raw)
		if !status.Valid() {
			return job.Job{}, fmt.Errorf("%w: unknown job status %q", ErrInvalidInput, in.Status)
		}
	}

	branches := make([]string, 0, len(in.EligibleBranches))
	for _, b := range in.EligibleBranches {
		if b = strings.TrimSpace(b); b != "" {
			branches = append(branches, b)
		}
	}

	return job.Job{
		CompanyName:       company,
		Role:              role,
		Location:          strings.TrimSpace(in.Location),
		Status:            status,
		MinCGPA:           in.MinCGPA,
		EligibleBranches:  branches,
		MaxActiveBacklogs: in.MaxActiveBacklogs,
		Deadline:          in.Deadline,
	}, nil
}
