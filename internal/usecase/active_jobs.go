package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"placement-hub/internal/domain/job"
	"placement-hub/internal/repository"
)

const ActiveJobsCacheKey = "jobs:active"

// ActiveJobsCacheTTL bounds how long a job closed outside this service can
// still be served as active.
const ActiveJobsCacheTTL = 30 * time.Second

type JobCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ActiveJobSource reads the active job list through an optional cache.
type ActiveJobSource struct {
	jobs   repository.JobRepository
	cache  JobCache
	logger *log.Logger
}

func NewActiveJobSource(jobs repository.JobRepository, cache JobCache, logger *log.Logger) *ActiveJobSource {
	if logger == nil {
		logger = log.Default()
	}
	return &ActiveJobSource{jobs: jobs, cache: cache, logger: logger}
}

func (s *ActiveJobSource) List(ctx context.Context) ([]job.Job, error) {
	if s.cache != nil {
		var cached []job.Job
		hit, err := s.cache.GetJSON(ctx, ActiveJobsCacheKey, &cached)
		if err == nil && hit {
			s.logger.Printf("[Jobs] Cache HIT: %s", ActiveJobsCacheKey)
			return cached, nil
		}
		s.logger.Printf("[Jobs] Cache MISS: %s", ActiveJobsCacheKey)
	}

	jobs, err := s.jobs.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: find active jobs: %w", ErrStore, err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, ActiveJobsCacheKey, jobs, ActiveJobsCacheTTL); err != nil {
			s.logger.Printf("[Jobs] Cache SET failed key=%s err=%v", ActiveJobsCacheKey, err)
		}
	}
	return jobs, nil
}

func (s *ActiveJobSource) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, ActiveJobsCacheKey); err != nil {
		s.logger.Printf("[Jobs] Cache DELETE failed key=%s err=%v", ActiveJobsCacheKey, err)
	}
}
