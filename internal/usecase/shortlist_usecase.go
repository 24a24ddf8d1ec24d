package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"placement-hub/internal/domain/application"
	"placement-hub/internal/domain/job"
	"placement-hub/internal/repository"
	"placement-hub/internal/roster"

	"github.com/google/uuid"
)

type ShortlistUsecase interface {
	Upload(ctx context.Context, in UploadInput) (UploadResult, error)
}

type UploadInput struct {
	JobID        uuid.UUID
	TargetStatus string
	Filename     string
	Data         []byte
	// IncludeUnmatched returns the dropped identifiers instead of only a count.
	IncludeUnmatched bool
}

type UploadResult struct {
	TotalProcessed      int
	MatchedStudents     int
	UpdatedApplications int
	CreatedApplications int
	FailedRows          int
	UnmatchedCount      int
	Unmatched           []Identifier
}

type Shortlist struct {
	jobs       repository.JobRepository
	resolver   *IdentifierResolver
	reconciler *ShortlistReconciler
	publisher  application.Publisher
	logger     *log.Logger
}

func NewShortlistUsecase(jobs repository.JobRepository, resolver *IdentifierResolver, reconciler *ShortlistReconciler, publisher application.Publisher, logger *log.Logger) *Shortlist {
	if logger == nil {
		logger = log.Default()
	}
	return &Shortlist{jobs: jobs, resolver: resolver, reconciler: reconciler, publisher: publisher, logger: logger}
}

// Upload reads a roster file and reconciles every resolved student to the
// target status for the job. An empty target means shortlisted.
func (u *Shortlist) Upload(ctx context.Context, in UploadInput) (UploadResult, error) {
	start := time.Now()

	target := application.StatusShortlisted
	if in.TargetStatus != "" {
		s, ok := application.ParseStatus(in.TargetStatus)
		if !ok || !IsShortlistTarget(s) {
			return UploadResult{}, fmt.Errorf("%w: %q", ErrInvalidStatus, in.TargetStatus)
		}
		target = s
	}

	if in.JobID == uuid.Nil {
		return UploadResult{}, fmt.Errorf("%w: job_id is required", ErrInvalidInput)
	}
	if _, err := u.jobs.FindByID(ctx, in.JobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return UploadResult{}, err
		}
		return UploadResult{}, fmt.Errorf("%w: find job: %w", ErrStore, err)
	}

	format, err := roster.FormatFromFilename(in.Filename)
	if err != nil {
		return UploadResult{}, err
	}
	rows, err := roster.Read(in.Data, format)
	if err != nil {
		return UploadResult{}, err
	}

	resolution, err := u.resolver.Resolve(ctx, rows)
	if err != nil {
		return UploadResult{}, err
	}

	rec, err := u.reconciler.Reconcile(ctx, in.JobID, target, resolution.Profiles)
	if err != nil {
		return UploadResult{}, err
	}

	out := UploadResult{
		TotalProcessed:      resolution.Identifiers,
		MatchedStudents:     rec.Matched,
		UpdatedApplications: rec.Updated,
		CreatedApplications: rec.Created,
		FailedRows:          rec.Failed,
		UnmatchedCount:      len(resolution.Unmatched),
	}
	if in.IncludeUnmatched {
		out.Unmatched = resolution.Unmatched
		if out.Unmatched == nil {
			out.Unmatched = []Identifier{}
		}
	}

	publishEvent(ctx, u.publisher, u.logger, application.Event{
		Type:      application.EventShortlistReconciled,
		JobID:     in.JobID,
		Status:    target,
		Matched:   rec.Matched,
		Updated:   rec.Updated,
		Created:   rec.Created,
		Timestamp: time.Now().UTC(),
	})

	u.logger.Printf("shortlist_upload job_id=%s file=%q rows=%d identifiers=%d matched=%d updated=%d created=%d failed=%d duration=%s",
		in.JobID, in.Filename, len(rows), out.TotalProcessed, out.MatchedStudents, out.UpdatedApplications, out.CreatedApplications, out.FailedRows, time.Since(start))
	return out, nil
}
