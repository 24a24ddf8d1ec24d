package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"placement-hub/internal/domain/application"
	"placement-hub/internal/domain/profile"
	"placement-hub/internal/repository"

	"github.com/google/uuid"
)

type ReconcileResult struct {
	Matched int
	Updated int
	Created int
	Failed  int
}

// ShortlistReconciler moves a set of students to a target status for one job,
// updating existing applications and creating missing ones.
//
// Uniqueness per (job, student) relies on the lookup before insert. Two
// concurrent reconciles for the same job can both miss and both insert.
type ShortlistReconciler struct {
	apps   repository.ApplicationRepository
	logger *log.Logger
	now    func() time.Time
	newID  func() uuid.UUID
}

func NewShortlistReconciler(apps repository.ApplicationRepository, logger *log.Logger) *ShortlistReconciler {
	if logger == nil {
		logger = log.Default()
	}
	return &ShortlistReconciler{apps: apps, logger: logger, now: time.Now, newID: uuid.New}
}

func IsShortlistTarget(s application.Status) bool {
	return s == application.StatusShortlisted || s == application.StatusRejected
}

// Reconcile is best effort: a failed row is logged and counted in Failed and
// the remaining rows still run. Only the batched read aborts the call.
func (r *ShortlistReconciler) Reconcile(ctx context.Context, jobID uuid.UUID, target application.Status, profiles []profile.Profile) (ReconcileResult, error) {
	if !IsShortlistTarget(target) {
		return ReconcileResult{}, fmt.Errorf("%w: %q is not a shortlist status", ErrInvalidStatus, target)
	}

	studentIDs := make([]uuid.UUID, 0, len(profiles))
	seen := make(map[uuid.UUID]struct{}, len(profiles))
	for _, p := range profiles {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		studentIDs = append(studentIDs, p.ID)
	}

	res := ReconcileResult{Matched: len(studentIDs)}
	if len(studentIDs) == 0 {
		return res, nil
	}

	existing, err := r.apps.FindByJobAndStudents(ctx, jobID, studentIDs)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("%w: find applications: %w", ErrStore, err)
	}

	hasApplication := make(map[uuid.UUID]struct{}, len(existing))
	for _, a := range existing {
		hasApplication[a.StudentID] = struct{}{}
	}

	for _, a := range existing {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if _, err := r.apps.UpdateStatus(ctx, a.ID, target, r.now()); err != nil {
			res.Failed++
			r.logger.Printf("shortlist_reconcile op=update job_id=%s application_id=%s student_id=%s status=error err=%v", jobID, a.ID, a.StudentID, err)
			continue
		}
		res.Updated++
	}

	for _, sid := range studentIDs {
		if _, ok := hasApplication[sid]; ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		now := r.now()
		_, err := r.apps.Insert(ctx, application.Application{
			ID:        r.newID(),
			JobID:     jobID,
			StudentID: sid,
			Status:    target,
			AppliedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			res.Failed++
			r.logger.Printf("shortlist_reconcile op=create job_id=%s student_id=%s status=error err=%v", jobID, sid, err)
			continue
		}
		res.Created++
	}

	r.logger.Printf("shortlist_reconcile job_id=%s target=%s matched=%d updated=%d created=%d failed=%d",
		jobID, target, res.Matched, res.Updated, res.Created, res.Failed)
	return res, nil
}
