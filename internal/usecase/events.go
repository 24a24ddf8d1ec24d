package usecase

import (
	"context"
	"errors"
	"log"

	"placement-hub/internal/domain/application"
)

// MultiPublisher delivers each event to every publisher and joins failures.
type MultiPublisher []application.Publisher

func (m MultiPublisher) Publish(ctx context.Context, evt application.Event) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// publishEvent never fails the calling operation; delivery errors are logged.
func publishEvent(ctx context.Context, pub application.Publisher, logger *log.Logger, evt application.Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, evt); err != nil && logger != nil {
		logger.Printf("event_publish type=%s job_id=%s status=error err=%v", evt.Type, evt.JobID, err)
	}
}
