package application

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventStatusChanged       = "application.status_changed"
	EventSubmitted           = "application.submitted"
	EventShortlistReconciled = "shortlist.reconciled"
)

// Event is the payload fanned out to live dashboards and the event queue.
type Event struct {
	Type          string     `json:"type"`
	ApplicationID *uuid.UUID `json:"application_id,omitempty"`
	JobID         uuid.UUID  `json:"job_id"`
	StudentID     *uuid.UUID `json:"student_id,omitempty"`
	Status        Status     `json:"status"`
	Matched       int        `json:"matched,omitempty"`
	Updated       int        `json:"updated,omitempty"`
	Created       int        `json:"created,omitempty"`
	Timestamp     time.Time  `json:"timestamp"`
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}
