package application

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("application not found")

type Status string

const (
	StatusApplied     Status = "applied"
	StatusShortlisted Status = "shortlisted"
	StatusSelected    Status = "selected"
	StatusRejected    Status = "rejected"
)

// ParseStatus normalises raw input and reports whether it names a known status.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StatusApplied, StatusShortlisted, StatusSelected, StatusRejected:
		return s, true
	default:
		return s, false
	}
}

// IsTerminal reports whether no further transition leaves s.
func (s Status) IsTerminal() bool {
	return s == StatusSelected || s == StatusRejected
}

// CanTransition reports whether from -> to is an edge of the application
// lifecycle. Re-setting the current status is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusApplied:
		return to == StatusShortlisted || to == StatusRejected
	case StatusShortlisted:
		return to == StatusSelected || to == StatusRejected
	default:
		return false
	}
}

type Application struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	StudentID   uuid.UUID `json:"student_id"`
	Status      Status    `json:"status"`
	CoverLetter *string   `json:"cover_letter"`
	ResumeURL   *string   `json:"resume_url"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
