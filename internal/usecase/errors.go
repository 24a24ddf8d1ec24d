package usecase

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrSchema            = errors.New("roster has no email or usn column")
	ErrNoIdentifiers     = errors.New("roster contains no student identifiers")
	ErrNotEligible       = errors.New("student is not eligible for this job")
	ErrJobInactive       = errors.New("job is not accepting applications")
	ErrAlreadyApplied    = errors.New("student already applied to this job")
	// ErrStore wraps any failure of an underlying store call. Store errors
	// are surfaced as-is and never retried.
	ErrStore = errors.New("store error")
)
