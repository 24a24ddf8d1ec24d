package profile

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// Profile is a student record. It is created outside this service and only
// read here.
type Profile struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	USN                string    `json:"usn"`
	FullName           string    `json:"full_name"`
	Branch             string    `json:"branch"`
	CGPA               float64   `json:"cgpa"`
	ActiveBacklogCount int       `json:"active_backlog_count"`
}

// Field names a unique lookup column of a profile.
type Field string

const (
	FieldEmail Field = "email"
	FieldUSN   Field = "usn"
)
