package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

type Job struct {
	ID                uuid.UUID  `json:"id"`
	CompanyName       string     `json:"company_name"`
	Role              string     `json:"role"`
	Location          string     `json:"location"`
	Status            Status     `json:"status"`
	MinCGPA           float64    `json:"min_cgpa"`
	EligibleBranches  []string   `json:"eligible_branches"`
	MaxActiveBacklogs int        `json:"max_active_backlogs"`
	Deadline          *time.Time `json:"deadline"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
