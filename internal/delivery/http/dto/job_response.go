package dto

import (
	"time"

	"placement-hub/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID                uuid.UUID `json:"id"`
	CompanyName       string    `json:"company_name"`
	Role              string    `json:"role"`
	Location          string    `json:"location"`
	Status            string    `json:"status"`
	MinCGPA           float64   `json:"min_cgpa"`
	EligibleBranches  []string  `json:"eligible_branches"`
	MaxActiveBacklogs int       `json:"max_active_backlogs"`
	Deadline          string    `json:"deadline,omitempty"`
	CreatedAt         string    `json:"created_at"`
}

func NewJobResponse(j job.Job) JobResponse {
	branches := j.EligibleBranches
	if branches == nil {
		branches = []string{}
	}
	out := JobResponse{
		ID:                j.ID,
		CompanyName:       j.CompanyName,
		Role:              j.Role,
		Location:          j.Location,
		Status:            string(j.Status),
		MinCGPA:           j.MinCGPA,
		EligibleBranches:  branches,
		MaxActiveBacklogs: j.MaxActiveBacklogs,
		CreatedAt:         formatTime(j.CreatedAt),
	}
	if j.Deadline != nil {
		out.Deadline = formatTime(*j.Deadline)
	}
	return out
}

func NewJobResponses(items []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, j := range items {
		out = append(out, NewJobResponse(j))
	}
	return out
}

type JobListResponse struct {
	Count int           `json:"count"`
	Jobs  []JobResponse `json:"jobs"`
}

func NewJobListResponse(items []job.Job) JobListResponse {
	return JobListResponse{Count: len(items), Jobs: NewJobResponses(items)}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
