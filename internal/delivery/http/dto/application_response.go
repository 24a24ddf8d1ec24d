package dto

import (
	"placement-hub/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	StudentID   uuid.UUID `json:"student_id"`
	Status      string    `json:"status"`
	CoverLetter *string   `json:"cover_letter"`
	ResumeURL   *string   `json:"resume_url"`
	AppliedAt   string    `json:"applied_at"`
	UpdatedAt   string    `json:"updated_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		StudentID:   a.StudentID,
		Status:      string(a.Status),
		CoverLetter: a.CoverLetter,
		ResumeURL:   a.ResumeURL,
		AppliedAt:   formatTime(a.AppliedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
}

func NewApplicationResponses(items []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
