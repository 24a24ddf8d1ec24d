package dto

import (
	"placement-hub/internal/usecase"

	"github.com/google/uuid"
)

type JobVerdictResponse struct {
	Job        JobResponse `json:"job"`
	Eligible   bool        `json:"eligible"`
	FailedGate string      `json:"failed_gate,omitempty"`
	Detail     string      `json:"detail,omitempty"`
}

type EligibilityReportResponse struct {
	StudentID     uuid.UUID            `json:"student_id"`
	TotalJobs     int                  `json:"total_jobs"`
	EligibleCount int                  `json:"eligible_count"`
	Jobs          []JobVerdictResponse `json:"jobs"`
}

func NewEligibilityReportResponse(r usecase.EligibilityReport) EligibilityReportResponse {
	out := EligibilityReportResponse{
		StudentID:     r.Profile.ID,
		TotalJobs:     r.TotalJobs,
		EligibleCount: r.EligibleCount,
		Jobs:          make([]JobVerdictResponse, 0, len(r.Jobs)),
	}
	for _, v := range r.Jobs {
		out.Jobs = append(out.Jobs, JobVerdictResponse{
			Job:        NewJobResponse(v.Job),
			Eligible:   v.Eligible,
			FailedGate: string(v.Gate),
			Detail:     v.Detail,
		})
	}
	return out
}
