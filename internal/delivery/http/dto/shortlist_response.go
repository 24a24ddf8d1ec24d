package dto

import "placement-hub/internal/usecase"

type UnmatchedIdentifier struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type ShortlistUploadResponse struct {
	TotalProcessed      int                   `json:"total_processed"`
	MatchedStudents     int                   `json:"matched_students"`
	UpdatedApplications int                   `json:"updated_applications"`
	CreatedApplications int                   `json:"created_applications"`
	FailedRows          int                   `json:"failed_rows"`
	UnmatchedCount      int                   `json:"unmatched_count"`
	Unmatched           []UnmatchedIdentifier `json:"unmatched,omitempty"`
}

func NewShortlistUploadResponse(r usecase.UploadResult) ShortlistUploadResponse {
	out := ShortlistUploadResponse{
		TotalProcessed:      r.TotalProcessed,
		MatchedStudents:     r.MatchedStudents,
		UpdatedApplications: r.UpdatedApplications,
		CreatedApplications: r.CreatedApplications,
		FailedRows:          r.FailedRows,
		UnmatchedCount:      r.UnmatchedCount,
	}
	if r.Unmatched != nil {
		out.Unmatched = make([]UnmatchedIdentifier, 0, len(r.Unmatched))
		for _, id := range r.Unmatched {
			out.Unmatched = append(out.Unmatched, UnmatchedIdentifier{Field: string(id.Field), Value: id.Value})
		}
	}
	return out
}
