package handler

import (
	"fmt"

	"placement-hub/internal/delivery/http/dto"
	"placement-hub/internal/pkg/response"
	"placement-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EligibilityHandler struct {
	uc usecase.EligibilityUsecase
}

func NewEligibilityHandler(uc usecase.EligibilityUsecase) *EligibilityHandler {
	return &EligibilityHandler{uc: uc}
}

func (h *EligibilityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/eligible-jobs")
	grp.Get("/:student_id", h.EligibleJobs)
	grp.Get("/:student_id/report", h.Report)
}

func (h *EligibilityHandler) EligibleJobs(c fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}

	jobs, err := h.uc.EligibleJobs(c.Context(), studentID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, fmt.Sprintf("Found %d eligible jobs", len(jobs)), dto.NewJobResponses(jobs))
}

func (h *EligibilityHandler) Report(c fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}

	report, err := h.uc.Report(c.Context(), studentID)
	if err != nil {
		return mapUsecaseError(err)
	}

	msg := fmt.Sprintf("Eligible for %d of %d active jobs", report.EligibleCount, report.TotalJobs)
	return response.Success(c, fiber.StatusOK, msg, dto.NewEligibilityReportResponse(report))
}
