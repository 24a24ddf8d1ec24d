package handler

import (
	"fmt"
	"strings"

	"placement-hub/internal/delivery/http/dto"
	"placement-hub/internal/pkg/response"
	"placement-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	apps   usecase.ApplicationUsecase
	status usecase.ApplicationStatusUsecase
}

type submitApplicationRequest struct {
	JobID       string `json:"job_id" form:"job_id"`
	StudentID   string `json:"student_id" form:"student_id"`
	CoverLetter string `json:"cover_letter" form:"cover_letter"`
	ResumeURL   string `json:"resume_url" form:"resume_url"`
}

type updateStatusRequest struct {
	Status string `json:"status" form:"status"`
}

func NewApplicationHandler(apps usecase.ApplicationUsecase, status usecase.ApplicationStatusUsecase) *ApplicationHandler {
	return &ApplicationHandler{apps: apps, status: status}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/applications")
	grp.Post("/", h.Submit)
	grp.Get("/:id", h.Get)
	grp.Put("/:id/status", h.UpdateStatus)

	r.Get("/students/:student_id/applications", h.ListByStudent)
	r.Get("/jobs/:job_id/applications", h.ListByJob)
}

func (h *ApplicationHandler) Submit(c fiber.Ctx) error {
	var req submitApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(ReasonInvalidInput, "Invalid request body", err)
	}

	jobID, err := uuid.Parse(strings.TrimSpace(req.JobID))
	if err != nil {
		return badRequest(ReasonInvalidInput, "job_id must be a valid UUID", err)
	}
	studentID, err := uuid.Parse(strings.TrimSpace(req.StudentID))
	if err != nil {
		return badRequest(ReasonInvalidInput, "student_id must be a valid UUID", err)
	}

	created, err := h.apps.Submit(c.Context(), usecase.SubmitInput{
		JobID:       jobID,
		StudentID:   studentID,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Application submitted", dto.NewApplicationResponse(created))
}

func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	a, err := h.apps.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(ReasonInvalidInput, "Invalid request body", err)
	}

	updated, err := h.status.Transition(c.Context(), id, req.Status)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, fmt.Sprintf("Application status updated to %s", updated.Status), dto.NewApplicationResponse(updated))
}

func (h *ApplicationHandler) ListByStudent(c fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}

	items, err := h.apps.ListByStudent(c.Context(), studentID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, fmt.Sprintf("Found %d applications", len(items)), dto.NewApplicationResponses(items))
}

func (h *ApplicationHandler) ListByJob(c fiber.Ctx) error {
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}

	items, err := h.apps.ListByJob(c.Context(), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, fmt.Sprintf("Found %d applications", len(items)), dto.NewApplicationResponses(items))
}
