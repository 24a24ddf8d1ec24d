package handler

import (
	"fmt"
	"strings"
	"time"

	"placement-hub/internal/delivery/http/dto"
	"placement-hub/internal/pkg/response"
	"placement-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	CompanyName       string   `json:"company_name"`
	Role              string   `json:"role"`
	Location          string   `json:"location"`
	Status            string   `json:"status"`
	MinCGPA           float64  `json:"min_cgpa"`
	EligibleBranches  []string `json:"eligible_branches"`
	MaxActiveBacklogs int      `json:"max_active_backlogs"`
	Deadline          string   `json:"deadline"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/admin/all", h.ListAll)
	grp.Get("/:id", h.Get)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListActive(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, fmt.Sprintf("Found %d active jobs", len(items)), dto.NewJobResponses(items))
}

// ListAll serves the staff view: every posting, inactive ones included.
func (h *JobHandler) ListAll(c fiber.Ctx) error {
	items, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, fmt.Sprintf("Found %d jobs", len(items)), dto.NewJobListResponse(items))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	j, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(ReasonInvalidInput, "Invalid request body", err)
	}

	var deadline *time.Time
	if raw := strings.TrimSpace(req.Deadline); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ReasonInvalidInput, "deadline must be RFC3339", err)
		}
		deadline = &t
	}

	created, err := h.uc.Create(c.Context(), usecase.CreateJobInput{
		CompanyName:       req.CompanyName,
		Role:              req.Role,
		Location:          req.Location,
		Status:            req.Status,
		MinCGPA:           req.MinCGPA,
		EligibleBranches:  req.EligibleBranches,
		MaxActiveBacklogs: req.MaxActiveBacklogs,
		Deadline:          deadline,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job created", dto.NewJobResponse(created))
}
