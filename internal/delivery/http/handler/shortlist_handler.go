package handler

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"placement-hub/internal/delivery/http/dto"
	"placement-hub/internal/delivery/http/middleware"
	"placement-hub/internal/pkg/response"
	"placement-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ShortlistHandler struct {
	uc       usecase.ShortlistUsecase
	maxBytes int64
	logger   *log.Logger
}

func NewShortlistHandler(uc usecase.ShortlistUsecase, maxBytes int64, logger *log.Logger) *ShortlistHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &ShortlistHandler{uc: uc, maxBytes: maxBytes, logger: logger}
}

func (h *ShortlistHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/shortlist/upload", h.Upload)
}

// Upload takes a multipart form with job_id, file, target_status (or status)
// and include_unmatched.
func (h *ShortlistHandler) Upload(c fiber.Ctx) error {
	jobID, err := uuid.Parse(strings.TrimSpace(c.FormValue("job_id")))
	if err != nil {
		return badRequest(ReasonInvalidInput, "job_id must be a valid UUID", err)
	}

	target := strings.TrimSpace(c.FormValue("target_status"))
	if target == "" {
		target = strings.TrimSpace(c.FormValue("status"))
	}

	includeUnmatched := false
	if raw := strings.TrimSpace(c.FormValue("include_unmatched")); raw != "" {
		includeUnmatched, err = strconv.ParseBool(raw)
		if err != nil {
			return badRequest(ReasonInvalidInput, "include_unmatched must be a boolean", err)
		}
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(ReasonInvalidInput, "file is required", err)
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, ReasonFileTooLarge,
			fmt.Sprintf("file exceeds %d bytes", h.maxBytes), nil, nil)
	}

	f, err := fh.Open()
	if err != nil {
		return badRequest(ReasonInvalidInput, "file could not be read", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return badRequest(ReasonInvalidInput, "file could not be read", err)
	}

	res, err := h.uc.Upload(c.Context(), usecase.UploadInput{
		JobID:            jobID,
		TargetStatus:     target,
		Filename:         fh.Filename,
		Data:             data,
		IncludeUnmatched: includeUnmatched,
	})
	if err != nil {
		h.logger.Printf("shortlist_upload job_id=%s file=%q status=error err=%v", jobID, fh.Filename, err)
		return mapUsecaseError(err)
	}

	msg := fmt.Sprintf("Shortlist processed: %d matched, %d updated, %d created", res.MatchedStudents, res.UpdatedApplications, res.CreatedApplications)
	return response.Success(c, fiber.StatusOK, msg, dto.NewShortlistUploadResponse(res))
}
