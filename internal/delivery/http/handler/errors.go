package handler

import (
	"errors"

	"placement-hub/internal/delivery/http/middleware"
	"placement-hub/internal/domain/application"
	"placement-hub/internal/domain/job"
	"placement-hub/internal/domain/profile"
	"placement-hub/internal/pkg/response"
	"placement-hub/internal/roster"
	"placement-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Stable reason codes returned in the error envelope.
const (
	ReasonProfileNotFound     = "profile_not_found"
	ReasonJobNotFound         = "job_not_found"
	ReasonApplicationNotFound = "application_not_found"
	ReasonInvalidStatus       = "invalid_status"
	ReasonInvalidTransition   = "invalid_transition"
	ReasonSchemaError         = "schema_error"
	ReasonParseError          = "parse_error"
	ReasonEmptyInput          = "empty_input"
	ReasonNoIdentifiers       = "no_identifiers"
	ReasonUnsupportedFormat   = "unsupported_format"
	ReasonFileTooLarge        = "file_too_large"
	ReasonNotEligible         = "not_eligible"
	ReasonJobInactive         = "job_inactive"
	ReasonAlreadyApplied      = "already_applied"
	ReasonInvalidInput        = "invalid_input"
	ReasonStoreError          = "store_error"
)

func badRequest(reason, message string, cause error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, reason, message, nil, cause)
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, profile.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, ReasonProfileNotFound, "Student profile not found", nil, err)
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, ReasonJobNotFound, "Job not found", nil, err)
	case errors.Is(err, application.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, ReasonApplicationNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return badRequest(ReasonInvalidStatus, err.Error(), err)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, ReasonInvalidTransition, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrSchema):
		return badRequest(ReasonSchemaError, "Roster must have an email or usn column", err)
	case errors.Is(err, roster.ErrParse):
		return badRequest(ReasonParseError, "Roster file could not be parsed", err)
	case errors.Is(err, roster.ErrEmptyInput):
		return badRequest(ReasonEmptyInput, "Roster file has no data rows", err)
	case errors.Is(err, usecase.ErrNoIdentifiers):
		return badRequest(ReasonNoIdentifiers, "Roster has no student identifiers", err)
	case errors.Is(err, roster.ErrUnsupportedFormat):
		return badRequest(ReasonUnsupportedFormat, "Only .csv and .xlsx rosters are supported", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return badRequest(ReasonInvalidInput, err.Error(), err)
	case errors.Is(err, usecase.ErrNotEligible):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, ReasonNotEligible, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrJobInactive):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, ReasonJobInactive, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, ReasonAlreadyApplied, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrStore):
		return middleware.NewAppError(fiber.StatusInternalServerError, ReasonStoreError, "", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.ReasonInternalError, "", nil, err)
	}
}
