package v1

import (
	"placement-hub/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterJobs(r fiber.Router, jobHandler *handler.JobHandler, eligibilityHandler *handler.EligibilityHandler) {
	if r == nil {
		return
	}

	if jobHandler != nil {
		jobHandler.RegisterRoutes(r)
	}
	if eligibilityHandler != nil {
		eligibilityHandler.RegisterRoutes(r)
	}
}
