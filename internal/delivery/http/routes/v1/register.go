package v1

import (
	"placement-hub/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Eligibility *handler.EligibilityHandler
	Shortlist   *handler.ShortlistHandler
	Application *handler.ApplicationHandler
	Job         *handler.JobHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	RegisterJobs(r, h.Job, h.Eligibility)
	RegisterApplications(r, h.Application, h.Shortlist)
}
