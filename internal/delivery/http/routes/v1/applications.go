package v1

import (
	"placement-hub/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterApplications(r fiber.Router, applicationHandler *handler.ApplicationHandler, shortlistHandler *handler.ShortlistHandler) {
	if r == nil {
		return
	}

	if applicationHandler != nil {
		applicationHandler.RegisterRoutes(r)
	}
	if shortlistHandler != nil {
		shortlistHandler.RegisterRoutes(r)
	}
}
