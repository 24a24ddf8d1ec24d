package handler

import (
	"context"
	"time"

	"placement-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler reports the database as required and the cache as
// optional. Either pinger may be nil.
func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{
		"database": probe(ctx, h.db),
		"cache":    probe(ctx, h.cache),
	}

	if status["database"] != "up" {
		return response.Error(c, fiber.StatusServiceUnavailable, "database_unavailable", response.MessageServiceUnavailable, status)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}

func probe(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
