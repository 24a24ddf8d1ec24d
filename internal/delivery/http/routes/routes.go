package routes

import (
	v1 "placement-hub/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

// RouteRegistrar is anything that mounts its endpoints on a router.
type RouteRegistrar interface {
	RegisterRoutes(r fiber.Router)
}

type Registry struct {
	health RouteRegistrar
	ws     RouteRegistrar
	v1     v1.Handlers
}

func NewRegistry(health, ws RouteRegistrar, handlers v1.Handlers) *Registry {
	return &Registry{health: health, ws: ws, v1: handlers}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
	if r.ws != nil {
		r.ws.RegisterRoutes(app)
	}
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1)
}
