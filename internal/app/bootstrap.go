package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"placement-hub/internal/config"
	"placement-hub/internal/database/migration"
	"placement-hub/internal/delivery/http/handler"
	"placement-hub/internal/delivery/http/middleware"
	"placement-hub/internal/delivery/http/routes"
	v1 "placement-hub/internal/delivery/http/routes/v1"
	"placement-hub/internal/ws"
	"placement-hub/migrations"

	"github.com/gofiber/fiber/v3"
)

// multipart framing on top of the roster file itself
const uploadOverheadBytes = 1 << 20

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, registry *routes.Registry, logger *log.Logger) *App {
	fc := fiber.Config{AppName: cfg.App.AppName}
	if cfg.Shortlist.MaxUploadBytes > 0 {
		fc.BodyLimit = int(cfg.Shortlist.MaxUploadBytes) + uploadOverheadBytes
	}
	f := fiber.New(fc)

	registerGlobalMiddleware(f, logger)
	if registry != nil {
		registry.Register(f)
	}

	return &App{Fiber: f}
}

// Bootstrap connects every dependency, applies migrations when enabled and
// builds the HTTP app. The returned cleanup stops the hub and closes
// connections.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.App.AutoMigrate {
		runner := migration.Runner{FS: migrations.FS, Logger: logger}
		if err := runner.Run(context.Background(), container.DB.SQLDB()); err != nil {
			_ = container.Close()
			return nil, nil, fmt.Errorf("auto migrate: %w", err)
		}
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go container.Hub.Run(hubCtx)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(container.DB, container.Cache),
		ws.NewHandler(container.Hub, cfg.Realtime, logger),
		v1.Handlers{
			Eligibility: handler.NewEligibilityHandler(container.Eligibility),
			Shortlist:   handler.NewShortlistHandler(container.Shortlist, cfg.Shortlist.MaxUploadBytes, logger),
			Application: handler.NewApplicationHandler(container.Applications, container.ApplicationStatus),
			Job:         handler.NewJobHandler(container.Jobs),
		},
	)

	app := New(cfg, registry, logger)
	cleanup := func() error {
		stopHub()
		return container.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware(logger)
	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(errMw.Middleware())
	app.Use(accessMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
