package app

import (
	"context"
	"errors"
	"log"
	"time"

	"placement-hub/internal/config"
	"placement-hub/internal/database"
	dbpostgres "placement-hub/internal/database/postgres"
	"placement-hub/internal/domain/application"
	"placement-hub/internal/infrastructure/cache"
	"placement-hub/internal/infrastructure/messaging"
	"placement-hub/internal/repository"
	"placement-hub/internal/usecase"
	"placement-hub/internal/ws"
)

// Container owns the long-lived dependencies of the server process.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Queue  *messaging.RabbitMQ

	Eligibility       *usecase.Eligibility
	Shortlist         *usecase.Shortlist
	Applications      *usecase.Applications
	ApplicationStatus *usecase.ApplicationStatus
	Jobs              *usecase.Jobs
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Logger: logger, DB: db}
	c.Cache = cache.NewRedis(cfg.Redis, logger)
	c.Hub = ws.NewHub(logger)

	if cfg.Messaging.RabbitMQURL != "" {
		q, err := messaging.NewRabbitMQ(cfg.Messaging, logger)
		if err != nil {
			logger.Printf("[Messaging] disabled: %v", err)
		} else {
			c.Queue = q
		}
	}

	c.wire()
	return c, nil
}

func (c *Container) wire() {
	publishers := usecase.MultiPublisher{ws.NewNotifier(c.Hub)}
	if c.Queue != nil {
		publishers = append(publishers, c.Queue)
	}
	var publisher application.Publisher = publishers

	profiles := repository.NewPostgresProfileRepository(c.DB)
	jobs := repository.NewPostgresJobRepository(c.DB)
	apps := repository.NewPostgresApplicationRepository(c.DB)

	active := usecase.NewActiveJobSource(jobs, c.Cache, c.Logger)

	c.Eligibility = usecase.NewEligibilityUsecase(profiles, active, c.Logger)
	c.Shortlist = usecase.NewShortlistUsecase(
		jobs,
		usecase.NewIdentifierResolver(profiles, c.Logger),
		usecase.NewShortlistReconciler(apps, c.Logger),
		publisher,
		c.Logger,
	)
	c.Applications = usecase.NewApplicationUsecase(apps, jobs, profiles, publisher, c.Logger)
	c.ApplicationStatus = usecase.NewApplicationStatusUsecase(apps, publisher, c.Config.Application.StrictTransitions, c.Logger)
	c.Jobs = usecase.NewJobUsecase(jobs, active, c.Logger)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Queue != nil {
		errs = append(errs, c.Queue.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
