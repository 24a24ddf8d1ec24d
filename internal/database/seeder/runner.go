package seeder

import (
	"context"
	"fmt"
	"log"

	"placement-hub/internal/database"
)

type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Printf("seeder name=%s status=ok", s.Name())
	}
	return nil
}
