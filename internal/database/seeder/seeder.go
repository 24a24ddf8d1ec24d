// Package seeder loads demo profiles and jobs into an empty database. Every
// seeder is idempotent and keyed on fixed ids.
package seeder

import (
	"context"

	"placement-hub/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
