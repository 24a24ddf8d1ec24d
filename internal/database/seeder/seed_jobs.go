package seeder

import (
	"context"
	"time"

	"placement-hub/internal/database"

	"github.com/google/uuid"
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "company_name", "role", "location", "status", "min_cgpa", "eligible_branches", "max_active_backlogs", "deadline"); err != nil {
		return err
	}

	deadline := time.Now().UTC().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	items := []struct {
		ID       string
		Company  string
		Role     string
		Location string
		Status   string
		MinCGPA  float64
		Branches []string
		Backlogs int
		Deadline *time.Time
	}{
		{"9b7e4d10-0000-4000-8000-000000000001", "Acme Systems", "Software Engineer", "Bengaluru", "active", 7.5, []string{"CSE", "ISE"}, 0, &deadline},
		{"9b7e4d10-0000-4000-8000-000000000002", "Nimbus Cloud", "Site Reliability Engineer", "Hyderabad", "active", 7.0, nil, 1, nil},
		{"9b7e4d10-0000-4000-8000-000000000003", "Voltline", "Embedded Engineer", "Pune", "active", 6.5, []string{"ECE", "EEE"}, 2, &deadline},
		{"9b7e4d10-0000-4000-8000-000000000004", "Old Mill Works", "Graduate Trainee", "Chennai", "inactive", 6.0, nil, 0, nil},
	}

	for _, it := range items {
		branches := it.Branches
		if branches == nil {
			branches = []string{}
		}
		if _, err := db.Exec(
			ctx,
			`INSERT INTO jobs (id, company_name, role, location, status, min_cgpa, eligible_branches, max_active_backlogs, deadline)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (id) DO NOTHING`,
			uuid.MustParse(it.ID), it.Company, it.Role, it.Location, it.Status, it.MinCGPA, branches, it.Backlogs, it.Deadline,
		); err != nil {
			return err
		}
	}
	return nil
}
