package seeder

import (
	"context"

	"placement-hub/internal/database"

	"github.com/google/uuid"
)

type ProfilesSeeder struct{}

func (ProfilesSeeder) Name() string { return "profiles" }

func (ProfilesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "profiles", "id", "email", "usn", "full_name", "branch", "cgpa", "active_backlog_count"); err != nil {
		return err
	}

	items := []struct {
		ID       string
		Email    string
		USN      string
		FullName string
		Branch   string
		CGPA     float64
		Backlogs int
	}{
		{"6f1c2a4e-0000-4000-8000-000000000001", "asha.rao@campus.edu", "1RV20CS001", "Asha Rao", "CSE", 8.9, 0},
		{"6f1c2a4e-0000-4000-8000-000000000002", "ravi.kumar@campus.edu", "1RV20IS014", "Ravi Kumar", "ISE", 7.6, 0},
		{"6f1c2a4e-0000-4000-8000-000000000003", "meera.n@campus.edu", "1RV20EC021", "Meera N", "ECE", 8.1, 1},
		{"6f1c2a4e-0000-4000-8000-000000000004", "arjun.s@campus.edu", "1RV20ME007", "Arjun S", "ME", 6.8, 2},
	}

	for _, it := range items {
		if _, err := db.Exec(
			ctx,
			`INSERT INTO profiles (id, email, usn, full_name, branch, cgpa, active_backlog_count)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (id) DO NOTHING`,
			uuid.MustParse(it.ID), it.Email, it.USN, it.FullName, it.Branch, it.CGPA, it.Backlogs,
		); err != nil {
			return err
		}
	}
	return nil
}
