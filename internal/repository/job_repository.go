package repository

import (
	"context"

	"placement-hub/internal/database"
	"placement-hub/internal/domain/job"

	"github.com/google/uuid"
)

type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	// FindActive returns active jobs in creation order.
	FindActive(ctx context.Context) ([]job.Job, error)
	// FindAll returns every job regardless of status, newest first.
	FindAll(ctx context.Context) ([]job.Job, error)
	Create(ctx context.Context, j job.Job) (job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, company_name, role, COALESCE(location, ''), status, COALESCE(min_cgpa, 0)::float8,
	COALESCE(eligible_branches, '{}'), COALESCE(max_active_backlogs, 0), deadline, created_at, updated_at`

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if database.IsNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) FindActive(ctx context.Context) ([]job.Job, error) {
	return r.list(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE status = $1
		 ORDER BY created_at ASC, id ASC`,
		string(job.StatusActive),
	)
}

func (r *PostgresJobRepository) FindAll(ctx context.Context) ([]job.Job, error) {
	return r.list(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 ORDER BY created_at DESC, id DESC`,
	)
}

func (r *PostgresJobRepository) list(ctx context.Context, query string, args ...any) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	branches := j.EligibleBranches
	if branches == nil {
		branches = []string{}
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, company_name, role, location, status, min_cgpa, eligible_branches, max_active_backlogs, deadline, created_at, updated_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $10)
		 RETURNING `+jobColumns,
		j.ID, j.CompanyName, j.Role, j.Location, string(j.Status), j.MinCGPA, branches, j.MaxActiveBacklogs, j.Deadline, j.CreatedAt,
	)
	return scanJob(row)
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var status string
	if err := row.Scan(
		&j.ID, &j.CompanyName, &j.Role, &j.Location, &status, &j.MinCGPA,
		&j.EligibleBranches, &j.MaxActiveBacklogs, &j.Deadline, &j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		return job.Job{}, err
	}
	j.Status = job.Status(status)
	return j, nil
}
