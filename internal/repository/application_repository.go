package repository

import (
	"context"
	"time"

	"placement-hub/internal/database"
	"placement-hub/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	FindByJobAndStudents(ctx context.Context, jobID uuid.UUID, studentIDs []uuid.UUID) ([]application.Application, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]application.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error)
	Insert(ctx context.Context, a application.Application) (application.Application, error)
	// UpdateStatus sets status and updated_at on one row and returns the
	// updated record, or application.ErrNotFound when no row matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status, at time.Time) (application.Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, student_id, status, cover_letter, resume_url, applied_at, updated_at`

func (r *PostgresApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplicationOrNotFound(row)
}

func (r *PostgresApplicationRepository) FindByJobAndStudents(ctx context.Context, jobID uuid.UUID, studentIDs []uuid.UUID) ([]application.Application, error) {
	if len(studentIDs) == 0 {
		return []application.Application{}, nil
	}
	return r.list(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications
		 WHERE job_id = $1 AND student_id = ANY($2)
		 ORDER BY applied_at ASC`,
		jobID, studentIDs,
	)
}

func (r *PostgresApplicationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE student_id = $1 ORDER BY applied_at DESC`,
		studentID,
	)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY applied_at DESC`,
		jobID,
	)
}

func (r *PostgresApplicationRepository) Insert(ctx context.Context, a application.Application) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (id, job_id, student_id, status, cover_letter, resume_url, applied_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+applicationColumns,
		a.ID, a.JobID, a.StudentID, string(a.Status), a.CoverLetter, a.ResumeURL, a.AppliedAt, a.UpdatedAt,
	)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status, at time.Time) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE applications
		 SET status = $2, updated_at = $3
		 WHERE id = $1
		 RETURNING `+applicationColumns,
		id, string(status), at,
	)
	return scanApplicationOrNotFound(row)
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var status string
	if err := row.Scan(&a.ID, &a.JobID, &a.StudentID, &status, &a.CoverLetter, &a.ResumeURL, &a.AppliedAt, &a.UpdatedAt); err != nil {
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}

func scanApplicationOrNotFound(row database.Row) (application.Application, error) {
	a, err := scanApplication(row)
	if err != nil {
		if database.IsNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}
