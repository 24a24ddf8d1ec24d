package repository

import (
	"context"
	"fmt"
	"strings"

	"placement-hub/internal/database"
	"placement-hub/internal/domain/profile"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (profile.Profile, error)
	// FindByField looks a profile up by a unique column. Email matching is
	// case-insensitive; usn matching is exact.
	FindByField(ctx context.Context, field profile.Field, value string) (profile.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `id, email, COALESCE(usn, ''), COALESCE(full_name, ''), COALESCE(branch, ''),
	COALESCE(cgpa, 0)::float8, COALESCE(active_backlog_count, 0)`

func (r *PostgresProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) FindByField(ctx context.Context, field profile.Field, value string) (profile.Profile, error) {
	var query string
	switch field {
	case profile.FieldEmail:
		query = `SELECT ` + profileColumns + ` FROM profiles WHERE lower(email) = $1 LIMIT 1`
		value = strings.ToLower(value)
	case profile.FieldUSN:
		query = `SELECT ` + profileColumns + ` FROM profiles WHERE usn = $1 LIMIT 1`
	default:
		return profile.Profile{}, fmt.Errorf("unsupported profile lookup field %q", field)
	}

	return scanProfile(r.db.QueryRow(ctx, query, value))
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var p profile.Profile
	if err := row.Scan(&p.ID, &p.Email, &p.USN, &p.FullName, &p.Branch, &p.CGPA, &p.ActiveBacklogCount); err != nil {
		if database.IsNoRows(err) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}
