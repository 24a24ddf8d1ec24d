package seeder

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"placement-hub/internal/database"
)

type columnRows struct {
	cols []string
	i    int
}

func (r *columnRows) Close()     {}
func (r *columnRows) Next() bool { r.i++; return r.i <= len(r.cols) }
func (r *columnRows) Err() error { return nil }
func (r *columnRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.cols[r.i-1]
	return nil
}

type fakeDB struct {
	columns map[string][]string
	execs   []string
}

func (db *fakeDB) Ping(context.Context) error { return nil }
func (db *fakeDB) Close() error               { return nil }
func (db *fakeDB) SQLDB() *sql.DB             { return nil }

func (db *fakeDB) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	db.execs = append(db.execs, query)
	return 1, nil
}

func (db *fakeDB) Query(_ context.Context, _ string, args ...any) (database.Rows, error) {
	return &columnRows{cols: db.columns[args[0].(string)]}, nil
}

func (db *fakeDB) QueryRow(context.Context, string, ...any) database.Row { return nil }

func TestEnsureTableColumns_ReportsAllMissing(t *testing.T) {
	db := &fakeDB{columns: map[string][]string{"jobs": {"id", "role"}}}
	err := EnsureTableColumns(context.Background(), db, "jobs", "id", "role", "status", "deadline")
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "status, deadline") {
		t.Fatalf("expected both columns named, got %q", err.Error())
	}
}

func TestRunner_SeedsDefaults(t *testing.T) {
	db := &fakeDB{columns: map[string][]string{
		"profiles": {"id", "email", "usn", "full_name", "branch", "cgpa", "active_backlog_count"},
		"jobs":     {"id", "company_name", "role", "location", "status", "min_cgpa", "eligible_branches", "max_active_backlogs", "deadline"},
	}}

	if err := (Runner{Seeders: Defaults()}).Run(context.Background(), db); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(db.execs) != 8 {
		t.Fatalf("expected 8 inserts, got %d", len(db.execs))
	}
	for _, q := range db.execs {
		if !strings.Contains(q, "ON CONFLICT (id) DO NOTHING") {
			t.Fatalf("seed insert must be idempotent: %s", q)
		}
	}
}

func TestRunner_StopsOnSchemaMismatch(t *testing.T) {
	db := &fakeDB{columns: map[string][]string{}}
	err := (Runner{Seeders: Defaults()}).Run(context.Background(), db)
	if !errors.Is(err, ErrSchemaMismatch) || !strings.Contains(err.Error(), "seed profiles") {
		t.Fatalf("expected profiles schema mismatch, got %v", err)
	}
	if len(db.execs) != 0 {
		t.Fatalf("expected no inserts, got %d", len(db.execs))
	}
}
