package usecase

import (
	"context"
	"errors"
	"testing"

	"placement-hub/internal/domain/profile"
	"placement-hub/internal/roster"

	"github.com/google/uuid"
)

func TestExtractIdentifiers_MixedRowsSkipsEmpty(t *testing.T) {
	rows := []roster.Row{
		{"email": "a@x.com"},
		{"usn": "1RV20CS001"},
		{},
	}
	ids, err := ExtractIdentifiers(rows)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 identifiers, got %d (%v)", len(ids), ids)
	}
	if ids[0] != (Identifier{Field: profile.FieldEmail, Value: "a@x.com"}) {
		t.Fatalf("unexpected first identifier: %+v", ids[0])
	}
	if ids[1] != (Identifier{Field: profile.FieldUSN, Value: "1RV20CS001"}) {
		t.Fatalf("unexpected second identifier: %+v", ids[1])
	}
}

func TestExtractIdentifiers_EmailWinsOverUSN(t *testing.T) {
	rows := []roster.Row{{"Email": "  Student@X.com ", "USN": "1RV20CS002"}}
	ids, err := ExtractIdentifiers(rows)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ids) != 1 || ids[0].Field != profile.FieldEmail || ids[0].Value != "student@x.com" {
		t.Fatalf("expected lower-cased email identifier, got %v", ids)
	}
}

func TestExtractIdentifiers_FallsBackToUSNWhenEmailBlank(t *testing.T) {
	rows := []roster.Row{{"email": "   ", "roll_no": " 1rv20cs003 "}}
	ids, err := ExtractIdentifiers(rows)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ids) != 1 || ids[0].Field != profile.FieldUSN || ids[0].Value != "1rv20cs003" {
		t.Fatalf("expected usn identifier with case kept, got %v", ids)
	}
}

func TestExtractIdentifiers_HeaderAliases(t *testing.T) {
	cases := []struct {
		header string
		field  profile.Field
	}{
		{"E-Mail", profile.FieldEmail},
		{"mail", profile.FieldEmail},
		{" Roll Number ", profile.FieldUSN},
		{"ROLL NO", profile.FieldUSN},
		{"student_id", profile.FieldUSN},
	}
	for _, tc := range cases {
		ids, err := ExtractIdentifiers([]roster.Row{{tc.header: "v1"}})
		if err != nil {
			t.Fatalf("header %q: unexpected err: %v", tc.header, err)
		}
		if len(ids) != 1 || ids[0].Field != tc.field {
			t.Fatalf("header %q: expected field %s, got %v", tc.header, tc.field, ids)
		}
	}
}

func TestExtractIdentifiers_NoRecognisedColumn(t *testing.T) {
	_, err := ExtractIdentifiers([]roster.Row{{"name": "Asha", "branch": "CSE"}})
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
}

func TestExtractIdentifiers_AllValuesBlank(t *testing.T) {
	_, err := ExtractIdentifiers([]roster.Row{{"email": ""}, {"email": "  "}})
	if !errors.Is(err, ErrNoIdentifiers) {
		t.Fatalf("expected ErrNoIdentifiers, got %v", err)
	}
}

func TestIdentifierResolver_DedupesProfilesAndReportsUnmatched(t *testing.T) {
	asha := profile.Profile{ID: uuid.New(), Email: "asha@x.com", USN: "1RV20CS010"}
	repo := &fakeProfileRepo{items: []profile.Profile{asha}}
	r := NewIdentifierResolver(repo, quietLogger())

	rows := []roster.Row{
		{"email": "ASHA@x.com"},
		{"usn": "1RV20CS010"},
		{"email": "asha@x.com"},
		{"email": "ghost@x.com"},
		{"email": "ghost@x.com"},
	}
	res, err := r.Resolve(context.Background(), rows)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Identifiers != 5 {
		t.Fatalf("expected 5 identifiers, got %d", res.Identifiers)
	}
	if len(res.Profiles) != 1 || res.Profiles[0].ID != asha.ID {
		t.Fatalf("expected one distinct profile, got %v", res.Profiles)
	}
	if len(res.Unmatched) != 1 || res.Unmatched[0].Value != "ghost@x.com" {
		t.Fatalf("expected ghost@x.com unmatched once, got %v", res.Unmatched)
	}
	if repo.lookups != 3 {
		t.Fatalf("expected 3 distinct lookups, got %d", repo.lookups)
	}
}

func TestIdentifierResolver_NothingMatches(t *testing.T) {
	r := NewIdentifierResolver(&fakeProfileRepo{}, quietLogger())
	res, err := r.Resolve(context.Background(), []roster.Row{{"email": "a@x.com"}, {"usn": "1RV20CS001"}, {}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Profiles) != 0 || len(res.Unmatched) != 2 {
		t.Fatalf("expected 0 profiles and 2 unmatched, got %d and %d", len(res.Profiles), len(res.Unmatched))
	}
}

func TestIdentifierResolver_StoreErrorAborts(t *testing.T) {
	repo := &fakeProfileRepo{failFor: map[string]error{"b@x.com": errBoom}}
	r := NewIdentifierResolver(repo, quietLogger())
	_, err := r.Resolve(context.Background(), []roster.Row{{"email": "a@x.com"}, {"email": "b@x.com"}})
	if !errors.Is(err, ErrStore) || !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
