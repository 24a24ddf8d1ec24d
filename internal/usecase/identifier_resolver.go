package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"placement-hub/internal/domain/profile"
	"placement-hub/internal/repository"
	"placement-hub/internal/roster"

	"github.com/google/uuid"
)

var (
	emailAliases = []string{"email", "e-mail", "mail"}
	usnAliases   = []string{"usn", "roll_no", "roll_number", "roll no", "student_id"}
)

// Identifier is one student reference extracted from a roster row.
type Identifier struct {
	Field profile.Field `json:"field"`
	Value string        `json:"value"`
}

type Resolution struct {
	Profiles []profile.Profile
	// Identifiers counts rows that yielded an identifier, duplicates included.
	Identifiers int
	Unmatched   []Identifier
}

type IdentifierResolver struct {
	profiles repository.ProfileRepository
	logger   *log.Logger
}

func NewIdentifierResolver(profiles repository.ProfileRepository, logger *log.Logger) *IdentifierResolver {
	if logger == nil {
		logger = log.Default()
	}
	return &IdentifierResolver{profiles: profiles, logger: logger}
}

// ExtractIdentifiers picks at most one identifier per row: a non-empty email
// (lower-cased) wins over the usn (case kept). Rows with neither are skipped.
func ExtractIdentifiers(rows []roster.Row) ([]Identifier, error) {
	emailCol, usnCol := detectColumns(rows)
	if emailCol == "" && usnCol == "" {
		return nil, ErrSchema
	}

	out := make([]Identifier, 0, len(rows))
	for _, row := range rows {
		if emailCol != "" {
			if v := strings.ToLower(strings.TrimSpace(row[emailCol])); v != "" {
				out = append(out, Identifier{Field: profile.FieldEmail, Value: v})
				continue
			}
		}
		if usnCol != "" {
			if v := strings.TrimSpace(row[usnCol]); v != "" {
				out = append(out, Identifier{Field: profile.FieldUSN, Value: v})
			}
		}
	}

	if len(out) == 0 {
		return nil, ErrNoIdentifiers
	}
	return out, nil
}

// detectColumns matches headers case-insensitively against the alias groups.
// Earlier aliases win; ties between spellings of one alias go to the
// lexically first header.
func detectColumns(rows []roster.Row) (emailCol, usnCol string) {
	byNorm := map[string]string{}
	for _, row := range rows {
		for k := range row {
			norm := strings.ToLower(strings.TrimSpace(k))
			if prev, ok := byNorm[norm]; !ok || k < prev {
				byNorm[norm] = k
			}
		}
	}

	pick := func(aliases []string) string {
		for _, a := range aliases {
			if k, ok := byNorm[a]; ok {
				return k
			}
		}
		return ""
	}
	return pick(emailAliases), pick(usnAliases)
}

// Resolve maps roster rows to distinct profiles. Identifiers with no matching
// profile are dropped and reported in Unmatched.
func (r *IdentifierResolver) Resolve(ctx context.Context, rows []roster.Row) (Resolution, error) {
	ids, err := ExtractIdentifiers(rows)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{Identifiers: len(ids), Profiles: make([]profile.Profile, 0, len(ids))}
	seenProfile := make(map[uuid.UUID]struct{}, len(ids))
	looked := make(map[Identifier]bool, len(ids))

	for _, id := range ids {
		if _, done := looked[id]; done {
			continue
		}

		p, err := r.profiles.FindByField(ctx, id.Field, id.Value)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				looked[id] = false
				res.Unmatched = append(res.Unmatched, id)
				continue
			}
			return Resolution{}, fmt.Errorf("%w: find profile by %s: %w", ErrStore, id.Field, err)
		}
		looked[id] = true

		if _, dup := seenProfile[p.ID]; dup {
			continue
		}
		seenProfile[p.ID] = struct{}{}
		res.Profiles = append(res.Profiles, p)
	}

	sort.SliceStable(res.Unmatched, func(i, j int) bool { return res.Unmatched[i].Field < res.Unmatched[j].Field })

	r.logger.Printf("roster_resolve identifiers=%d matched=%d unmatched=%d", res.Identifiers, len(res.Profiles), len(res.Unmatched))
	return res, nil
}
