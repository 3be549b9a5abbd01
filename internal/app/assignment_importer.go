package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/scribe/internal/dump"
	"github.com/example/scribe/internal/ports/primary"
	"github.com/example/scribe/internal/ports/secondary"
)

// positionInfo is the authoritative metadata for a canonical position,
// taken from the first raw row seen with that title.
type positionInfo struct {
	email     string
	isPrimary bool
}

// importAssignments is the two-pass officer importer. Pass 1 discovers
// canonical positions across the entire input and upserts them; only then
// does pass 2 create assignments, so "first title wins" metadata
// resolution always sees the whole dump before any assignment reads it.
func (s *ImportServiceImpl) importAssignments(ctx context.Context, tables dump.Set) primary.CategoryResult {
	s.banner("Importing Position Assignments")

	rows := tables.Rows("officers")
	fmt.Fprintf(s.out, "  Found %d legacy officer records\n", len(rows))

	// Pass 1: collect canonical position metadata from the dump.
	order, info := s.discoverPositions(rows)

	positionsCreated, positionsExisting := 0, 0
	for _, title := range order {
		created, err := s.upsertPosition(ctx, title, info[title])
		if err != nil {
			s.warnf("failed to create position %q: %v", title, err)
			continue
		}
		if created {
			positionsCreated++
		} else {
			positionsExisting++
		}
	}
	fmt.Fprintf(s.out, "  Positions — Created: %d, Already existing: %d\n", positionsCreated, positionsExisting)

	// Pass 2: create assignments using the normalized titles.
	result := primary.CategoryResult{Name: "Assignments", Found: len(rows)}
	for _, row := range rows {
		out := s.assignmentRow(ctx, row)
		s.tally(&result, out)
	}

	fmt.Fprintf(s.out, "  Assignments — Created: %d, Skipped: %d\n", result.Created, result.Skipped)
	return result
}

// discoverPositions resolves every raw title and records the first contact
// address and primary flag seen per canonical title, preserving discovery
// order. Unmappable titles are warned about here, once per row.
func (s *ImportServiceImpl) discoverPositions(rows []dump.Row) ([]string, map[string]positionInfo) {
	var order []string
	info := map[string]positionInfo{}

	unmapped := 0
	for _, row := range rows {
		rawTitle := row.Get("title")
		canonical, ok := s.normalizer.Resolve(rawTitle.String)
		if !rawTitle.Valid || !ok {
			s.warnf("unmapped title %q — skipping officer %s",
				rawTitle.String, dump.TextOr(row.Get("userDce"), "?"))
			unmapped++
			continue
		}

		if _, seen := info[canonical]; seen {
			continue
		}
		email := dump.TextOr(row.Get("email"), slugify(canonical)+"@"+s.opts.PositionDomain)
		isPrimary := dump.ToBool(row.Get("primaryOfficer"))
		info[canonical] = positionInfo{
			email:     email,
			isPrimary: isPrimary.Valid && isPrimary.Bool,
		}
		order = append(order, canonical)
	}
	if unmapped > 0 {
		s.warnf("%d officers with unmapped titles skipped", unmapped)
	}

	return order, info
}

// upsertPosition creates the canonical position if absent. An existing
// position keeps its title, address, and primary flag; only the retired
// flag is corrected. A new position whose address collides with a
// different existing position gets a disambiguated legacy address.
func (s *ImportServiceImpl) upsertPosition(ctx context.Context, title string, info positionInfo) (bool, error) {
	existing, err := s.repos.Positions.FindByTitle(ctx, title)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if s.normalizer.IsRetired(title) && !existing.IsRetired {
			if err := s.repos.Positions.SetRetired(ctx, existing.ID, true); err != nil {
				return false, err
			}
		}
		return false, nil
	}

	email := info.email
	conflict, err := s.repos.Positions.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if conflict != nil {
		email = "legacy-" + slugify(title) + "@" + s.opts.PositionDomain
	}

	id, err := s.repos.Positions.GetNextID(ctx)
	if err != nil {
		return false, err
	}

	err = s.repos.Positions.Create(ctx, &secondary.PositionRecord{
		ID:        id,
		Title:     title,
		Email:     email,
		IsPrimary: info.isPrimary,
		IsRetired: s.normalizer.IsRetired(title),
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *ImportServiceImpl) assignmentRow(ctx context.Context, row dump.Row) rowOutcome {
	rawTitle := row.Get("title")
	canonical, ok := s.normalizer.Resolve(rawTitle.String)
	if !rawTitle.Valid || !ok {
		// Already warned during position discovery.
		return rowSkippedQuiet()
	}

	dce := row.Get("userDce")
	if !dump.HasText(dce) {
		return rowSkipped("officer row with no DCE identifier (%s)", canonical)
	}

	account, err := s.repos.Accounts.FindByEmail(ctx, s.accountEmail(dce.String))
	if err != nil {
		return rowSkipped("failed to resolve account for officer %s: %v", dce.String, err)
	}
	if account == nil {
		return rowSkipped("no account for officer %s (%s → %s), skipping", dce.String, rawTitle.String, canonical)
	}

	position, err := s.repos.Positions.FindByTitle(ctx, canonical)
	if err != nil {
		return rowSkipped("failed to resolve position %q: %v", canonical, err)
	}
	if position == nil {
		return rowSkipped("no position for canonical title %q, skipping", canonical)
	}

	start := timeOr(dump.ToTime(row.Get("startDate")), nowUTC())
	end := dump.ToTime(row.Get("endDate"))
	if !end.Valid {
		end = sql.NullTime{Time: estimateEndDate(start), Valid: true}
	}

	exists, err := s.repos.Assignments.Exists(ctx, account.ID, position.ID, start)
	if err != nil {
		return rowSkipped("failed to import officer %s as %s: %v", dce.String, canonical, err)
	}
	if exists {
		return rowSkippedQuiet()
	}

	id, err := s.repos.Assignments.GetNextID(ctx)
	if err != nil {
		return rowSkipped("failed to import officer %s as %s: %v", dce.String, canonical, err)
	}

	err = s.repos.Assignments.Create(ctx, &secondary.AssignmentRecord{
		ID:         id,
		AccountID:  account.ID,
		PositionID: position.ID,
		IsCurrent:  false,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		return rowSkipped("failed to import officer %s as %s: %v", dce.String, canonical, err)
	}

	return rowCreated()
}
