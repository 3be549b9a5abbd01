package app

import (
	"context"
	"fmt"

	"github.com/example/scribe/internal/dump"
	"github.com/example/scribe/internal/ports/primary"
	"github.com/example/scribe/internal/ports/secondary"
)

// importEvents upserts every legacy event under a synthesized stable key.
// Rows without a legacy id have no derivable key and are skipped.
func (s *ImportServiceImpl) importEvents(ctx context.Context, tables dump.Set) primary.CategoryResult {
	s.banner("Importing Events")

	rows := tables.Rows("events")
	fmt.Fprintf(s.out, "  Found %d legacy events\n", len(rows))

	result := primary.CategoryResult{Name: "Events", Found: len(rows)}
	for _, row := range rows {
		out := s.eventRow(ctx, row)
		s.tally(&result, out)
	}

	fmt.Fprintf(s.out, "  Created/found: %d, Skipped: %d\n", result.Created, result.Skipped)
	return result
}

func (s *ImportServiceImpl) eventRow(ctx context.Context, row dump.Row) rowOutcome {
	legacyID := row.Get("id")
	if !dump.HasText(legacyID) {
		return rowSkipped("event row with no legacy id")
	}
	eventID := "legacy-" + legacyID.String

	record := &secondary.EventRecord{
		ID:          eventID,
		Title:       dump.TextOr(row.Get("name"), "Untitled Event"),
		StartsAt:    timeOr(dump.ToTime(row.Get("startDate")), nowUTC()),
		EndsAt:      dump.ToTime(row.Get("endDate")),
		Description: dump.TextOr(row.Get("description"), ""),
		// Blank location/image become explicit null, not empty string.
		Location: dump.BlankToNull(row.Get("location")),
		Image:    dump.BlankToNull(row.Get("image")),
	}

	if err := s.repos.Events.Upsert(ctx, record); err != nil {
		return rowSkipped("failed to import event %s %q: %v", legacyID.String, record.Title, err)
	}

	return rowCreated()
}
