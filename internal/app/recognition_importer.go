package app

import (
	"context"
	"fmt"

	"github.com/example/scribe/internal/dump"
	"github.com/example/scribe/internal/ports/primary"
	"github.com/example/scribe/internal/ports/secondary"
)

// importRecognitions creates approved legacy recognitions, deduplicated by
// (account, reason, date). Unapproved rows are excluded up front.
func (s *ImportServiceImpl) importRecognitions(ctx context.Context, tables dump.Set) primary.CategoryResult {
	s.banner("Importing Recognitions")

	var rows []dump.Row
	for _, row := range tables.Rows("memberships") {
		approved := dump.ToBool(row.Get("approved"))
		if approved.Valid && approved.Bool {
			rows = append(rows, row)
		}
	}
	fmt.Fprintf(s.out, "  Found %d approved legacy recognitions\n", len(rows))

	result := primary.CategoryResult{Name: "Recognitions", Found: len(rows)}
	for _, row := range rows {
		out := s.recognitionRow(ctx, row)
		s.tally(&result, out)
	}

	fmt.Fprintf(s.out, "  Created: %d, Skipped: %d\n", result.Created, result.Skipped)
	return result
}

func (s *ImportServiceImpl) recognitionRow(ctx context.Context, row dump.Row) rowOutcome {
	dce := row.Get("userDce")
	if !dump.HasText(dce) {
		return rowSkipped("recognition row with no DCE identifier")
	}

	account, err := s.repos.Accounts.FindByEmail(ctx, s.accountEmail(dce.String))
	if err != nil {
		return rowSkipped("failed to resolve account for recognition of %s: %v", dce.String, err)
	}
	if account == nil {
		return rowSkipped("no account for recognition of %s, skipping", dce.String)
	}

	// The reason used for duplicate detection is the reason that gets
	// stored, so a null reason stays idempotent across runs.
	reason := dump.TextOr(row.Get("reason"), "Legacy recognition")
	givenAt := timeOr(dump.ToTime(row.Get("startDate")), nowUTC())

	exists, err := s.repos.Recognitions.Exists(ctx, account.ID, reason, givenAt)
	if err != nil {
		return rowSkipped("failed to import recognition for %s: %v", dce.String, err)
	}
	if exists {
		return rowSkippedQuiet()
	}

	id, err := s.repos.Recognitions.GetNextID(ctx)
	if err != nil {
		return rowSkipped("failed to import recognition for %s: %v", dce.String, err)
	}

	err = s.repos.Recognitions.Create(ctx, &secondary.RecognitionRecord{
		ID:        id,
		AccountID: account.ID,
		Reason:    reason,
		GivenAt:   givenAt,
	})
	if err != nil {
		return rowSkipped("failed to import recognition for %s: %v", dce.String, err)
	}

	return rowCreated()
}
