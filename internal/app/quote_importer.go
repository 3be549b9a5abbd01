package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/scribe/internal/dump"
	"github.com/example/scribe/internal/ports/primary"
	"github.com/example/scribe/internal/ports/secondary"
)

// importQuotes creates approved legacy quotes, deduplicated by exact
// (text, date). Unapproved rows are excluded before any other processing.
func (s *ImportServiceImpl) importQuotes(ctx context.Context, tables dump.Set) primary.CategoryResult {
	s.banner("Importing Quotes")

	var rows []dump.Row
	for _, row := range tables.Rows("quotes") {
		approved := dump.ToBool(row.Get("approved"))
		if approved.Valid && approved.Bool {
			rows = append(rows, row)
		}
	}
	fmt.Fprintf(s.out, "  Found %d approved legacy quotes\n", len(rows))

	result := primary.CategoryResult{Name: "Quotes", Found: len(rows)}
	for _, row := range rows {
		out := s.quoteRow(ctx, row)
		s.tally(&result, out)
	}

	fmt.Fprintf(s.out, "  Created: %d, Skipped: %d\n", result.Created, result.Skipped)
	return result
}

func (s *ImportServiceImpl) quoteRow(ctx context.Context, row dump.Row) rowOutcome {
	legacyID := dump.TextOr(row.Get("id"), "?")

	text := truncateQuote(dump.TextOr(row.Get("body"), ""))
	author := row.Get("description")
	saidAt := timeOr(dump.ToTime(row.Get("createdAt")), nowUTC())

	exists, err := s.repos.Quotes.Exists(ctx, text, saidAt)
	if err != nil {
		return rowSkipped("failed to import quote %s: %v", legacyID, err)
	}
	if exists {
		return rowSkippedQuiet()
	}

	id, err := s.repos.Quotes.GetNextID(ctx)
	if err != nil {
		return rowSkipped("failed to import quote %s: %v", legacyID, err)
	}

	record := &secondary.QuoteRecord{
		ID:     id,
		Quote:  text,
		Author: "Anonymous",
		SaidAt: saidAt,
		// Legacy quotes have no owning account.
		AccountID: sql.NullString{},
	}
	if dump.HasText(author) {
		record.Author = author.String
	}

	if err := s.repos.Quotes.Create(ctx, record); err != nil {
		return rowSkipped("failed to import quote %s: %v", legacyID, err)
	}

	return rowCreated()
}
