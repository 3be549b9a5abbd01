package app

import (
	"context"
	"fmt"

	"github.com/example/scribe/internal/dump"
	"github.com/example/scribe/internal/ports/primary"
	"github.com/example/scribe/internal/ports/secondary"
)

// importShortLinks creates legacy short links that don't exist yet. Links
// are immutable once created by import: an existing token is skipped, not
// updated.
func (s *ImportServiceImpl) importShortLinks(ctx context.Context, tables dump.Set) primary.CategoryResult {
	s.banner("Importing Short Links")

	rows := tables.Rows("links")
	fmt.Fprintf(s.out, "  Found %d legacy links\n", len(rows))

	result := primary.CategoryResult{Name: "Short Links", Found: len(rows)}
	for _, row := range rows {
		out := s.shortLinkRow(ctx, row)
		s.tally(&result, out)
	}

	fmt.Fprintf(s.out, "  Created: %d, Skipped (existing): %d\n", result.Created, result.Skipped)
	return result
}

func (s *ImportServiceImpl) shortLinkRow(ctx context.Context, row dump.Row) rowOutcome {
	token := row.Get("shortLink")
	if !dump.HasText(token) {
		return rowSkipped("link row with no short token")
	}
	url := row.Get("longLink")
	if !dump.HasText(url) {
		return rowSkipped("link %q with no target URL", token.String)
	}

	exists, err := s.repos.ShortLinks.Exists(ctx, token.String)
	if err != nil {
		return rowSkipped("failed to import link %q: %v", token.String, err)
	}
	if exists {
		return rowSkippedQuiet()
	}

	id, err := s.repos.ShortLinks.GetNextID(ctx)
	if err != nil {
		return rowSkipped("failed to import link %q: %v", token.String, err)
	}

	public := dump.ToBool(row.Get("public"))
	record := &secondary.ShortLinkRecord{
		ID:          id,
		Token:       token.String,
		URL:         url.String,
		Description: dump.BlankToNull(row.Get("description")),
		Public:      public.Valid && public.Bool,
		Pinned:      false,
		CreatedAt:   timeOr(dump.ToTime(row.Get("createdAt")), nowUTC()),
		UpdatedAt:   timeOr(dump.ToTime(row.Get("updatedAt")), nowUTC()),
	}

	if err := s.repos.ShortLinks.Create(ctx, record); err != nil {
		return rowSkipped("failed to import link %q: %v", token.String, err)
	}

	return rowCreated()
}
