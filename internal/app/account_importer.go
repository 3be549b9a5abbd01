package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/scribe/internal/dump"
	"github.com/example/scribe/internal/ports/primary"
	"github.com/example/scribe/internal/ports/secondary"
)

// accountEmail derives the canonical contact address from a legacy DCE
// identifier.
func (s *ImportServiceImpl) accountEmail(dce string) string {
	return dce + "@" + s.opts.AccountDomain
}

// importAccounts upserts every legacy person by derived address. Import
// never overwrites an existing account; a manually edited record wins.
func (s *ImportServiceImpl) importAccounts(ctx context.Context, tables dump.Set) primary.CategoryResult {
	s.banner("Importing Accounts")

	rows := tables.Rows("users")
	fmt.Fprintf(s.out, "  Found %d legacy accounts\n", len(rows))

	result := primary.CategoryResult{Name: "Accounts", Found: len(rows)}
	for _, row := range rows {
		out := s.accountRow(ctx, row)
		s.tally(&result, out)
	}

	fmt.Fprintf(s.out, "  Created/found: %d, Skipped: %d\n", result.Created, result.Skipped)
	return result
}

func (s *ImportServiceImpl) accountRow(ctx context.Context, row dump.Row) rowOutcome {
	dce := row.Get("dce")
	if !dump.HasText(dce) {
		return rowSkipped("account row with no DCE identifier")
	}

	email := s.accountEmail(dce.String)
	name := buildName(row.Get("firstName"), row.Get("lastName"), dce.String)

	id, err := s.repos.Accounts.GetNextID(ctx)
	if err != nil {
		return rowSkipped("failed to import account %s: %v", dce.String, err)
	}

	err = s.repos.Accounts.Upsert(ctx, &secondary.AccountRecord{
		ID:       id,
		Email:    email,
		Name:     name,
		Imported: true,
	})
	if err != nil {
		return rowSkipped("failed to import account %s: %v", dce.String, err)
	}

	return rowCreated()
}

// tally folds one row outcome into the category counters, printing the
// warning for skips that carry a reason.
func (s *ImportServiceImpl) tally(result *primary.CategoryResult, out rowOutcome) {
	if out.created {
		result.Created++
		return
	}
	result.Skipped++
	if out.reason != "" {
		s.warnf("%s", out.reason)
	}
}

// nowUTC is the shared fallback clock for missing timestamps.
func nowUTC() time.Time {
	return time.Now().UTC()
}
