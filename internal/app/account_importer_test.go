package app

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/example/scribe/internal/dump"
	"github.com/example/scribe/internal/ports/secondary"
)

func tableSet(name string, rows ...dump.Row) dump.Set {
	return dump.Set{name: &dump.Table{Name: name, Rows: rows}}
}

func userRow(dce, first, last sql.NullString) dump.Row {
	return dump.NewRow(map[string]sql.NullString{
		"dce":       dce,
		"firstName": first,
		"lastName":  last,
	})
}

func TestImportAccounts_CreatesWithDerivedEmail(t *testing.T) {
	repos := newMockRepos()
	svc := newTestService(repos, nil)

	tables := tableSet("users",
		userRow(text("axs1234"), text("Alice"), text("Smith")),
		userRow(text("bxj5678"), null(), null()),
	)

	result := svc.importAccounts(context.Background(), tables)

	if result.Created != 2 || result.Skipped != 0 {
		t.Fatalf("expected 2 created, got %+v", result)
	}

	alice := repos.accounts.byEmail["axs1234@g.rit.edu"]
	if alice == nil {
		t.Fatal("expected account for axs1234@g.rit.edu")
	}
	if alice.Name != "Alice Smith" {
		t.Errorf("expected name from legacy fields, got %q", alice.Name)
	}
	if !alice.Imported {
		t.Error("imported accounts must be flagged as imported")
	}

	bob := repos.accounts.byEmail["bxj5678@g.rit.edu"]
	if bob == nil {
		t.Fatal("expected account for bxj5678@g.rit.edu")
	}
	if bob.Name != "bxj5678" {
		t.Errorf("expected DCE fallback name, got %q", bob.Name)
	}
}

func TestImportAccounts_SkipsRowWithoutDce(t *testing.T) {
	repos := newMockRepos()
	var out bytes.Buffer
	svc := newTestService(repos, &out)

	tables := tableSet("users",
		userRow(null(), text("Ghost"), text("Row")),
		userRow(text(""), text("Blank"), text("Row")),
	)

	result := svc.importAccounts(context.Background(), tables)

	if result.Created != 0 || result.Skipped != 2 {
		t.Fatalf("expected 2 skipped, got %+v", result)
	}
	if len(repos.accounts.byEmail) != 0 {
		t.Errorf("expected no accounts, got %d", len(repos.accounts.byEmail))
	}
	if !strings.Contains(out.String(), "no DCE identifier") {
		t.Errorf("expected a warning about the missing identifier, got:\n%s", out.String())
	}
}

func TestImportAccounts_NeverOverwritesExisting(t *testing.T) {
	repos := newMockRepos()
	svc := newTestService(repos, nil)

	// Simulate a hand-edited account that predates this run.
	repos.accounts.byEmail["axs1234@g.rit.edu"] = &secondary.AccountRecord{
		ID:    "ACC-0001",
		Email: "axs1234@g.rit.edu",
		Name:  "Alice Renamed",
	}

	tables := tableSet("users", userRow(text("axs1234"), text("Alice"), text("Smith")))
	svc.importAccounts(context.Background(), tables)

	got := repos.accounts.byEmail["axs1234@g.rit.edu"]
	if got.Name != "Alice Renamed" {
		t.Errorf("existing account was overwritten: %q", got.Name)
	}
}

func TestImportAccounts_RerunIsIdempotent(t *testing.T) {
	repos := newMockRepos()
	svc := newTestService(repos, nil)

	tables := tableSet("users", userRow(text("axs1234"), text("Alice"), text("Smith")))

	svc.importAccounts(context.Background(), tables)
	svc.importAccounts(context.Background(), tables)

	if len(repos.accounts.byEmail) != 1 {
		t.Errorf("expected 1 account after re-run, got %d", len(repos.accounts.byEmail))
	}
}
