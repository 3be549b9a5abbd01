// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/scribe/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository
// tests. Uses db.GetSchemaSQL() to prevent test schemas from drifting.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedAccount inserts a test account and returns its ID.
func seedAccount(t *testing.T, db *sql.DB, id, email, name string) string {
	t.Helper()
	if id == "" {
		id = "ACC-0001"
	}
	if email == "" {
		email = "test@g.rit.edu"
	}
	if name == "" {
		name = "Test Account"
	}
	_, err := db.Exec("INSERT INTO accounts (id, email, name, imported) VALUES (?, ?, ?, 1)", id, email, name)
	if err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}
	return id
}

// seedPosition inserts a test position and returns its ID.
func seedPosition(t *testing.T, db *sql.DB, id, title, email string, retired bool) string {
	t.Helper()
	if id == "" {
		id = "POS-0001"
	}
	if title == "" {
		title = "Test Position"
	}
	if email == "" {
		email = "test-position@sse.rit.edu"
	}
	isRetired := 0
	if retired {
		isRetired = 1
	}
	_, err := db.Exec("INSERT INTO positions (id, title, email, is_primary, is_retired) VALUES (?, ?, ?, 0, ?)",
		id, title, email, isRetired)
	if err != nil {
		t.Fatalf("failed to seed position: %v", err)
	}
	return id
}

// seedAssignment inserts a test assignment and returns its ID.
func seedAssignment(t *testing.T, db *sql.DB, id, accountID, positionID string, current bool, start time.Time) string {
	t.Helper()
	if id == "" {
		id = "ASG-0001"
	}
	isCurrent := 0
	if current {
		isCurrent = 1
	}
	_, err := db.Exec(
		"INSERT INTO assignments (id, account_id, position_id, is_current, start_date) VALUES (?, ?, ?, ?, ?)",
		id, accountID, positionID, isCurrent, start)
	if err != nil {
		t.Fatalf("failed to seed assignment: %v", err)
	}
	return id
}

// seedHandoverDoc inserts a test handover document and returns its ID.
func seedHandoverDoc(t *testing.T, db *sql.DB, id, positionID, title string) string {
	t.Helper()
	if id == "" {
		id = "DOC-0001"
	}
	if title == "" {
		title = "Test Doc"
	}
	_, err := db.Exec("INSERT INTO handover_docs (id, position_id, title, content) VALUES (?, ?, ?, '')",
		id, positionID, title)
	if err != nil {
		t.Fatalf("failed to seed handover doc: %v", err)
	}
	return id
}
