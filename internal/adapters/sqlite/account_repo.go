// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/scribe/internal/ports/secondary"
)

// AccountRepository implements secondary.AccountRepository with SQLite.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new SQLite account repository.
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Upsert persists the account unless one with the same email exists. The
// unique constraint on email carries the create-if-absent semantics; an
// existing account is never modified.
func (r *AccountRepository) Upsert(ctx context.Context, account *secondary.AccountRecord) error {
	imported := 0
	if account.Imported {
		imported = 1
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO accounts (id, email, name, imported) VALUES (?, ?, ?, ?) ON CONFLICT(email) DO NOTHING",
		account.ID, account.Email, account.Name, imported,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}

	return nil
}

// FindByEmail retrieves an account by email, or nil when absent.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*secondary.AccountRecord, error) {
	var imported int

	record := &secondary.AccountRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, name, imported FROM accounts WHERE email = ?",
		email,
	).Scan(&record.ID, &record.Email, &record.Name, &imported)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	record.Imported = imported != 0
	return record, nil
}

// Count returns the total number of accounts.
func (r *AccountRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM accounts").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// GetNextID returns the next available account ID.
func (r *AccountRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM accounts",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next account ID: %w", err)
	}

	return fmt.Sprintf("ACC-%04d", maxID+1), nil
}

// Ensure AccountRepository implements the interface
var _ secondary.AccountRepository = (*AccountRepository)(nil)
