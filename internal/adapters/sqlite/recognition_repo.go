package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/scribe/internal/ports/secondary"
)

// RecognitionRepository implements secondary.RecognitionRepository with SQLite.
type RecognitionRepository struct {
	db *sql.DB
}

// NewRecognitionRepository creates a new SQLite recognition repository.
func NewRecognitionRepository(db *sql.DB) *RecognitionRepository {
	return &RecognitionRepository{db: db}
}

// Exists reports whether a recognition with the same account, reason, and
// date exists.
func (r *RecognitionRepository) Exists(ctx context.Context, accountID, reason string, givenAt time.Time) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM recognitions WHERE account_id = ? AND reason = ? AND given_at = ?",
		accountID, reason, givenAt,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check recognition existence: %w", err)
	}
	return count > 0, nil
}

// Create persists a new recognition.
func (r *RecognitionRepository) Create(ctx context.Context, recognition *secondary.RecognitionRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO recognitions (id, account_id, reason, given_at) VALUES (?, ?, ?, ?)",
		recognition.ID, recognition.AccountID, recognition.Reason, recognition.GivenAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create recognition: %w", err)
	}

	return nil
}

// Count returns the total number of recognitions.
func (r *RecognitionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recognitions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recognitions: %w", err)
	}
	return count, nil
}

// GetNextID returns the next available recognition ID.
func (r *RecognitionRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM recognitions",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next recognition ID: %w", err)
	}

	return fmt.Sprintf("REC-%04d", maxID+1), nil
}

// Ensure RecognitionRepository implements the interface
var _ secondary.RecognitionRepository = (*RecognitionRepository)(nil)
