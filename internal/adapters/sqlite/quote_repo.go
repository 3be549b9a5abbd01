package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/scribe/internal/ports/secondary"
)

// QuoteRepository implements secondary.QuoteRepository with SQLite.
type QuoteRepository struct {
	db *sql.DB
}

// NewQuoteRepository creates a new SQLite quote repository.
func NewQuoteRepository(db *sql.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// Exists reports whether a quote with identical text and date exists.
func (r *QuoteRepository) Exists(ctx context.Context, quote string, saidAt time.Time) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM quotes WHERE quote = ? AND said_at = ?",
		quote, saidAt,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check quote existence: %w", err)
	}
	return count > 0, nil
}

// Create persists a new quote.
func (r *QuoteRepository) Create(ctx context.Context, quote *secondary.QuoteRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO quotes (id, quote, author, said_at, account_id) VALUES (?, ?, ?, ?, ?)",
		quote.ID, quote.Quote, quote.Author, quote.SaidAt, quote.AccountID,
	)
	if err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}

	return nil
}

// Count returns the total number of quotes.
func (r *QuoteRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quotes").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count quotes: %w", err)
	}
	return count, nil
}

// GetNextID returns the next available quote ID.
func (r *QuoteRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM quotes",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next quote ID: %w", err)
	}

	return fmt.Sprintf("QUO-%04d", maxID+1), nil
}

// Ensure QuoteRepository implements the interface
var _ secondary.QuoteRepository = (*QuoteRepository)(nil)
