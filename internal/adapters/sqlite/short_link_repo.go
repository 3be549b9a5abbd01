package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/scribe/internal/ports/secondary"
)

// ShortLinkRepository implements secondary.ShortLinkRepository with SQLite.
type ShortLinkRepository struct {
	db *sql.DB
}

// NewShortLinkRepository creates a new SQLite short link repository.
func NewShortLinkRepository(db *sql.DB) *ShortLinkRepository {
	return &ShortLinkRepository{db: db}
}

// Exists reports whether a link with the given short token exists.
func (r *ShortLinkRepository) Exists(ctx context.Context, token string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM short_links WHERE token = ?", token).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check short link existence: %w", err)
	}
	return count > 0, nil
}

// Create persists a new short link.
func (r *ShortLinkRepository) Create(ctx context.Context, link *secondary.ShortLinkRecord) error {
	public := 0
	if link.Public {
		public = 1
	}
	pinned := 0
	if link.Pinned {
		pinned = 1
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO short_links (id, token, url, description, public, pinned, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		link.ID, link.Token, link.URL, link.Description, public, pinned, link.CreatedAt, link.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create short link: %w", err)
	}

	return nil
}

// Count returns the total number of short links.
func (r *ShortLinkRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM short_links").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count short links: %w", err)
	}
	return count, nil
}

// GetNextID returns the next available short link ID.
func (r *ShortLinkRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM short_links",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next short link ID: %w", err)
	}

	return fmt.Sprintf("LINK-%04d", maxID+1), nil
}

// Ensure ShortLinkRepository implements the interface
var _ secondary.ShortLinkRepository = (*ShortLinkRepository)(nil)
