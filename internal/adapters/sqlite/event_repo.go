package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/scribe/internal/ports/secondary"
)

// EventRepository implements secondary.EventRepository with SQLite.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new SQLite event repository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Upsert persists the event unless one with the same ID exists. Imported
// events are keyed by their synthesized "legacy-" prefixed ID, so a
// re-import resolves to the same row and leaves it untouched.
func (r *EventRepository) Upsert(ctx context.Context, event *secondary.EventRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO events (id, title, starts_at, ends_at, description, location, image) VALUES (?, ?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO NOTHING",
		event.ID, event.Title, event.StartsAt, event.EndsAt, event.Description, event.Location, event.Image,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert event: %w", err)
	}

	return nil
}

// Count returns the total number of events.
func (r *EventRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

// Ensure EventRepository implements the interface
var _ secondary.EventRepository = (*EventRepository)(nil)
