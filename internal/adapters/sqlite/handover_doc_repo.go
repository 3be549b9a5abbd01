package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/scribe/internal/ports/secondary"
)

// HandoverDocRepository implements secondary.HandoverDocRepository with SQLite.
type HandoverDocRepository struct {
	db *sql.DB
}

// NewHandoverDocRepository creates a new SQLite handover document repository.
func NewHandoverDocRepository(db *sql.DB) *HandoverDocRepository {
	return &HandoverDocRepository{db: db}
}

// DeleteByPosition removes every document owned by the position, returning
// the number deleted. Documents must go before their position does.
func (r *HandoverDocRepository) DeleteByPosition(ctx context.Context, positionID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM handover_docs WHERE position_id = ?", positionID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete handover documents: %w", err)
	}

	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Ensure HandoverDocRepository implements the interface
var _ secondary.HandoverDocRepository = (*HandoverDocRepository)(nil)
