package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/scribe/internal/ports/secondary"
)

// PositionRepository implements secondary.PositionRepository with SQLite.
type PositionRepository struct {
	db *sql.DB
}

// NewPositionRepository creates a new SQLite position repository.
func NewPositionRepository(db *sql.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// FindByTitle retrieves a position by canonical title, or nil when absent.
func (r *PositionRepository) FindByTitle(ctx context.Context, title string) (*secondary.PositionRecord, error) {
	return r.findOne(ctx, "SELECT id, title, email, is_primary, is_retired FROM positions WHERE title = ?", title)
}

// FindByEmail retrieves a position by contact address, or nil when absent.
func (r *PositionRepository) FindByEmail(ctx context.Context, email string) (*secondary.PositionRecord, error) {
	return r.findOne(ctx, "SELECT id, title, email, is_primary, is_retired FROM positions WHERE email = ?", email)
}

func (r *PositionRepository) findOne(ctx context.Context, query string, arg any) (*secondary.PositionRecord, error) {
	var isPrimary, isRetired int

	record := &secondary.PositionRecord{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&record.ID, &record.Title, &record.Email, &isPrimary, &isRetired)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find position: %w", err)
	}

	record.IsPrimary = isPrimary != 0
	record.IsRetired = isRetired != 0
	return record, nil
}

// Create persists a new position.
func (r *PositionRepository) Create(ctx context.Context, position *secondary.PositionRecord) error {
	isPrimary := 0
	if position.IsPrimary {
		isPrimary = 1
	}
	isRetired := 0
	if position.IsRetired {
		isRetired = 1
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO positions (id, title, email, is_primary, is_retired) VALUES (?, ?, ?, ?, ?)",
		position.ID, position.Title, position.Email, isPrimary, isRetired,
	)
	if err != nil {
		return fmt.Errorf("failed to create position: %w", err)
	}

	return nil
}

// SetRetired updates only the retired flag of an existing position.
func (r *PositionRepository) SetRetired(ctx context.Context, id string, retired bool) error {
	val := 0
	if retired {
		val = 1
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE positions SET is_retired = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		val, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update position retired flag: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("position %s not found", id)
	}

	return nil
}

// Delete removes a position.
func (r *PositionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM positions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("position %s not found", id)
	}

	return nil
}

// DeleteRetiredWithoutAssignments removes retired positions that have no
// assignments, returning the number deleted.
func (r *PositionRepository) DeleteRetiredWithoutAssignments(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM positions WHERE is_retired = 1 AND id NOT IN (SELECT DISTINCT position_id FROM assignments)",
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete retired positions: %w", err)
	}

	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// ListOrphanedExternal lists positions with no assignments whose contact
// address does not end in the organization's primary domain suffix. The
// suffix is the provenance heuristic: hand-managed positions carry a
// primary-domain address, import-created ones do not.
func (r *PositionRepository) ListOrphanedExternal(ctx context.Context, primarySuffix string) ([]*secondary.PositionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, email, is_primary, is_retired FROM positions
		 WHERE id NOT IN (SELECT DISTINCT position_id FROM assignments)
		 AND email NOT LIKE '%' || ?`,
		primarySuffix,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list orphaned positions: %w", err)
	}
	defer rows.Close()

	var positions []*secondary.PositionRecord
	for rows.Next() {
		var isPrimary, isRetired int

		record := &secondary.PositionRecord{}
		if err := rows.Scan(&record.ID, &record.Title, &record.Email, &isPrimary, &isRetired); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}

		record.IsPrimary = isPrimary != 0
		record.IsRetired = isRetired != 0
		positions = append(positions, record)
	}

	return positions, nil
}

// ListBreakdown returns every position with its historical (non-current)
// assignment count, ordered by title.
func (r *PositionRepository) ListBreakdown(ctx context.Context) ([]*secondary.PositionBreakdown, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.title, p.is_retired, COUNT(a.id)
		 FROM positions p
		 LEFT JOIN assignments a ON a.position_id = p.id AND a.is_current = 0
		 GROUP BY p.id
		 ORDER BY p.title ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list position breakdown: %w", err)
	}
	defer rows.Close()

	var breakdown []*secondary.PositionBreakdown
	for rows.Next() {
		var isRetired int

		entry := &secondary.PositionBreakdown{}
		if err := rows.Scan(&entry.Title, &isRetired, &entry.Historical); err != nil {
			return nil, fmt.Errorf("failed to scan position breakdown: %w", err)
		}

		entry.Retired = isRetired != 0
		breakdown = append(breakdown, entry)
	}

	return breakdown, nil
}

// Count returns the total number of positions.
func (r *PositionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM positions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count positions: %w", err)
	}
	return count, nil
}

// GetNextID returns the next available position ID.
func (r *PositionRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM positions",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next position ID: %w", err)
	}

	return fmt.Sprintf("POS-%04d", maxID+1), nil
}

// Ensure PositionRepository implements the interface
var _ secondary.PositionRepository = (*PositionRepository)(nil)
