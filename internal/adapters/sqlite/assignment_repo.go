package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/scribe/internal/ports/secondary"
)

// AssignmentRepository implements secondary.AssignmentRepository with SQLite.
type AssignmentRepository struct {
	db *sql.DB
}

// NewAssignmentRepository creates a new SQLite assignment repository.
func NewAssignmentRepository(db *sql.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Exists reports whether an assignment with the same account, position,
// and start date exists.
func (r *AssignmentRepository) Exists(ctx context.Context, accountID, positionID string, start time.Time) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM assignments WHERE account_id = ? AND position_id = ? AND start_date = ?",
		accountID, positionID, start,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check assignment existence: %w", err)
	}
	return count > 0, nil
}

// Create persists a new assignment.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *secondary.AssignmentRecord) error {
	isCurrent := 0
	if assignment.IsCurrent {
		isCurrent = 1
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO assignments (id, account_id, position_id, is_current, start_date, end_date) VALUES (?, ?, ?, ?, ?, ?)",
		assignment.ID, assignment.AccountID, assignment.PositionID, isCurrent, assignment.StartDate, assignment.EndDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	return nil
}

// DeleteHistorical removes every non-current assignment, returning the
// number deleted.
func (r *AssignmentRepository) DeleteHistorical(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM assignments WHERE is_current = 0")
	if err != nil {
		return 0, fmt.Errorf("failed to delete historical assignments: %w", err)
	}

	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Count returns the total number of assignments.
func (r *AssignmentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM assignments").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}

// GetNextID returns the next available assignment ID.
func (r *AssignmentRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM assignments",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next assignment ID: %w", err)
	}

	return fmt.Sprintf("ASG-%04d", maxID+1), nil
}

// Ensure AssignmentRepository implements the interface
var _ secondary.AssignmentRepository = (*AssignmentRepository)(nil)
