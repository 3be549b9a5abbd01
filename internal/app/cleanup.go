package app

import (
	"context"
	"fmt"

	"github.com/example/scribe/internal/ports/primary"
)

// cleanupPreviousImport removes previously imported historical assignments
// and the positions only they referenced, so repeated runs never
// accumulate duplicates. Order matters: assignments first, then retired
// positions left without assignments, then import-created positions
// (identified by their non-primary-domain address) left without
// assignments, each preceded by its handover document cascade.
func (s *ImportServiceImpl) cleanupPreviousImport(ctx context.Context) (primary.CleanupResult, error) {
	s.banner("Cleaning up previous import")

	var result primary.CleanupResult

	deleted, err := s.repos.Assignments.DeleteHistorical(ctx)
	if err != nil {
		return result, fmt.Errorf("cleanup failed: %w", err)
	}
	result.HistoricalAssignments = deleted
	fmt.Fprintf(s.out, "  Deleted %d historical assignments\n", deleted)

	deleted, err = s.repos.Positions.DeleteRetiredWithoutAssignments(ctx)
	if err != nil {
		return result, fmt.Errorf("cleanup failed: %w", err)
	}
	result.RetiredPositions = deleted
	fmt.Fprintf(s.out, "  Deleted %d retired positions\n", deleted)

	orphaned, err := s.repos.Positions.ListOrphanedExternal(ctx, s.opts.PrimarySuffix)
	if err != nil {
		return result, fmt.Errorf("cleanup failed: %w", err)
	}
	for _, pos := range orphaned {
		if _, err := s.repos.HandoverDocs.DeleteByPosition(ctx, pos.ID); err != nil {
			return result, fmt.Errorf("cleanup failed: %w", err)
		}
		if err := s.repos.Positions.Delete(ctx, pos.ID); err != nil {
			return result, fmt.Errorf("cleanup failed: %w", err)
		}
		result.OrphanedPositions++
	}
	if result.OrphanedPositions > 0 {
		fmt.Fprintf(s.out, "  Deleted %d orphaned import positions\n", result.OrphanedPositions)
	}

	return result, nil
}
