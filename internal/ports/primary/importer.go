// Package primary defines the primary ports (driving adapters) for the
// import pipeline.
package primary

import (
	"context"
	"time"
)

// ImportService defines the primary port for the legacy import pipeline.
type ImportService interface {
	// Run executes the full pipeline: parse dump, pre-import cleanup,
	// entity importers in dependency order, final report.
	Run(ctx context.Context, req ImportRequest) (*ImportReport, error)

	// Totals returns the current per-category record counts.
	Totals(ctx context.Context) (*StoreTotals, error)

	// Positions returns the per-position historical breakdown.
	Positions(ctx context.Context) ([]PositionSummary, error)
}

// ImportRequest contains parameters for an import run.
type ImportRequest struct {
	DumpPath string // Required: path to the legacy dump file
}

// ImportReport is the result of a completed import run.
type ImportReport struct {
	Elapsed    time.Duration
	Tables     []string // table names found in the dump, sorted
	Cleanup    CleanupResult
	Categories []CategoryResult
	Totals     StoreTotals
	Positions  []PositionSummary
}

// CleanupResult holds the deleted-record counts of the pre-import cleanup.
type CleanupResult struct {
	HistoricalAssignments int64
	RetiredPositions      int64
	OrphanedPositions     int64
}

// CategoryResult holds one importer's counters.
type CategoryResult struct {
	Name    string
	Found   int // raw rows available to the importer after its filter
	Created int
	Skipped int
}

// StoreTotals holds final record counts in the target store.
type StoreTotals struct {
	Accounts     int
	Events       int
	ShortLinks   int
	Quotes       int
	Positions    int
	Assignments  int
	Recognitions int
}

// PositionSummary is one line of the per-position breakdown.
type PositionSummary struct {
	Title      string
	Historical int // historical (non-current) assignment count
	Retired    bool
}
