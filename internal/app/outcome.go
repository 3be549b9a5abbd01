package app

import "fmt"

// rowOutcome is the explicit result of processing one raw row. A row-level
// failure is data, not control flow: it carries a skip reason that the
// importer prints and counts, and it never aborts the run.
type rowOutcome struct {
	created bool
	reason  string // set on skip; empty for expected skips (duplicates)
}

func rowCreated() rowOutcome {
	return rowOutcome{created: true}
}

// rowSkipped marks a row skipped with a printed warning.
func rowSkipped(format string, args ...any) rowOutcome {
	return rowOutcome{reason: fmt.Sprintf(format, args...)}
}

// rowSkippedQuiet marks a row skipped without a warning: an equivalent
// record already exists, or the row was warned about in an earlier pass.
func rowSkippedQuiet() rowOutcome {
	return rowOutcome{}
}
