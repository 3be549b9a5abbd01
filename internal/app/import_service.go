// Package app implements the legacy import pipeline: a single-threaded
// batch run that parses the dump, cleans up the previous import, and loads
// every entity category in dependency order.
package app

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/example/scribe/internal/dump"
	"github.com/example/scribe/internal/ports/primary"
	"github.com/example/scribe/internal/ports/secondary"
	"github.com/example/scribe/internal/titles"
)

// Repositories bundles the secondary ports the pipeline writes through.
type Repositories struct {
	Accounts     secondary.AccountRepository
	Events       secondary.EventRepository
	ShortLinks   secondary.ShortLinkRepository
	Quotes       secondary.QuoteRepository
	Positions    secondary.PositionRepository
	Assignments  secondary.AssignmentRepository
	Recognitions secondary.RecognitionRepository
	HandoverDocs secondary.HandoverDocRepository
}

// Options carries the organization-specific values of a run.
type Options struct {
	AccountDomain  string // appended to legacy DCE ids to derive account addresses
	PositionDomain string // domain for synthesized position addresses
	PrimarySuffix  string // address suffix marking hand-managed positions
	StorePath      string // shown in the run header only
}

// ImportServiceImpl implements the ImportService interface.
type ImportServiceImpl struct {
	repos      Repositories
	normalizer *titles.Normalizer
	opts       Options
	out        io.Writer
}

// NewImportService creates a new ImportService with injected dependencies.
// Progress output is written to out as the run proceeds.
func NewImportService(repos Repositories, normalizer *titles.Normalizer, opts Options, out io.Writer) *ImportServiceImpl {
	return &ImportServiceImpl{
		repos:      repos,
		normalizer: normalizer,
		opts:       opts,
		out:        out,
	}
}

var (
	bannerColor  = color.New(color.FgHiCyan, color.Bold)
	warnColor    = color.New(color.FgYellow)
	retiredColor = color.New(color.FgRed)
)

// Run executes the full pipeline. The step order is a contract: accounts
// must precede every importer that resolves an account reference, and
// position discovery must fully complete before any assignment is created.
func (s *ImportServiceImpl) Run(ctx context.Context, req primary.ImportRequest) (*primary.ImportReport, error) {
	fmt.Fprintln(s.out, "╔══════════════════════════════════════════════╗")
	fmt.Fprintln(s.out, "║  Legacy record import                        ║")
	fmt.Fprintln(s.out, "╚══════════════════════════════════════════════╝")
	fmt.Fprintf(s.out, "\nDump file: %s\n", req.DumpPath)
	if s.opts.StorePath != "" {
		fmt.Fprintf(s.out, "Target store: %s\n", s.opts.StorePath)
	}

	fmt.Fprintln(s.out, "\nParsing dump file...")
	tables, err := dump.Parse(req.DumpPath)
	if err != nil {
		return nil, err
	}

	names := tables.Names()
	sort.Strings(names)
	fmt.Fprintf(s.out, "  Parsed tables: %s\n", joinOrNone(names))

	start := time.Now()

	report := &primary.ImportReport{Tables: names}

	cleanup, err := s.cleanupPreviousImport(ctx)
	if err != nil {
		return nil, err
	}
	report.Cleanup = cleanup

	report.Categories = append(report.Categories,
		s.importAccounts(ctx, tables),
		s.importEvents(ctx, tables),
		s.importShortLinks(ctx, tables),
		s.importQuotes(ctx, tables),
		s.importAssignments(ctx, tables),
		s.importRecognitions(ctx, tables),
	)

	report.Elapsed = time.Since(start)

	totals, err := s.Totals(ctx)
	if err != nil {
		return nil, err
	}
	report.Totals = *totals

	positions, err := s.Positions(ctx)
	if err != nil {
		return nil, err
	}
	report.Positions = positions

	s.printSummary(report)

	return report, nil
}

// Totals returns the current per-category record counts.
func (s *ImportServiceImpl) Totals(ctx context.Context) (*primary.StoreTotals, error) {
	totals := &primary.StoreTotals{}

	counts := []struct {
		dst   *int
		count func(context.Context) (int, error)
	}{
		{&totals.Accounts, s.repos.Accounts.Count},
		{&totals.Events, s.repos.Events.Count},
		{&totals.ShortLinks, s.repos.ShortLinks.Count},
		{&totals.Quotes, s.repos.Quotes.Count},
		{&totals.Positions, s.repos.Positions.Count},
		{&totals.Assignments, s.repos.Assignments.Count},
		{&totals.Recognitions, s.repos.Recognitions.Count},
	}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count records: %w", err)
		}
		*c.dst = n
	}

	return totals, nil
}

// Positions returns the per-position historical breakdown.
func (s *ImportServiceImpl) Positions(ctx context.Context) ([]primary.PositionSummary, error) {
	breakdown, err := s.repos.Positions.ListBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]primary.PositionSummary, len(breakdown))
	for i, b := range breakdown {
		summaries[i] = primary.PositionSummary{
			Title:      b.Title,
			Historical: b.Historical,
			Retired:    b.Retired,
		}
	}
	return summaries, nil
}

func (s *ImportServiceImpl) printSummary(report *primary.ImportReport) {
	fmt.Fprintln(s.out, "\n══════════════════════════════════════════")
	fmt.Fprintf(s.out, "Import complete in %.1fs\n", report.Elapsed.Seconds())

	t := report.Totals
	fmt.Fprintln(s.out, "\nFinal record counts:")
	fmt.Fprintf(s.out, "  Accounts:     %d\n", t.Accounts)
	fmt.Fprintf(s.out, "  Events:       %d\n", t.Events)
	fmt.Fprintf(s.out, "  Short links:  %d\n", t.ShortLinks)
	fmt.Fprintf(s.out, "  Quotes:       %d\n", t.Quotes)
	fmt.Fprintf(s.out, "  Positions:    %d\n", t.Positions)
	fmt.Fprintf(s.out, "  Assignments:  %d\n", t.Assignments)
	fmt.Fprintf(s.out, "  Recognitions: %d\n", t.Recognitions)

	fmt.Fprintln(s.out, "\nPositions:")
	for _, p := range report.Positions {
		tag := ""
		if p.Retired {
			tag = " " + retiredColor.Sprint("[RETIRED]")
		}
		fmt.Fprintf(s.out, "  %-28s %3d historical assignments%s\n", p.Title, p.Historical, tag)
	}
}

func (s *ImportServiceImpl) banner(title string) {
	fmt.Fprintf(s.out, "\n%s\n", bannerColor.Sprintf("═══ %s ═══", title))
}

func (s *ImportServiceImpl) warnf(format string, args ...any) {
	fmt.Fprintf(s.out, "  %s %s\n", warnColor.Sprint("WARN:"), fmt.Sprintf(format, args...))
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

// Ensure ImportServiceImpl implements the interface.
var _ primary.ImportService = (*ImportServiceImpl)(nil)
