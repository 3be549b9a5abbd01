package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/example/scribe/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockAccountRepo implements secondary.AccountRepository in memory.
type mockAccountRepo struct {
	byEmail map[string]*secondary.AccountRecord
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{byEmail: map[string]*secondary.AccountRecord{}}
}

func (m *mockAccountRepo) Upsert(ctx context.Context, account *secondary.AccountRecord) error {
	if _, ok := m.byEmail[account.Email]; ok {
		return nil
	}
	cp := *account
	m.byEmail[account.Email] = &cp
	return nil
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*secondary.AccountRecord, error) {
	return m.byEmail[email], nil
}

func (m *mockAccountRepo) Count(ctx context.Context) (int, error) {
	return len(m.byEmail), nil
}

func (m *mockAccountRepo) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("ACC-%04d", len(m.byEmail)+1), nil
}

// mockEventRepo implements secondary.EventRepository in memory.
type mockEventRepo struct {
	byID map[string]*secondary.EventRecord
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{byID: map[string]*secondary.EventRecord{}}
}

func (m *mockEventRepo) Upsert(ctx context.Context, event *secondary.EventRecord) error {
	if _, ok := m.byID[event.ID]; ok {
		return nil
	}
	cp := *event
	m.byID[event.ID] = &cp
	return nil
}

func (m *mockEventRepo) Count(ctx context.Context) (int, error) {
	return len(m.byID), nil
}

// mockShortLinkRepo implements secondary.ShortLinkRepository in memory.
type mockShortLinkRepo struct {
	byToken map[string]*secondary.ShortLinkRecord
}

func newMockShortLinkRepo() *mockShortLinkRepo {
	return &mockShortLinkRepo{byToken: map[string]*secondary.ShortLinkRecord{}}
}

func (m *mockShortLinkRepo) Exists(ctx context.Context, token string) (bool, error) {
	_, ok := m.byToken[token]
	return ok, nil
}

func (m *mockShortLinkRepo) Create(ctx context.Context, link *secondary.ShortLinkRecord) error {
	if _, ok := m.byToken[link.Token]; ok {
		return fmt.Errorf("duplicate token %q", link.Token)
	}
	cp := *link
	m.byToken[link.Token] = &cp
	return nil
}

func (m *mockShortLinkRepo) Count(ctx context.Context) (int, error) {
	return len(m.byToken), nil
}

func (m *mockShortLinkRepo) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("LINK-%04d", len(m.byToken)+1), nil
}

// mockQuoteRepo implements secondary.QuoteRepository in memory.
type mockQuoteRepo struct {
	quotes []*secondary.QuoteRecord
}

func newMockQuoteRepo() *mockQuoteRepo {
	return &mockQuoteRepo{}
}

func (m *mockQuoteRepo) Exists(ctx context.Context, quote string, saidAt time.Time) (bool, error) {
	for _, q := range m.quotes {
		if q.Quote == quote && q.SaidAt.Equal(saidAt) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockQuoteRepo) Create(ctx context.Context, quote *secondary.QuoteRecord) error {
	cp := *quote
	m.quotes = append(m.quotes, &cp)
	return nil
}

func (m *mockQuoteRepo) Count(ctx context.Context) (int, error) {
	return len(m.quotes), nil
}

func (m *mockQuoteRepo) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("QUO-%04d", len(m.quotes)+1), nil
}

// mockPositionRepo implements secondary.PositionRepository in memory. It
// shares the assignment repo so assignment-dependent queries work.
type mockPositionRepo struct {
	byID        map[string]*secondary.PositionRecord
	assignments *mockAssignmentRepo
}

func newMockPositionRepo(assignments *mockAssignmentRepo) *mockPositionRepo {
	return &mockPositionRepo{byID: map[string]*secondary.PositionRecord{}, assignments: assignments}
}

func (m *mockPositionRepo) FindByTitle(ctx context.Context, title string) (*secondary.PositionRecord, error) {
	for _, p := range m.byID {
		if p.Title == title {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockPositionRepo) FindByEmail(ctx context.Context, email string) (*secondary.PositionRecord, error) {
	for _, p := range m.byID {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockPositionRepo) Create(ctx context.Context, position *secondary.PositionRecord) error {
	for _, p := range m.byID {
		if p.Title == position.Title || p.Email == position.Email {
			return fmt.Errorf("constraint violation on position %q", position.Title)
		}
	}
	cp := *position
	m.byID[position.ID] = &cp
	return nil
}

func (m *mockPositionRepo) SetRetired(ctx context.Context, id string, retired bool) error {
	p, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("position %s not found", id)
	}
	p.IsRetired = retired
	return nil
}

func (m *mockPositionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("position %s not found", id)
	}
	delete(m.byID, id)
	return nil
}

func (m *mockPositionRepo) DeleteRetiredWithoutAssignments(ctx context.Context) (int64, error) {
	var deleted int64
	for id, p := range m.byID {
		if p.IsRetired && m.assignments.countByPosition(id) == 0 {
			delete(m.byID, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *mockPositionRepo) ListOrphanedExternal(ctx context.Context, primarySuffix string) ([]*secondary.PositionRecord, error) {
	var out []*secondary.PositionRecord
	for id, p := range m.byID {
		if m.assignments.countByPosition(id) > 0 {
			continue
		}
		if len(p.Email) >= len(primarySuffix) && p.Email[len(p.Email)-len(primarySuffix):] == primarySuffix {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPositionRepo) ListBreakdown(ctx context.Context) ([]*secondary.PositionBreakdown, error) {
	var out []*secondary.PositionBreakdown
	for id, p := range m.byID {
		out = append(out, &secondary.PositionBreakdown{
			Title:      p.Title,
			Historical: m.assignments.historicalByPosition(id),
			Retired:    p.IsRetired,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *mockPositionRepo) Count(ctx context.Context) (int, error) {
	return len(m.byID), nil
}

func (m *mockPositionRepo) GetNextID(ctx context.Context) (string, error) {
	max := 0
	for id := range m.byID {
		var n int
		if _, err := fmt.Sscanf(id, "POS-%d", &n); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("POS-%04d", max+1), nil
}

// mockAssignmentRepo implements secondary.AssignmentRepository in memory.
type mockAssignmentRepo struct {
	records []*secondary.AssignmentRecord
	nextID  int
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{}
}

func (m *mockAssignmentRepo) Exists(ctx context.Context, accountID, positionID string, start time.Time) (bool, error) {
	for _, a := range m.records {
		if a.AccountID == accountID && a.PositionID == positionID && a.StartDate.Equal(start) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAssignmentRepo) Create(ctx context.Context, assignment *secondary.AssignmentRecord) error {
	cp := *assignment
	m.records = append(m.records, &cp)
	return nil
}

func (m *mockAssignmentRepo) DeleteHistorical(ctx context.Context) (int64, error) {
	var kept []*secondary.AssignmentRecord
	var deleted int64
	for _, a := range m.records {
		if a.IsCurrent {
			kept = append(kept, a)
		} else {
			deleted++
		}
	}
	m.records = kept
	return deleted, nil
}

func (m *mockAssignmentRepo) Count(ctx context.Context) (int, error) {
	return len(m.records), nil
}

func (m *mockAssignmentRepo) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("ASG-%04d", m.nextID), nil
}

func (m *mockAssignmentRepo) countByPosition(positionID string) int {
	n := 0
	for _, a := range m.records {
		if a.PositionID == positionID {
			n++
		}
	}
	return n
}

func (m *mockAssignmentRepo) historicalByPosition(positionID string) int {
	n := 0
	for _, a := range m.records {
		if a.PositionID == positionID && !a.IsCurrent {
			n++
		}
	}
	return n
}

// mockRecognitionRepo implements secondary.RecognitionRepository in memory.
type mockRecognitionRepo struct {
	records []*secondary.RecognitionRecord
}

func newMockRecognitionRepo() *mockRecognitionRepo {
	return &mockRecognitionRepo{}
}

func (m *mockRecognitionRepo) Exists(ctx context.Context, accountID, reason string, givenAt time.Time) (bool, error) {
	for _, r := range m.records {
		if r.AccountID == accountID && r.Reason == reason && r.GivenAt.Equal(givenAt) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRecognitionRepo) Create(ctx context.Context, recognition *secondary.RecognitionRecord) error {
	cp := *recognition
	m.records = append(m.records, &cp)
	return nil
}

func (m *mockRecognitionRepo) Count(ctx context.Context) (int, error) {
	return len(m.records), nil
}

func (m *mockRecognitionRepo) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("REC-%04d", len(m.records)+1), nil
}

// mockHandoverDocRepo implements secondary.HandoverDocRepository in memory.
type mockHandoverDocRepo struct {
	deletedForPositions []string
}

func newMockHandoverDocRepo() *mockHandoverDocRepo {
	return &mockHandoverDocRepo{}
}

func (m *mockHandoverDocRepo) DeleteByPosition(ctx context.Context, positionID string) (int64, error) {
	m.deletedForPositions = append(m.deletedForPositions, positionID)
	return 0, nil
}

// ============================================================================
// Test Helper
// ============================================================================

type mockRepos struct {
	accounts     *mockAccountRepo
	events       *mockEventRepo
	links        *mockShortLinkRepo
	quotes       *mockQuoteRepo
	positions    *mockPositionRepo
	assignments  *mockAssignmentRepo
	recognitions *mockRecognitionRepo
	docs         *mockHandoverDocRepo
}

func newMockRepos() *mockRepos {
	assignments := newMockAssignmentRepo()
	return &mockRepos{
		accounts:     newMockAccountRepo(),
		events:       newMockEventRepo(),
		links:        newMockShortLinkRepo(),
		quotes:       newMockQuoteRepo(),
		positions:    newMockPositionRepo(assignments),
		assignments:  assignments,
		recognitions: newMockRecognitionRepo(),
		docs:         newMockHandoverDocRepo(),
	}
}

func (m *mockRepos) bundle() Repositories {
	return Repositories{
		Accounts:     m.accounts,
		Events:       m.events,
		ShortLinks:   m.links,
		Quotes:       m.quotes,
		Positions:    m.positions,
		Assignments:  m.assignments,
		Recognitions: m.recognitions,
		HandoverDocs: m.docs,
	}
}

// Interface checks
var (
	_ secondary.AccountRepository     = (*mockAccountRepo)(nil)
	_ secondary.EventRepository       = (*mockEventRepo)(nil)
	_ secondary.ShortLinkRepository   = (*mockShortLinkRepo)(nil)
	_ secondary.QuoteRepository       = (*mockQuoteRepo)(nil)
	_ secondary.PositionRepository    = (*mockPositionRepo)(nil)
	_ secondary.AssignmentRepository  = (*mockAssignmentRepo)(nil)
	_ secondary.RecognitionRepository = (*mockRecognitionRepo)(nil)
	_ secondary.HandoverDocRepository = (*mockHandoverDocRepo)(nil)
)
