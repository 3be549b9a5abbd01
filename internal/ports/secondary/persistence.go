// Package secondary defines the secondary ports (driven adapters) for the
// import pipeline. These are the interfaces through which the application
// drives the target store.
package secondary

import (
	"context"
	"database/sql"
	"time"
)

// AccountRepository defines the secondary port for account persistence.
// Accounts are upserted by derived email: create if absent, never
// overwrite an existing (possibly hand-edited) record.
type AccountRepository interface {
	// Upsert persists the account unless one with the same email exists.
	Upsert(ctx context.Context, account *AccountRecord) error

	// FindByEmail retrieves an account by email, or nil when absent.
	FindByEmail(ctx context.Context, email string) (*AccountRecord, error)

	// Count returns the total number of accounts.
	Count(ctx context.Context) (int, error)

	// GetNextID returns the next available account ID.
	GetNextID(ctx context.Context) (string, error)
}

// AccountRecord represents an account as stored in persistence.
type AccountRecord struct {
	ID       string
	Email    string
	Name     string
	Imported bool
}

// EventRepository defines the secondary port for event persistence.
type EventRepository interface {
	// Upsert persists the event unless one with the same ID exists.
	Upsert(ctx context.Context, event *EventRecord) error

	// Count returns the total number of events.
	Count(ctx context.Context) (int, error)
}

// EventRecord represents an event as stored in persistence. Imported
// events carry a synthesized "legacy-" prefixed ID.
type EventRecord struct {
	ID          string
	Title       string
	StartsAt    time.Time
	EndsAt      sql.NullTime
	Description string
	Location    sql.NullString
	Image       sql.NullString
}

// ShortLinkRepository defines the secondary port for short link
// persistence. Links are immutable once created by import.
type ShortLinkRepository interface {
	// Exists reports whether a link with the given short token exists.
	Exists(ctx context.Context, token string) (bool, error)

	// Create persists a new short link.
	Create(ctx context.Context, link *ShortLinkRecord) error

	// Count returns the total number of short links.
	Count(ctx context.Context) (int, error)

	// GetNextID returns the next available short link ID.
	GetNextID(ctx context.Context) (string, error)
}

// ShortLinkRecord represents a short link as stored in persistence.
type ShortLinkRecord struct {
	ID          string
	Token       string
	URL         string
	Description sql.NullString
	Public      bool
	Pinned      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// QuoteRepository defines the secondary port for quote persistence.
type QuoteRepository interface {
	// Exists reports whether a quote with identical text and date exists.
	Exists(ctx context.Context, quote string, saidAt time.Time) (bool, error)

	// Create persists a new quote.
	Create(ctx context.Context, quote *QuoteRecord) error

	// Count returns the total number of quotes.
	Count(ctx context.Context) (int, error)

	// GetNextID returns the next available quote ID.
	GetNextID(ctx context.Context) (string, error)
}

// QuoteRecord represents a quote as stored in persistence.
type QuoteRecord struct {
	ID        string
	Quote     string
	Author    string
	SaidAt    time.Time
	AccountID sql.NullString
}

// PositionRepository defines the secondary port for position persistence.
// Positions are keyed by canonical title; the retired flag may be corrected
// on re-import but title, email, and primary flag are never overwritten.
type PositionRepository interface {
	// FindByTitle retrieves a position by canonical title, or nil when absent.
	FindByTitle(ctx context.Context, title string) (*PositionRecord, error)

	// FindByEmail retrieves a position by contact address, or nil when absent.
	FindByEmail(ctx context.Context, email string) (*PositionRecord, error)

	// Create persists a new position.
	Create(ctx context.Context, position *PositionRecord) error

	// SetRetired updates only the retired flag of an existing position.
	SetRetired(ctx context.Context, id string, retired bool) error

	// Delete removes a position.
	Delete(ctx context.Context, id string) error

	// DeleteRetiredWithoutAssignments removes retired positions that have
	// no assignments, returning the number deleted.
	DeleteRetiredWithoutAssignments(ctx context.Context) (int64, error)

	// ListOrphanedExternal lists positions with no assignments whose
	// contact address does not end in the organization's primary domain
	// suffix. These are the import-created positions.
	ListOrphanedExternal(ctx context.Context, primarySuffix string) ([]*PositionRecord, error)

	// ListBreakdown returns every position with its historical assignment
	// count, ordered by title.
	ListBreakdown(ctx context.Context) ([]*PositionBreakdown, error)

	// Count returns the total number of positions.
	Count(ctx context.Context) (int, error)

	// GetNextID returns the next available position ID.
	GetNextID(ctx context.Context) (string, error)
}

// PositionRecord represents a position as stored in persistence.
type PositionRecord struct {
	ID        string
	Title     string
	Email     string
	IsPrimary bool
	IsRetired bool
}

// PositionBreakdown is one line of the per-position report.
type PositionBreakdown struct {
	Title      string
	Historical int
	Retired    bool
}

// AssignmentRepository defines the secondary port for assignment
// persistence. An assignment is a duplicate iff (account, position, start)
// all match; the import only ever creates historical (non-current) rows.
type AssignmentRepository interface {
	// Exists reports whether an assignment with the same account,
	// position, and start date exists.
	Exists(ctx context.Context, accountID, positionID string, start time.Time) (bool, error)

	// Create persists a new assignment.
	Create(ctx context.Context, assignment *AssignmentRecord) error

	// DeleteHistorical removes every non-current assignment, returning
	// the number deleted.
	DeleteHistorical(ctx context.Context) (int64, error)

	// Count returns the total number of assignments.
	Count(ctx context.Context) (int, error)

	// GetNextID returns the next available assignment ID.
	GetNextID(ctx context.Context) (string, error)
}

// AssignmentRecord represents an assignment as stored in persistence.
type AssignmentRecord struct {
	ID         string
	AccountID  string
	PositionID string
	IsCurrent  bool
	StartDate  time.Time
	EndDate    sql.NullTime
}

// RecognitionRepository defines the secondary port for recognition
// persistence.
type RecognitionRepository interface {
	// Exists reports whether a recognition with the same account, reason,
	// and date exists.
	Exists(ctx context.Context, accountID, reason string, givenAt time.Time) (bool, error)

	// Create persists a new recognition.
	Create(ctx context.Context, recognition *RecognitionRecord) error

	// Count returns the total number of recognitions.
	Count(ctx context.Context) (int, error)

	// GetNextID returns the next available recognition ID.
	GetNextID(ctx context.Context) (string, error)
}

// RecognitionRecord represents a recognition as stored in persistence.
type RecognitionRecord struct {
	ID        string
	AccountID string
	Reason    string
	GivenAt   time.Time
}

// HandoverDocRepository defines the secondary port for handover document
// persistence. The import only deletes these, as the cleanup cascade for
// positions it is about to remove.
type HandoverDocRepository interface {
	// DeleteByPosition removes every document owned by the position,
	// returning the number deleted.
	DeleteByPosition(ctx context.Context, positionID string) (int64, error)
}
