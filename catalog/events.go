package catalog

import (
	"time"

	"github.com/google/uuid"
)

const (
	// CopyAddedToCatalogEventType is the event type identifier.
	CopyAddedToCatalogEventType = "CopyAddedToCatalog"

	// CopyBorrowedEventType is the event type identifier.
	CopyBorrowedEventType = "CopyBorrowed"

	// CopyReturnedEventType is the event type identifier.
	CopyReturnedEventType = "CopyReturned"

	// BorrowingCopyFailedEventType is the event type identifier.
	BorrowingCopyFailedEventType = "BorrowingCopyFailed"

	// ReturningCopyFailedEventType is the event type identifier.
	ReturningCopyFailedEventType = "ReturningCopyFailed"
)

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent is something that happened to the catalog.
type DomainEvent interface {
	// IsEventType returns the string identifier for this event type.
	IsEventType() string

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time

	// IsErrorEvent returns true if this event records a failed attempt.
	IsErrorEvent() bool
}

// ToOccurredAt normalizes t to UTC with microsecond precision.
func ToOccurredAt(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

/***** CopyAddedToCatalog *****/

// CopyAddedToCatalog records that one copy of a book was put on the shelf.
type CopyAddedToCatalog struct {
	EntryID    string
	Title      string
	Author     string
	Genre      string
	Price      float64
	OccurredAt time.Time
}

// BuildCopyAddedToCatalog creates a new CopyAddedToCatalog event.
func BuildCopyAddedToCatalog(entry Entry, occurredAt time.Time) CopyAddedToCatalog {
	return CopyAddedToCatalog{
		EntryID:    entry.ID.String(),
		Title:      entry.Title,
		Author:     entry.Author,
		Genre:      entry.Genre,
		Price:      entry.Price,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e CopyAddedToCatalog) IsEventType() string      { return CopyAddedToCatalogEventType }
func (e CopyAddedToCatalog) HasOccurredAt() time.Time { return e.OccurredAt }
func (e CopyAddedToCatalog) IsErrorEvent() bool       { return false }

/***** CopyBorrowed *****/

// CopyBorrowed records that a copy left the shelf.
type CopyBorrowed struct {
	EntryID    string
	Title      string
	OccurredAt time.Time
}

// BuildCopyBorrowed creates a new CopyBorrowed event.
func BuildCopyBorrowed(entryID uuid.UUID, title string, occurredAt time.Time) CopyBorrowed {
	return CopyBorrowed{
		EntryID:    entryID.String(),
		Title:      title,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e CopyBorrowed) IsEventType() string      { return CopyBorrowedEventType }
func (e CopyBorrowed) HasOccurredAt() time.Time { return e.OccurredAt }
func (e CopyBorrowed) IsErrorEvent() bool       { return false }

/***** CopyReturned *****/

// CopyReturned records that a borrowed copy is back on the shelf.
type CopyReturned struct {
	EntryID    string
	Title      string
	OccurredAt time.Time
}

// BuildCopyReturned creates a new CopyReturned event.
func BuildCopyReturned(entryID uuid.UUID, title string, occurredAt time.Time) CopyReturned {
	return CopyReturned{
		EntryID:    entryID.String(),
		Title:      title,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e CopyReturned) IsEventType() string      { return CopyReturnedEventType }
func (e CopyReturned) HasOccurredAt() time.Time { return e.OccurredAt }
func (e CopyReturned) IsErrorEvent() bool       { return false }

/***** BorrowingCopyFailed *****/

// BorrowingCopyFailed records a Borrow that found no copy on the shelf.
// Title is the requested title, as given by the caller.
type BorrowingCopyFailed struct {
	Title       string
	FailureInfo string
	OccurredAt  time.Time
}

// BuildBorrowingCopyFailed creates a new BorrowingCopyFailed event.
func BuildBorrowingCopyFailed(title string, failureInfo string, occurredAt time.Time) BorrowingCopyFailed {
	return BorrowingCopyFailed{
		Title:       title,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e BorrowingCopyFailed) IsEventType() string      { return BorrowingCopyFailedEventType }
func (e BorrowingCopyFailed) HasOccurredAt() time.Time { return e.OccurredAt }
func (e BorrowingCopyFailed) IsErrorEvent() bool       { return true }

/***** ReturningCopyFailed *****/

// ReturningCopyFailed records a Return that found no borrowed copy.
// Title is the requested title, as given by the caller.
type ReturningCopyFailed struct {
	Title       string
	FailureInfo string
	OccurredAt  time.Time
}

// BuildReturningCopyFailed creates a new ReturningCopyFailed event.
func BuildReturningCopyFailed(title string, failureInfo string, occurredAt time.Time) ReturningCopyFailed {
	return ReturningCopyFailed{
		Title:       title,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e ReturningCopyFailed) IsEventType() string      { return ReturningCopyFailedEventType }
func (e ReturningCopyFailed) HasOccurredAt() time.Time { return e.OccurredAt }
func (e ReturningCopyFailed) IsErrorEvent() bool       { return true }
