package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	failureReasonTitleUnknown   = "title unknown"
	failureReasonNoCopyOnShelf  = "no copy of this title is on the shelf"
	failureReasonNoBorrowedCopy = "no copy of this title is borrowed"
)

// decision is the outcome of a Borrow or Return request against the current entries.
// index is -1 when nothing changes.
type decision struct {
	index int
	event DomainEvent
	err   error
}

func (d decision) changesState() bool {
	return d.index >= 0
}

// state is what a lookup needs to know about the entries for one title.
type state struct {
	titleIsKnown  bool
	firstEligible int
}

// project scans the entries in insertion order and finds the first copy with the title
// whose availability equals wantAvailable.
func project(entries []Entry, title string, wantAvailable bool) state {
	s := state{
		titleIsKnown:  false, // Default to "no copy with this title"
		firstEligible: -1,    // Default to "no eligible copy"
	}

	for i, entry := range entries {
		if !entry.HasTitle(title) {
			continue
		}

		s.titleIsKnown = true

		if entry.Available == wantAvailable {
			s.firstEligible = i
			break
		}
	}

	return s
}

// MaxCopiesPerAdd is the largest number of copies a single Add accepts.
const MaxCopiesPerAdd = 100_000

// decideAdd creates count independent copies of the template.
//
//	ERROR: ErrInvalidCount if count is negative or above MaxCopiesPerAdd
//	ERROR: ErrInvalidTemplate if the title is blank or the price is negative
//	count == 0 is valid and creates nothing
func decideAdd(template Template, count int, newID func() uuid.UUID, now time.Time) ([]Entry, DomainEvents, error) {
	if count < 0 || count > MaxCopiesPerAdd {
		return nil, nil, ErrInvalidCount
	}

	if err := validateTemplate(template); err != nil {
		return nil, nil, err
	}

	entries := make([]Entry, 0, count)
	events := make(DomainEvents, 0, count)

	for range count {
		entry := newEntryFrom(newID(), template)
		entries = append(entries, entry)
		events = append(events, BuildCopyAddedToCatalog(entry, now))
	}

	return entries, events, nil
}

// decideBorrow picks the earliest-added copy with the title that is on the shelf.
//
//	THEN: CopyBorrowed for that copy
//	ERROR: ErrNotFoundOrNotAvailable joined with ErrTitleUnknown or ErrNoEligibleCopy
func decideBorrow(entries []Entry, title string, now time.Time) decision {
	s := project(entries, title, true)

	if s.firstEligible < 0 {
		reason, detail := failureFor(s, failureReasonNoCopyOnShelf)
		return decision{
			index: -1,
			event: BuildBorrowingCopyFailed(title, reason, now),
			err:   errors.Join(ErrNotFoundOrNotAvailable, detail),
		}
	}

	entry := entries[s.firstEligible]

	return decision{
		index: s.firstEligible,
		event: BuildCopyBorrowed(entry.ID, entry.Title, now),
	}
}

// decideReturn picks the earliest-added copy with the title that is borrowed.
//
//	THEN: CopyReturned for that copy
//	ERROR: ErrNotFoundOrNotBorrowed joined with ErrTitleUnknown or ErrNoEligibleCopy
func decideReturn(entries []Entry, title string, now time.Time) decision {
	s := project(entries, title, false)

	if s.firstEligible < 0 {
		reason, detail := failureFor(s, failureReasonNoBorrowedCopy)
		return decision{
			index: -1,
			event: BuildReturningCopyFailed(title, reason, now),
			err:   errors.Join(ErrNotFoundOrNotBorrowed, detail),
		}
	}

	entry := entries[s.firstEligible]

	return decision{
		index: s.firstEligible,
		event: BuildCopyReturned(entry.ID, entry.Title, now),
	}
}

func failureFor(s state, noEligibleReason string) (string, error) {
	if !s.titleIsKnown {
		return failureReasonTitleUnknown, ErrTitleUnknown
	}

	return noEligibleReason, ErrNoEligibleCopy
}
