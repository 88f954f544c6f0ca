package catalog

import "errors"

var (
	// ErrNotFoundOrNotAvailable is returned by Borrow when no copy with the title is on the shelf.
	ErrNotFoundOrNotAvailable = errors.New("book not found or not available")

	// ErrNotFoundOrNotBorrowed is returned by Return when no copy with the title is currently borrowed.
	ErrNotFoundOrNotBorrowed = errors.New("book not found or was not borrowed")

	// ErrTitleUnknown is joined to a failed Borrow or Return when no copy has the requested title at all.
	ErrTitleUnknown = errors.New("title unknown")

	// ErrNoEligibleCopy is joined to a failed Borrow or Return when copies exist but none is in the required state.
	ErrNoEligibleCopy = errors.New("no copy in the required state")

	// ErrInvalidCount is returned by Add for a negative number of copies or one above MaxCopiesPerAdd.
	ErrInvalidCount = errors.New("invalid number of copies")

	// ErrInvalidTemplate is returned by Add when the template fails validation.
	ErrInvalidTemplate = errors.New("invalid catalog entry template")

	ErrNilClock            = errors.New("nil clock supplied")
	ErrNilTranscriptWriter = errors.New("nil transcript writer supplied")
)
