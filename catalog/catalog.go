package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Catalog is an ordered, in-memory collection of book copies.
//
// It is safe for concurrent use; one mutex serializes all operations.
type Catalog struct {
	mu      sync.Mutex
	entries []Entry
	history DomainEvents

	now   func() time.Time
	newID func() uuid.UUID

	transcript       *transcript
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewCatalog creates an empty Catalog configured with the given options.
func NewCatalog(options ...Option) (*Catalog, error) {
	c := &Catalog{
		now:   time.Now,
		newID: uuid.New,
	}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Add appends count independent copies of the template, each with its own ID and
// available regardless of the template's Available flag.
//
// A count of zero adds nothing. A negative count or one above MaxCopiesPerAdd fails with ErrInvalidCount,
// an invalid template with ErrInvalidTemplate; in both cases the catalog is unchanged.
func (c *Catalog) Add(ctx context.Context, template Template, count int) error {
	start := time.Now()
	ctx, span := c.startSpan(ctx, operationAdd, template.Title)

	c.mu.Lock()
	defer c.mu.Unlock()

	entries, events, err := decideAdd(template, count, c.newID, c.now())
	if err != nil {
		c.recordOperationMetrics(ctx, operationAdd, StatusInvalid, time.Since(start))
		c.finishSpan(span, StatusInvalid, time.Since(start), err)
		c.logError(ctx, LogMsgAddRejected, err, LogAttrTitle, template.Title, LogAttrCount, count)

		return err
	}

	c.entries = append(c.entries, entries...)
	c.history = append(c.history, events...)

	c.transcript.copiesAdded(count, template.Title)
	c.recordCopyGauges(ctx)
	c.recordOperationMetrics(ctx, operationAdd, StatusSuccess, time.Since(start))
	c.finishSpan(span, StatusSuccess, time.Since(start), nil)
	c.logInfo(ctx, LogMsgCopiesAdded, LogAttrTitle, template.Title, LogAttrCount, count)

	return nil
}

// Borrow takes the earliest-added copy with the title (case-insensitive) that is on the shelf
// and marks it as borrowed. It returns the updated copy.
//
// If there is no such copy, because the title is unknown or all copies are borrowed,
// it returns the zero Entry and an error matching ErrNotFoundOrNotAvailable.
// The error additionally matches ErrTitleUnknown or ErrNoEligibleCopy.
func (c *Catalog) Borrow(ctx context.Context, title string) (Entry, error) {
	start := time.Now()
	ctx, span := c.startSpan(ctx, operationBorrow, title)

	c.mu.Lock()
	defer c.mu.Unlock()

	d := decideBorrow(c.entries, title, c.now())
	c.history = append(c.history, d.event)

	if !d.changesState() {
		c.transcript.notAvailable(title)
		c.recordNotFound(ctx, span, operationBorrow, LogMsgBorrowFailed, title, d, time.Since(start))

		return Entry{}, d.err
	}

	c.entries[d.index].Available = false
	entry := c.entries[d.index]

	c.transcript.borrowed(title)
	c.recordCopyGauges(ctx)
	c.recordOperationMetrics(ctx, operationBorrow, StatusSuccess, time.Since(start))
	c.finishSpan(span, StatusSuccess, time.Since(start), nil)
	c.logInfo(ctx, LogMsgCopyBorrowed, LogAttrTitle, entry.Title, LogAttrEntryID, entry.ID.String())

	return entry, nil
}

// Return takes the earliest-added copy with the title (case-insensitive) that is borrowed
// and puts it back on the shelf. It returns the updated copy.
//
// If there is no such copy, because the title is unknown or no copy is borrowed,
// it returns the zero Entry and an error matching ErrNotFoundOrNotBorrowed.
// The error additionally matches ErrTitleUnknown or ErrNoEligibleCopy.
func (c *Catalog) Return(ctx context.Context, title string) (Entry, error) {
	start := time.Now()
	ctx, span := c.startSpan(ctx, operationReturn, title)

	c.mu.Lock()
	defer c.mu.Unlock()

	d := decideReturn(c.entries, title, c.now())
	c.history = append(c.history, d.event)

	if !d.changesState() {
		c.transcript.notBorrowed(title)
		c.recordNotFound(ctx, span, operationReturn, LogMsgReturnFailed, title, d, time.Since(start))

		return Entry{}, d.err
	}

	c.entries[d.index].Available = true
	entry := c.entries[d.index]

	c.transcript.returned(title)
	c.recordCopyGauges(ctx)
	c.recordOperationMetrics(ctx, operationReturn, StatusSuccess, time.Since(start))
	c.finishSpan(span, StatusSuccess, time.Since(start), nil)
	c.logInfo(ctx, LogMsgCopyReturned, LogAttrTitle, entry.Title, LogAttrEntryID, entry.ID.String())

	return entry, nil
}

// Entries returns a copy of all entries in insertion order.
func (c *Catalog) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)

	return entries
}

// Len returns the number of copies in the catalog.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// History returns a copy of all recorded domain events in the order they happened.
func (c *Catalog) History() DomainEvents {
	c.mu.Lock()
	defer c.mu.Unlock()

	history := make(DomainEvents, len(c.history))
	copy(history, c.history)

	return history
}

func (c *Catalog) recordNotFound(
	ctx context.Context,
	span SpanContext,
	operation string,
	msg string,
	title string,
	d decision,
	duration time.Duration,
) {
	var failureInfo string

	switch e := d.event.(type) {
	case BorrowingCopyFailed:
		failureInfo = e.FailureInfo
	case ReturningCopyFailed:
		failureInfo = e.FailureInfo
	}

	c.recordOperationMetrics(ctx, operation, StatusNotFound, duration)
	c.finishSpan(span, StatusNotFound, duration, d.err)
	c.logWarn(ctx, msg, LogAttrTitle, title, LogAttrFailureInfo, failureInfo)
}
