package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	. "github.com/AntonStoeckl/library-catalog-go/testutil/observability/testdoubles" //nolint:revive
)

const (
	kolobok  = "колобок"
	unicorn  = "боевой единорог"
	neverHad = "война и мир"
)

var fakeClock = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newCatalog(t *testing.T, options ...catalog.Option) *catalog.Catalog {
	t.Helper()

	options = append([]catalog.Option{catalog.WithClock(func() time.Time { return fakeClock })}, options...)
	c, err := catalog.NewCatalog(options...)
	require.NoError(t, err)

	return c
}

func givenCopies(t *testing.T, c *catalog.Catalog, title string, count int) {
	t.Helper()

	require.NoError(t, c.Add(context.Background(), catalog.BuildTemplate(title, "хз", "сказка", 1000), count))
}

func Test_NewCatalog_IsEmpty(t *testing.T) {
	// act
	c, err := catalog.NewCatalog()

	// assert
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Entries())
	assert.Empty(t, c.History())
}

func Test_NewCatalog_RejectsNilOptions(t *testing.T) {
	_, err := catalog.NewCatalog(catalog.WithClock(nil))
	assert.ErrorIs(t, err, catalog.ErrNilClock)

	_, err = catalog.NewCatalog(catalog.WithTranscript(nil))
	assert.ErrorIs(t, err, catalog.ErrNilTranscriptWriter)
}

func Test_Add_AppendsIndependentAvailableCopies(t *testing.T) {
	// arrange
	c := newCatalog(t)
	template := catalog.BuildTemplate(kolobok, "хз", "сказка", 1000)
	template.Available = false

	// act
	err := c.Add(context.Background(), template, 3)

	// assert
	require.NoError(t, err)
	entries := c.Entries()
	require.Len(t, entries, 3)

	ids := map[string]struct{}{}
	for _, entry := range entries {
		assert.Equal(t, kolobok, entry.Title)
		assert.Equal(t, "хз", entry.Author)
		assert.Equal(t, "сказка", entry.Genre)
		assert.InDelta(t, 1000.0, entry.Price, 0.0001)
		assert.True(t, entry.Available, "copies always start on the shelf")
		ids[entry.ID.String()] = struct{}{}
	}
	assert.Len(t, ids, 3, "every copy has its own identity")
}

func Test_Add_PreservesInsertionOrder(t *testing.T) {
	// arrange
	c := newCatalog(t)

	// act
	givenCopies(t, c, kolobok, 2)
	givenCopies(t, c, unicorn, 1)
	givenCopies(t, c, kolobok, 1)

	// assert
	entries := c.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, []string{kolobok, kolobok, unicorn, kolobok}, []string{
		entries[0].Title, entries[1].Title, entries[2].Title, entries[3].Title,
	})
}

func Test_Add_ZeroCount_IsANoOp(t *testing.T) {
	// arrange
	var out bytes.Buffer
	c := newCatalog(t, catalog.WithTranscript(&out))

	// act
	err := c.Add(context.Background(), catalog.BuildTemplate(kolobok, "хз", "сказка", 1000), 0)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.History())
	assert.Equal(t, "0 copies of колобок added to the library.\n", out.String())
}

func Test_Add_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		template catalog.Template
		count    int
		wantErr  error
	}{
		{
			name:     "negative_count",
			template: catalog.BuildTemplate(kolobok, "хз", "сказка", 1000),
			count:    -1,
			wantErr:  catalog.ErrInvalidCount,
		},
		{
			name:     "count_above_maximum",
			template: catalog.BuildTemplate(kolobok, "хз", "сказка", 1000),
			count:    math.MaxInt,
			wantErr:  catalog.ErrInvalidCount,
		},
		{
			name:     "nan_price",
			template: catalog.BuildTemplate(kolobok, "хз", "сказка", math.NaN()),
			count:    1,
			wantErr:  catalog.ErrInvalidTemplate,
		},
		{
			name:     "blank_title",
			template: catalog.BuildTemplate("   ", "хз", "сказка", 1000),
			count:    1,
			wantErr:  catalog.ErrInvalidTemplate,
		},
		{
			name:     "negative_price",
			template: catalog.BuildTemplate(kolobok, "хз", "сказка", -0.01),
			count:    1,
			wantErr:  catalog.ErrInvalidTemplate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			var out bytes.Buffer
			c := newCatalog(t, catalog.WithTranscript(&out))

			// act
			err := c.Add(context.Background(), tc.template, tc.count)

			// assert
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, 0, c.Len())
			assert.Empty(t, c.History())
			assert.Empty(t, out.String())
		})
	}
}

func Test_Borrow_TakesEarliestAvailableCopy(t *testing.T) {
	// arrange
	c := newCatalog(t)
	givenCopies(t, c, kolobok, 3)
	before := c.Entries()

	// act
	first, err1 := c.Borrow(context.Background(), kolobok)
	second, err2 := c.Borrow(context.Background(), kolobok)

	// assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, before[0].ID, first.ID)
	assert.Equal(t, before[1].ID, second.ID)
	assert.False(t, first.Available)
	assert.False(t, second.Available)

	after := c.Entries()
	assert.False(t, after[0].Available)
	assert.False(t, after[1].Available)
	assert.True(t, after[2].Available)
}

func Test_Borrow_IsFIFOAcrossAllCopies(t *testing.T) {
	// arrange
	c := newCatalog(t)
	givenCopies(t, c, kolobok, 3)
	before := c.Entries()
	ctx := context.Background()

	// act
	borrowed := make([]catalog.Entry, 0, 3)
	for range 3 {
		entry, err := c.Borrow(ctx, kolobok)
		require.NoError(t, err)
		borrowed = append(borrowed, entry)
	}
	_, errFourth := c.Borrow(ctx, kolobok)

	// assert
	for i, entry := range borrowed {
		assert.Equal(t, before[i].ID, entry.ID)
	}
	assert.ErrorIs(t, errFourth, catalog.ErrNotFoundOrNotAvailable)
	assert.ErrorIs(t, errFourth, catalog.ErrNoEligibleCopy)
}

func Test_BorrowReturnBorrow_ReusesTheSameEntry(t *testing.T) {
	// arrange
	c := newCatalog(t)
	givenCopies(t, c, kolobok, 2)
	ctx := context.Background()

	// act
	first, err := c.Borrow(ctx, kolobok)
	require.NoError(t, err)
	returned, err := c.Return(ctx, kolobok)
	require.NoError(t, err)
	again, err := c.Borrow(ctx, kolobok)
	require.NoError(t, err)

	// assert
	assert.Equal(t, first.ID, returned.ID)
	assert.True(t, returned.Available)
	assert.Equal(t, first.ID, again.ID)
	assert.False(t, again.Available)
}

func Test_Borrow_MatchesTitleIgnoringCase(t *testing.T) {
	// arrange
	c := newCatalog(t)
	givenCopies(t, c, "Колобок", 1)

	// act
	entry, err := c.Borrow(context.Background(), "КОЛОБОК")

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Колобок", entry.Title, "the stored title is kept as added")
}

func Test_Borrow_FailsForUnknownTitle(t *testing.T) {
	// arrange
	var out bytes.Buffer
	c := newCatalog(t, catalog.WithTranscript(&out))
	givenCopies(t, c, kolobok, 1)
	out.Reset()

	// act
	entry, err := c.Borrow(context.Background(), neverHad)

	// assert
	assert.ErrorIs(t, err, catalog.ErrNotFoundOrNotAvailable)
	assert.ErrorIs(t, err, catalog.ErrTitleUnknown)
	assert.NotErrorIs(t, err, catalog.ErrNoEligibleCopy)
	assert.Equal(t, catalog.Entry{}, entry)
	assert.True(t, c.Entries()[0].Available, "a failed borrow changes nothing")
	assert.Equal(t, "Book 'война и мир' not found or not available.\n", out.String())
}

func Test_Borrow_FailsWhenAllCopiesAreBorrowed(t *testing.T) {
	// arrange
	c := newCatalog(t)
	givenCopies(t, c, unicorn, 1)
	_, err := c.Borrow(context.Background(), unicorn)
	require.NoError(t, err)

	// act
	_, err = c.Borrow(context.Background(), unicorn)

	// assert
	assert.ErrorIs(t, err, catalog.ErrNotFoundOrNotAvailable)
	assert.ErrorIs(t, err, catalog.ErrNoEligibleCopy)
	assert.NotErrorIs(t, err, catalog.ErrTitleUnknown)
}

func Test_Return_TakesEarliestBorrowedCopy(t *testing.T) {
	// arrange
	c := newCatalog(t)
	givenCopies(t, c, kolobok, 3)
	ctx := context.Background()
	first, _ := c.Borrow(ctx, kolobok)
	second, _ := c.Borrow(ctx, kolobok)

	// act
	returned, err := c.Return(ctx, kolobok)

	// assert
	require.NoError(t, err)
	assert.Equal(t, first.ID, returned.ID)
	assert.True(t, returned.Available)

	after := c.Entries()
	assert.True(t, after[0].Available)
	assert.Equal(t, second.ID, after[1].ID)
	assert.False(t, after[1].Available)
	assert.True(t, after[2].Available)
}

func Test_Return_FailsWhenNothingIsBorrowed(t *testing.T) {
	// arrange
	var out bytes.Buffer
	c := newCatalog(t, catalog.WithTranscript(&out))
	givenCopies(t, c, kolobok, 2)
	out.Reset()

	// act
	entry, err := c.Return(context.Background(), kolobok)

	// assert
	assert.ErrorIs(t, err, catalog.ErrNotFoundOrNotBorrowed)
	assert.ErrorIs(t, err, catalog.ErrNoEligibleCopy)
	assert.Equal(t, catalog.Entry{}, entry)
	assert.Equal(t, "Book 'колобок' not found or was not borrowed.\n", out.String())
}

func Test_Return_FailsForUnknownTitle(t *testing.T) {
	// arrange
	c := newCatalog(t)

	// act
	_, err := c.Return(context.Background(), neverHad)

	// assert
	assert.ErrorIs(t, err, catalog.ErrNotFoundOrNotBorrowed)
	assert.ErrorIs(t, err, catalog.ErrTitleUnknown)
}

func Test_BorrowThenReturn_RestoresAvailability(t *testing.T) {
	// arrange
	c := newCatalog(t)
	givenCopies(t, c, kolobok, 2)
	givenCopies(t, c, unicorn, 1)
	before := c.Entries()
	ctx := context.Background()

	// act
	_, err := c.Borrow(ctx, kolobok)
	require.NoError(t, err)
	_, err = c.Return(ctx, kolobok)
	require.NoError(t, err)

	// assert
	assert.Equal(t, before, c.Entries())
}

func Test_Entries_ReturnsACopy(t *testing.T) {
	// arrange
	c := newCatalog(t)
	givenCopies(t, c, kolobok, 1)

	// act
	entries := c.Entries()
	entries[0].Available = false
	entries[0].Title = "changed"

	// assert
	assert.True(t, c.Entries()[0].Available)
	assert.Equal(t, kolobok, c.Entries()[0].Title)
}

func Test_Catalog_LibraryScenario(t *testing.T) {
	// arrange
	var out bytes.Buffer
	c := newCatalog(t, catalog.WithTranscript(&out))
	ctx := context.Background()

	// act
	require.NoError(t, c.Add(ctx, catalog.BuildTemplate(kolobok, "хз", "сказка", 1000), 3))
	require.NoError(t, c.Add(ctx, catalog.BuildTemplate(unicorn, "дипсик", "какао", 5000), 1))
	_, errBorrowK1 := c.Borrow(ctx, kolobok)
	_, errBorrowK2 := c.Borrow(ctx, kolobok)
	_, errReturnK := c.Return(ctx, kolobok)
	_, errBorrowU1 := c.Borrow(ctx, unicorn)
	_, errBorrowU2 := c.Borrow(ctx, unicorn)

	// assert
	assert.NoError(t, errBorrowK1)
	assert.NoError(t, errBorrowK2)
	assert.NoError(t, errReturnK)
	assert.NoError(t, errBorrowU1)
	assert.ErrorIs(t, errBorrowU2, catalog.ErrNotFoundOrNotAvailable)

	assert.Equal(t,
		"3 copies of колобок added to the library.\n"+
			"1 copies of боевой единорог added to the library.\n"+
			"Book 'колобок' has been borrowed.\n"+
			"Book 'колобок' has been borrowed.\n"+
			"Book 'колобок' is now available.\n"+
			"Book 'боевой единорог' has been borrowed.\n"+
			"Book 'боевой единорог' not found or not available.\n",
		out.String(),
	)

	available := 0
	for _, entry := range c.Entries() {
		if entry.Available {
			available++
		}
	}
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 2, available)
}

func Test_Catalog_ExhaustingAndRestockingTwoTitles(t *testing.T) {
	// arrange
	var out bytes.Buffer
	c := newCatalog(t, catalog.WithTranscript(&out))
	givenCopies(t, c, kolobok, 3)
	givenCopies(t, c, unicorn, 1)
	out.Reset()
	ctx := context.Background()

	// act
	for range 3 {
		_, err := c.Borrow(ctx, kolobok)
		require.NoError(t, err)
	}
	_, errFourthKolobok := c.Borrow(ctx, kolobok)
	_, errFirstUnicorn := c.Borrow(ctx, unicorn)
	_, errSecondUnicorn := c.Borrow(ctx, unicorn)
	returned, errReturn := c.Return(ctx, kolobok)
	reborrowed, errReborrow := c.Borrow(ctx, kolobok)

	// assert
	assert.ErrorIs(t, errFourthKolobok, catalog.ErrNotFoundOrNotAvailable)
	assert.NoError(t, errFirstUnicorn)
	assert.ErrorIs(t, errSecondUnicorn, catalog.ErrNotFoundOrNotAvailable)
	require.NoError(t, errReturn)
	require.NoError(t, errReborrow)
	assert.Equal(t, c.Entries()[0].ID, returned.ID)
	assert.Equal(t, returned.ID, reborrowed.ID)

	assert.Equal(t,
		"Book 'колобок' has been borrowed.\n"+
			"Book 'колобок' has been borrowed.\n"+
			"Book 'колобок' has been borrowed.\n"+
			"Book 'колобок' not found or not available.\n"+
			"Book 'боевой единорог' has been borrowed.\n"+
			"Book 'боевой единорог' not found or not available.\n"+
			"Book 'колобок' is now available.\n"+
			"Book 'колобок' has been borrowed.\n",
		out.String(),
	)

	for _, entry := range c.Entries() {
		assert.False(t, entry.Available)
	}
}

func Test_History_RecordsEveryOutcomeInOrder(t *testing.T) {
	// arrange
	c := newCatalog(t)
	ctx := context.Background()
	givenCopies(t, c, kolobok, 2)

	// act
	_, _ = c.Borrow(ctx, kolobok)
	_, _ = c.Return(ctx, kolobok)
	_, _ = c.Return(ctx, kolobok)
	_, _ = c.Borrow(ctx, neverHad)

	// assert
	history := c.History()
	require.Len(t, history, 6)

	wantTypes := []string{
		catalog.CopyAddedToCatalogEventType,
		catalog.CopyAddedToCatalogEventType,
		catalog.CopyBorrowedEventType,
		catalog.CopyReturnedEventType,
		catalog.ReturningCopyFailedEventType,
		catalog.BorrowingCopyFailedEventType,
	}
	for i, event := range history {
		assert.Equal(t, wantTypes[i], event.IsEventType())
		assert.Equal(t, fakeClock, event.HasOccurredAt())
	}

	assert.False(t, history[2].IsErrorEvent())
	assert.True(t, history[4].IsErrorEvent())

	entries := c.Entries()
	borrowed, ok := history[2].(catalog.CopyBorrowed)
	require.True(t, ok)
	assert.Equal(t, entries[0].ID.String(), borrowed.EntryID)

	returnFailed, ok := history[4].(catalog.ReturningCopyFailed)
	require.True(t, ok)
	assert.Equal(t, "no copy of this title is borrowed", returnFailed.FailureInfo)

	borrowFailed, ok := history[5].(catalog.BorrowingCopyFailed)
	require.True(t, ok)
	assert.Equal(t, neverHad, borrowFailed.Title)
	assert.Equal(t, "title unknown", borrowFailed.FailureInfo)
}

func Test_Catalog_ConcurrentBorrowsNeverHandOutACopyTwice(t *testing.T) {
	// arrange
	c := newCatalog(t)
	givenCopies(t, c, kolobok, 10)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded = map[string]int{}
		failed    int
	)

	// act
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			entry, err := c.Borrow(context.Background(), kolobok)

			mu.Lock()
			defer mu.Unlock()
			if errors.Is(err, catalog.ErrNotFoundOrNotAvailable) {
				failed++
				return
			}
			succeeded[entry.ID.String()]++
		}()
	}
	wg.Wait()

	// assert
	assert.Len(t, succeeded, 10)
	for id, times := range succeeded {
		assert.Equal(t, 1, times, "copy %s was borrowed more than once", id)
	}
	assert.Equal(t, 15, failed)
}

func Test_Observability_WithLogger_LogsOperations(t *testing.T) {
	// arrange
	handler := NewLogHandlerSpy(false)
	c := newCatalog(t, catalog.WithLogger(slog.New(handler)))
	ctx := context.Background()

	// act
	givenCopies(t, c, kolobok, 1)
	_, _ = c.Borrow(ctx, kolobok)
	_, _ = c.Borrow(ctx, kolobok)
	_, _ = c.Return(ctx, neverHad)
	_ = c.Add(ctx, catalog.BuildTemplate(kolobok, "хз", "сказка", 1000), -1)

	// assert
	assert.True(t, handler.HasLogWithAttr(slog.LevelInfo, catalog.LogMsgCopiesAdded, catalog.LogAttrCount, "1"))
	assert.True(t, handler.HasLogWithAttr(slog.LevelInfo, catalog.LogMsgCopyBorrowed, catalog.LogAttrTitle, kolobok))
	assert.True(t, handler.HasLogWithAttr(slog.LevelWarn, catalog.LogMsgBorrowFailed, catalog.LogAttrFailureInfo,
		"no copy of this title is on the shelf"))
	assert.True(t, handler.HasLogWithAttr(slog.LevelWarn, catalog.LogMsgReturnFailed, catalog.LogAttrFailureInfo, "title unknown"))
	assert.True(t, handler.HasLog(slog.LevelError, catalog.LogMsgAddRejected))
	assert.Equal(t, 5, handler.GetRecordCount())
}

func Test_Observability_ContextualLoggerTakesPrecedence(t *testing.T) {
	// arrange
	handler := NewLogHandlerSpy(false)
	contextual := NewContextualLoggerSpy(true)
	c := newCatalog(t,
		catalog.WithLogger(slog.New(handler)),
		catalog.WithContextualLogger(contextual),
	)

	// act
	givenCopies(t, c, kolobok, 2)

	// assert
	assert.Equal(t, 0, handler.GetRecordCount())
	require.Len(t, contextual.GetRecords("info"), 1)

	count, ok := contextual.GetRecords("info")[0].Arg(catalog.LogAttrCount)
	assert.True(t, ok)
	assert.Equal(t, 2, count)
}

func Test_Observability_WithMetrics_RecordsOperationsAndGauges(t *testing.T) {
	// arrange
	metrics := NewMetricsCollectorSpy(true)
	c := newCatalog(t, catalog.WithMetrics(metrics))
	ctx := context.Background()

	// act
	givenCopies(t, c, kolobok, 3)
	_, _ = c.Borrow(ctx, kolobok)
	_, _ = c.Borrow(ctx, neverHad)
	_ = c.Add(ctx, catalog.BuildTemplate("", "", "", 0), 1)

	// assert
	assert.True(t, metrics.HasCounterRecordForMetric(catalog.MetricOperationCalls).
		WithOperation("add").WithStatus(catalog.StatusSuccess).Assert())
	assert.True(t, metrics.HasCounterRecordForMetric(catalog.MetricOperationCalls).
		WithOperation("borrow").WithStatus(catalog.StatusSuccess).Assert())
	assert.True(t, metrics.HasCounterRecordForMetric(catalog.MetricOperationCalls).
		WithOperation("borrow").WithStatus(catalog.StatusNotFound).Assert())
	assert.True(t, metrics.HasCounterRecordForMetric(catalog.MetricOperationCalls).
		WithOperation("add").WithStatus(catalog.StatusInvalid).Assert())
	assert.True(t, metrics.HasDurationRecordForMetric(catalog.MetricOperationDuration).
		WithOperation("borrow").Assert())
	assert.Equal(t, 4, metrics.CountCounterRecordsForMetric(catalog.MetricOperationCalls))

	total, ok := metrics.LastValue(catalog.MetricCopiesTotal)
	require.True(t, ok)
	assert.InDelta(t, 3.0, total, 0.0001)

	available, ok := metrics.LastValue(catalog.MetricCopiesAvailable)
	require.True(t, ok)
	assert.InDelta(t, 2.0, available, 0.0001)
}

func Test_Observability_WithTracing_OpensOneSpanPerOperation(t *testing.T) {
	// arrange
	tracing := NewTracingCollectorSpy(true)
	c := newCatalog(t, catalog.WithTracing(tracing))
	ctx := context.Background()

	// act
	givenCopies(t, c, kolobok, 1)
	_, _ = c.Return(ctx, kolobok)

	// assert
	spans := tracing.GetSpanRecords()
	require.Len(t, spans, 2)
	for _, span := range spans {
		assert.True(t, span.Finished)
	}

	assert.True(t, tracing.HasSpanRecordForName(catalog.SpanNameAdd).
		WithStatus("success").
		WithStartAttribute(catalog.LogAttrTitle, kolobok).
		WithEndAttribute(catalog.LogAttrStatus, catalog.StatusSuccess).
		Assert())
	assert.True(t, tracing.HasSpanRecordForName(catalog.SpanNameReturn).
		WithStatus("error").
		WithEndAttribute(catalog.LogAttrStatus, catalog.StatusNotFound).
		Assert())
	assert.Contains(t, spans[1].EndAttributes[catalog.LogAttrError], catalog.ErrNotFoundOrNotBorrowed.Error())
}
