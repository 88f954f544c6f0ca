package catalog

import (
	"context"
	"math"
	"strconv"
	"time"
)

const (
	operationAdd    = "add"
	operationBorrow = "borrow"
	operationReturn = "return"

	// StatusSuccess labels an operation that changed the catalog (or a valid no-op Add).
	StatusSuccess = "success"
	// StatusNotFound labels a Borrow or Return that found no eligible copy.
	StatusNotFound = "not_found"
	// StatusInvalid labels an Add with rejected input.
	StatusInvalid = "invalid"

	// MetricOperationDuration is a histogram of operation durations in seconds.
	MetricOperationDuration = "catalog_operation_duration_seconds"
	// MetricOperationCalls counts operations by operation and status.
	MetricOperationCalls = "catalog_operation_calls_total"
	// MetricCopiesTotal is a gauge of all copies in the catalog.
	MetricCopiesTotal = "catalog_copies_total"
	// MetricCopiesAvailable is a gauge of the copies currently on the shelf.
	MetricCopiesAvailable = "catalog_copies_available"

	SpanNameAdd    = "catalog.add"
	SpanNameBorrow = "catalog.borrow"
	SpanNameReturn = "catalog.return"

	LogMsgCopiesAdded  = "copies added to catalog"
	LogMsgCopyBorrowed = "copy borrowed"
	LogMsgCopyReturned = "copy returned"
	LogMsgBorrowFailed = "borrowing copy failed"
	LogMsgReturnFailed = "returning copy failed"
	LogMsgAddRejected  = "adding copies rejected"

	LogAttrOperation   = "operation"
	LogAttrTitle       = "title"
	LogAttrCount       = "count"
	LogAttrEntryID     = "entry_id"
	LogAttrStatus      = "status"
	LogAttrDurationMS  = "duration_ms"
	LogAttrError       = "error"
	LogAttrFailureInfo = "failure_info"
)

var spanNames = map[string]string{
	operationAdd:    SpanNameAdd,
	operationBorrow: SpanNameBorrow,
	operationReturn: SpanNameReturn,
}

// startSpan starts a span for the operation if a tracing collector is configured.
func (c *Catalog) startSpan(ctx context.Context, operation, title string) (context.Context, SpanContext) {
	if c.tracingCollector == nil {
		return ctx, nil
	}

	return c.tracingCollector.StartSpan(ctx, spanNames[operation], map[string]string{
		LogAttrOperation: operation,
		LogAttrTitle:     title,
	})
}

// finishSpan finishes the span with the operation status if tracing is active.
func (c *Catalog) finishSpan(span SpanContext, status string, duration time.Duration, err error) {
	if c.tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: strconv.FormatFloat(toMilliseconds(duration), 'f', 3, 64),
	}

	spanStatus := "success"
	if err != nil {
		spanStatus = "error"
		attrs[LogAttrError] = err.Error()
	}

	c.tracingCollector.FinishSpan(span, spanStatus, attrs)
}

// recordOperationMetrics records the duration and the call counter of an operation.
func (c *Catalog) recordOperationMetrics(ctx context.Context, operation, status string, duration time.Duration) {
	if c.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		LogAttrOperation: operation,
		LogAttrStatus:    status,
	}

	if contextual, ok := c.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, MetricOperationDuration, duration, labels)
		contextual.IncrementCounterContext(ctx, MetricOperationCalls, labels)
		return
	}

	c.metricsCollector.RecordDuration(MetricOperationDuration, duration, labels)
	c.metricsCollector.IncrementCounter(MetricOperationCalls, labels)
}

// recordCopyGauges records the current number of copies. Must be called with c.mu held.
func (c *Catalog) recordCopyGauges(ctx context.Context) {
	if c.metricsCollector == nil {
		return
	}

	available := 0
	for _, entry := range c.entries {
		if entry.Available {
			available++
		}
	}

	labels := map[string]string{}

	if contextual, ok := c.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.RecordValueContext(ctx, MetricCopiesTotal, float64(len(c.entries)), labels)
		contextual.RecordValueContext(ctx, MetricCopiesAvailable, float64(available), labels)
		return
	}

	c.metricsCollector.RecordValue(MetricCopiesTotal, float64(len(c.entries)), labels)
	c.metricsCollector.RecordValue(MetricCopiesAvailable, float64(available), labels)
}

func (c *Catalog) logInfo(ctx context.Context, msg string, args ...any) {
	if c.contextualLogger != nil {
		c.contextualLogger.InfoContext(ctx, msg, args...)
	} else if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}

func (c *Catalog) logWarn(ctx context.Context, msg string, args ...any) {
	if c.contextualLogger != nil {
		c.contextualLogger.WarnContext(ctx, msg, args...)
	} else if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}

func (c *Catalog) logError(ctx context.Context, msg string, err error, args ...any) {
	allArgs := append([]any{LogAttrError, err.Error()}, args...)

	if c.contextualLogger != nil {
		c.contextualLogger.ErrorContext(ctx, msg, allArgs...)
	} else if c.logger != nil {
		c.logger.Error(msg, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
