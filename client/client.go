package client

import (
	"context"
	"time"
)

// EntryKind identifies a performance-timeline entry family.
type EntryKind string

const (
	EntryNavigation  EntryKind = "navigation"
	EntryResource    EntryKind = "resource"
	EntryPaint       EntryKind = "paint"
	EntryFirstInput  EntryKind = "first-input"
	EntryLayoutShift EntryKind = "layout-shift"
	EntryLongTask    EntryKind = "longtask"
)

// BatchConfig bounds how long entries accumulate before a flush.
type BatchConfig struct {
	// MaxEntries flushes the batch once this many entries are buffered.
	MaxEntries int

	// FlushInterval flushes whatever is buffered on this cadence.
	FlushInterval time.Duration
}

// Collector is implemented by browser-side collectors. Implementations
// observe performance-timeline entries plus page error and rejection
// events, batch them per BatchConfig, and ship them to an ingestion
// endpoint.
type Collector interface {
	// Metrics returns the current batched entries and derived summaries
	// without draining them.
	Metrics(ctx context.Context) (map[string]any, error)

	// Flush drains the batch to the ingestion endpoint.
	Flush(ctx context.Context) error

	// ClearBatch discards buffered entries without shipping them.
	ClearBatch()

	// Dispose detaches all observers and timers. The collector is
	// unusable afterwards.
	Dispose() error
}
