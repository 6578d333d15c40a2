package storage

import (
	"context"
	"errors"
	"time"

	"github.com/statflow-lab/project-statflow/internal/core/stats"
)

// ErrNoMessage is returned by PopTransaction when the bounded wait elapses with
// nothing on the queue. It is the loop's liveness check point, not a failure.
var ErrNoMessage = errors.New("no message available")

// HotStore is the volatile tier: the ingestion queue plus the per-(day, type)
// running totals. All of its mutating primitives are atomic server-side, which
// makes them the only synchronization the aggregator and archiver share.
type HotStore interface {
	// EnqueueTransaction pushes a serialized transaction record onto the
	// ingestion queue. Producer side of PopTransaction.
	EnqueueTransaction(ctx context.Context, payload []byte) error

	// PopTransaction blocks up to timeout for the next queued record.
	// Returns ErrNoMessage when the wait elapses empty. Delivery is
	// at-least-once at the primitive level; a record popped but lost before
	// its increment lands is not redelivered.
	PopTransaction(ctx context.Context, timeout time.Duration) ([]byte, error)

	// IncrementTotal atomically adds delta to the method field of the given
	// aggregate key's hash, creating key and field as needed.
	IncrementTotal(ctx context.Context, key, method string, delta float64) error

	// ReadTotals returns every field of the key's hash with string-typed
	// values, exactly as the store holds them. An absent key yields an empty
	// map, not an error.
	ReadTotals(ctx context.Context, key string) (map[string]string, error)

	// ScanKeys advances one page of a resumable, non-blocking enumeration of
	// keys matching pattern. A returned cursor of 0 means the enumeration is
	// complete; callers must keep paging until then and may never assume a
	// single page covers the key space.
	ScanKeys(ctx context.Context, cursor uint64, pattern string, count int64) (uint64, []string, error)

	// DeleteKeys removes the given keys in one batched call. Missing keys
	// are ignored.
	DeleteKeys(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}

// BulkUpsertResult reports what one archive cycle's bulk write did.
type BulkUpsertResult struct {
	Upserted int64
	Modified int64
}

// ColdStore is the durable tier for aged aggregates.
//
// Contract: BulkUpsert is idempotent last-write-wins by record ID. Re-running a
// cycle without new increments produces identical durable state, which is what
// lets the archiver retry a whole cycle after any partial failure.
type ColdStore interface {
	// BulkUpsert writes every record in one batched round trip, creating
	// absent IDs and replacing the totals of present ones.
	BulkUpsert(ctx context.Context, records []stats.DurableAggregate) (BulkUpsertResult, error)

	// FindByDate returns all durable records for one calendar day, possibly
	// none. Several records share a date when multiple types were archived.
	FindByDate(ctx context.Context, day string) ([]stats.DurableAggregate, error)

	Ping(ctx context.Context) error
}
