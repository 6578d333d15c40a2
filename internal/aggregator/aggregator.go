package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/statflow-lab/project-statflow/internal/core/stats"
	"github.com/statflow-lab/project-statflow/internal/core/storage"
)

const (
	defaultPopTimeout   = time.Second
	defaultErrorBackoff = time.Second
)

// Consumer is the long-lived loop that drains the ingestion queue and folds
// each transaction into its hot aggregate. One failed message degrades to a
// skip, one failed store call degrades to a backoff; the loop itself only ever
// exits on context cancellation.
type Consumer struct {
	hot          storage.HotStore
	popTimeout   time.Duration
	errorBackoff time.Duration
}

// New creates a queue consumer. Non-positive durations fall back to defaults.
func New(hot storage.HotStore, popTimeout, errorBackoff time.Duration) *Consumer {
	if popTimeout <= 0 {
		popTimeout = defaultPopTimeout
	}
	if errorBackoff <= 0 {
		errorBackoff = defaultErrorBackoff
	}
	return &Consumer{
		hot:          hot,
		popTimeout:   popTimeout,
		errorBackoff: errorBackoff,
	}
}

// Start consumes the queue until ctx is cancelled. The bounded pop wait is the
// cancellation check point: an empty timeout loops straight back here, and an
// in-flight record is still applied after a stop signal (stop-before-next-
// dequeue, never abort-current-work).
func (c *Consumer) Start(ctx context.Context) error {
	slog.Info("[Aggregator] Starting queue consumer",
		"queue", stats.QueueName,
		"pop_timeout", c.popTimeout,
	)

	for {
		select {
		case <-ctx.Done():
			slog.Info("[Aggregator] Stopping (context cancelled)")
			return nil
		default:
		}

		payload, err := c.hot.PopTransaction(ctx, c.popTimeout)
		if errors.Is(err, storage.ErrNoMessage) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				slog.Info("[Aggregator] Stopping (context cancelled)")
				return nil
			}
			slog.Error("[Aggregator] Queue pop failed", "error", err)
			c.pause(ctx)
			continue
		}

		if err := c.apply(ctx, payload); err != nil {
			c.pause(ctx)
		}
	}
}

// apply decodes one queue payload and issues its atomic increment.
func (c *Consumer) apply(ctx context.Context, payload []byte) error {
	var tx stats.Transaction
	if err := json.Unmarshal(payload, &tx); err != nil {
		// A malformed message must not stop ingestion: drop it and move on.
		slog.Error("[Aggregator] Dropping undecodable message", "error", err, "payload_size", len(payload))
		return err
	}
	if err := tx.Validate(); err != nil {
		slog.Error("[Aggregator] Dropping invalid record", "error", err)
		return err
	}

	day, _ := tx.Day() // validated above
	key := stats.AggregateKey(day, tx.Type)

	if err := c.hot.IncrementTotal(ctx, key, tx.PaymentMethod, tx.Amount); err != nil {
		// The popped record is lost here: effective delivery is at-most-once.
		slog.Error("[Aggregator] Increment failed", "error", err, "key", key, "method", tx.PaymentMethod)
		return err
	}

	slog.Debug("[Aggregator] Applied increment",
		"key", key,
		"method", tx.PaymentMethod,
		"amount", tx.Amount,
	)
	return nil
}

func (c *Consumer) pause(ctx context.Context) {
	select {
	case <-time.After(c.errorBackoff):
	case <-ctx.Done():
	}
}
