package archiver

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/statflow-lab/project-statflow/internal/core/stats"
	"github.com/statflow-lab/project-statflow/internal/core/storage"
)

const (
	defaultInterval     = 10 * time.Second
	defaultScanPageSize = 100
)

// Archiver migrates hot aggregates into the cold store on a fixed interval and
// evicts the ones that have aged out of the retention window. Every cycle is
// idempotent end to end (upsert-by-key, then delete), so a failed cycle is
// simply retried wholesale on the next tick.
type Archiver struct {
	hot           storage.HotStore
	cold          storage.ColdStore
	interval      time.Duration
	scanPageSize  int64
	retentionDays int
	nowFn         func() time.Time
}

// New creates an archiver. Non-positive settings fall back to defaults.
func New(hot storage.HotStore, cold storage.ColdStore, interval time.Duration, scanPageSize int64, retentionDays int) *Archiver {
	if interval <= 0 {
		interval = defaultInterval
	}
	if scanPageSize <= 0 {
		scanPageSize = defaultScanPageSize
	}
	if retentionDays <= 0 {
		retentionDays = stats.DefaultRetentionDays
	}
	return &Archiver{
		hot:           hot,
		cold:          cold,
		interval:      interval,
		scanPageSize:  scanPageSize,
		retentionDays: retentionDays,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Start runs archive cycles until ctx is cancelled. The inter-cycle sleep is
// the only suspension point and the knob controlling staleness of the durable
// copy. A failed cycle is logged and the loop keeps going.
func (a *Archiver) Start(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	slog.Info("[Archiver] Starting archive loop",
		"interval", a.interval,
		"scan_page_size", a.scanPageSize,
		"retention_days", a.retentionDays,
	)

	for {
		select {
		case <-ctx.Done():
			slog.Info("[Archiver] Stopping (context cancelled)")
			return nil
		case <-ticker.C:
			if err := a.RunCycle(ctx); err != nil {
				if ctx.Err() != nil {
					slog.Info("[Archiver] Stopping (context cancelled)")
					return nil
				}
				slog.Error("[Archiver] Cycle failed", "error", err)
			}
		}
	}
}

// RunCycle performs one scan → convert → upsert → evict pass.
//
// Keys created or incremented after their page was scanned are not guaranteed
// to be captured this cycle; they stay hot-authoritative and are swept on the
// next one. Deletion is deferred until the bulk write has succeeded, and only
// covers keys whose day fell outside the retention window AND were captured in
// this cycle's snapshot.
func (a *Archiver) RunCycle(ctx context.Context) error {
	threshold := stats.Threshold(a.nowFn(), a.retentionDays)

	var (
		records []stats.DurableAggregate
		expired []string
		cursor  uint64
	)

	for {
		next, keys, err := a.hot.ScanKeys(ctx, cursor, stats.KeyPattern, a.scanPageSize)
		if err != nil {
			return fmt.Errorf("scan hot keys: %w", err)
		}

		for _, key := range keys {
			rec, ok, err := a.snapshotKey(ctx, key)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			records = append(records, rec)
			if !stats.IsHot(rec.Date, threshold) {
				expired = append(expired, rec.ID)
			}
		}

		if next == 0 {
			break
		}
		cursor = next
	}

	if len(records) == 0 {
		slog.Debug("[Archiver] Nothing to archive")
		return nil
	}

	res, err := a.cold.BulkUpsert(ctx, records)
	if err != nil {
		return fmt.Errorf("bulk upsert %d records: %w", len(records), err)
	}

	slog.Info("[Archiver] Durable sync complete",
		"records", len(records),
		"upserted", res.Upserted,
		"modified", res.Modified,
		"threshold", threshold,
	)

	if len(expired) > 0 {
		if err := a.hot.DeleteKeys(ctx, expired...); err != nil {
			// The upsert already landed; both halves rerun idempotently next cycle.
			return fmt.Errorf("evict %d expired keys: %w", len(expired), err)
		}
		slog.Info("[Archiver] Evicted expired keys", "count", len(expired), "threshold", threshold)
	}

	return nil
}

// snapshotKey reads one hot aggregate and converts it into its durable form.
// ok is false for keys the cycle should pass over: emptied hashes (a benign
// race with a concurrent delete) and keys or values that do not parse.
func (a *Archiver) snapshotKey(ctx context.Context, key string) (stats.DurableAggregate, bool, error) {
	totals, err := a.hot.ReadTotals(ctx, key)
	if err != nil {
		return stats.DurableAggregate{}, false, fmt.Errorf("read totals %s: %w", key, err)
	}
	if len(totals) == 0 {
		return stats.DurableAggregate{}, false, nil
	}

	day, _, err := stats.ParseAggregateKey(key)
	if err != nil {
		slog.Warn("[Archiver] Skipping unparsable key", "key", key, "error", err)
		return stats.DurableAggregate{}, false, nil
	}

	// The hot store holds totals as strings; the durable copy is numeric.
	numeric := make(map[string]float64, len(totals))
	for method, raw := range totals {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			slog.Warn("[Archiver] Skipping key with non-numeric total",
				"key", key, "method", method, "value", raw)
			return stats.DurableAggregate{}, false, nil
		}
		numeric[method] = value
	}

	return stats.DurableAggregate{ID: key, Totals: numeric, Date: day}, true, nil
}
