package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/statflow-lab/project-statflow/internal/core/stats"
	"github.com/statflow-lab/project-statflow/internal/core/storage"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*Adapter, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewAdapterWithClient(client), srv
}

func TestQueueRoundTrip(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.EnqueueTransaction(ctx, []byte(`{"type":"deposit"}`)))

	payload, err := adapter.PopTransaction(ctx, time.Second)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"deposit"}`, string(payload))
}

func TestQueueIsFIFO(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.EnqueueTransaction(ctx, []byte("first")))
	require.NoError(t, adapter.EnqueueTransaction(ctx, []byte("second")))

	payload, err := adapter.PopTransaction(ctx, time.Second)
	require.NoError(t, err)
	require.Equal(t, "first", string(payload))

	payload, err = adapter.PopTransaction(ctx, time.Second)
	require.NoError(t, err)
	require.Equal(t, "second", string(payload))
}

func TestPopEmptyQueueReturnsErrNoMessage(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.PopTransaction(context.Background(), 10*time.Millisecond)
	require.ErrorIs(t, err, storage.ErrNoMessage)
}

func TestIncrementTotalSumsExactly(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()
	key := stats.AggregateKey("2026-01-10", "deposit")

	require.NoError(t, adapter.IncrementTotal(ctx, key, "visa", 100.0))
	require.NoError(t, adapter.IncrementTotal(ctx, key, "visa", 50.5))

	totals, err := adapter.ReadTotals(ctx, key)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"visa": "150.5"}, totals)
}

func TestIncrementTotalConcurrentCommutes(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()
	key := stats.AggregateKey("2026-01-10", "deposit")

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				require.NoError(t, adapter.IncrementTotal(ctx, key, "visa", 0.5))
			}
		}()
	}
	wg.Wait()

	totals, err := adapter.ReadTotals(ctx, key)
	require.NoError(t, err)
	require.Equal(t, "100", totals["visa"])
}

func TestReadTotalsMissingKeyIsEmpty(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	totals, err := adapter.ReadTotals(context.Background(), "stats:2099-01-01:deposit")
	require.NoError(t, err)
	require.Empty(t, totals)
}

func TestScanKeysPagesToCompletion(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	want := map[string]bool{}
	for _, day := range []string{"2026-01-08", "2026-01-09", "2026-01-10"} {
		for _, txType := range []string{"deposit", "withdrawal"} {
			key := stats.AggregateKey(day, txType)
			require.NoError(t, adapter.IncrementTotal(ctx, key, "visa", 1))
			want[key] = true
		}
	}
	// Unrelated key must not match the aggregate pattern.
	require.NoError(t, adapter.EnqueueTransaction(ctx, []byte("noise")))

	got := map[string]bool{}
	var cursor uint64
	for {
		next, keys, err := adapter.ScanKeys(ctx, cursor, stats.KeyPattern, 2)
		require.NoError(t, err)
		for _, k := range keys {
			got[k] = true
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	require.Equal(t, want, got)
}

func TestDeleteKeysBatch(t *testing.T) {
	adapter, srv := newTestAdapter(t)
	ctx := context.Background()

	old := stats.AggregateKey("2026-01-01", "deposit")
	recent := stats.AggregateKey("2026-01-10", "deposit")
	require.NoError(t, adapter.IncrementTotal(ctx, old, "visa", 1))
	require.NoError(t, adapter.IncrementTotal(ctx, recent, "visa", 1))

	require.NoError(t, adapter.DeleteKeys(ctx, old, "stats:2026-01-02:never-existed"))

	require.False(t, srv.Exists(old))
	require.True(t, srv.Exists(recent))

	// Deleting nothing is a no-op, not an error.
	require.NoError(t, adapter.DeleteKeys(ctx))
}
