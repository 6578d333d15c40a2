package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/statflow-lab/project-statflow/internal/core/stats"
	"github.com/statflow-lab/project-statflow/internal/core/storage"
)

const connectPingTimeout = 5 * time.Second

// Adapter implements storage.HotStore on Redis. The queue is a list consumed
// with BRPOP, totals are hashes mutated with HINCRBYFLOAT, and enumeration uses
// SCAN so an archive cycle never blocks other traffic.
type Adapter struct {
	client *redis.Client
	queue  string
}

// NewAdapter connects to Redis and verifies the connection before returning.
//
// Example addr: "localhost:6379".
func NewAdapter(addr, password string, db, poolSize int) (*Adapter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: poolSize,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), connectPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("[Redis] Connected", "addr", addr, "db", db, "pool_size", poolSize)

	return &Adapter{client: client, queue: stats.QueueName}, nil
}

// NewAdapterWithClient wraps an existing client. Used by tests running against
// an in-process server.
func NewAdapterWithClient(client *redis.Client) *Adapter {
	return &Adapter{client: client, queue: stats.QueueName}
}

func (a *Adapter) EnqueueTransaction(ctx context.Context, payload []byte) error {
	if err := a.client.LPush(ctx, a.queue, payload).Err(); err != nil {
		return fmt.Errorf("lpush %s: %w", a.queue, err)
	}
	return nil
}

func (a *Adapter) PopTransaction(ctx context.Context, timeout time.Duration) ([]byte, error) {
	// BRPOP returns [queue, value] or redis.Nil when the wait elapses empty.
	res, err := a.client.BRPop(ctx, timeout, a.queue).Result()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNoMessage
	}
	if err != nil {
		return nil, fmt.Errorf("brpop %s: %w", a.queue, err)
	}
	if len(res) != 2 {
		return nil, fmt.Errorf("brpop %s: unexpected reply of %d elements", a.queue, len(res))
	}
	return []byte(res[1]), nil
}

func (a *Adapter) IncrementTotal(ctx context.Context, key, method string, delta float64) error {
	if err := a.client.HIncrByFloat(ctx, key, method, delta).Err(); err != nil {
		return fmt.Errorf("hincrbyfloat %s %s: %w", key, method, err)
	}
	return nil
}

func (a *Adapter) ReadTotals(ctx context.Context, key string) (map[string]string, error) {
	totals, err := a.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", key, err)
	}
	return totals, nil
}

func (a *Adapter) ScanKeys(ctx context.Context, cursor uint64, pattern string, count int64) (uint64, []string, error) {
	keys, next, err := a.client.Scan(ctx, cursor, pattern, count).Result()
	if err != nil {
		return 0, nil, fmt.Errorf("scan %q: %w", pattern, err)
	}
	return next, keys, nil
}

func (a *Adapter) DeleteKeys(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := a.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("del %d keys: %w", len(keys), err)
	}
	return nil
}

func (a *Adapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (a *Adapter) Close() error {
	return a.client.Close()
}
