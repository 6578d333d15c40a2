package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statflow-lab/project-statflow/internal/core/storage"
)

// The adapter must satisfy the cold store contract and expose a context-aware
// Close for shutdown wiring in main.
var _ interface {
	storage.ColdStore
	Close(ctx context.Context) error
} = (*Adapter)(nil)

func TestBulkUpsert_EmptyBatchIsNoOp(t *testing.T) {
	// An empty batch must short-circuit before any driver call, so a zero
	// adapter is enough.
	var a Adapter

	res, err := a.BulkUpsert(context.Background(), nil)
	require.NoError(t, err)
	require.Zero(t, res.Upserted)
	require.Zero(t, res.Modified)
}
