package orderrepo

import (
	"context"
	"testing"

	"ordertracker/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertIndexesInSync checks that the slice and the id index hold the very
// same order values.
func assertIndexesInSync(t *testing.T, r *MemoryOrderRepository) {
	t.Helper()

	r.mu.RLock()
	defer r.mu.RUnlock()

	require.Len(t, r.byID, len(r.orders))
	for _, o := range r.orders {
		indexed, ok := r.byID[o.ID()]
		require.True(t, ok, "order %d missing from index", o.ID())
		assert.Same(t, o, indexed)
	}
}

func TestIndexesStayInSync(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryOrderRepository()
	assertIndexesInSync(t, r)

	_, err := r.Create(ctx, "created", order.Processing)
	require.NoError(t, err)
	assertIndexesInSync(t, r)

	status := order.InTransit
	_, err = r.Update(ctx, 2, order.Patch{Status: &status})
	require.NoError(t, err)
	assertIndexesInSync(t, r)

	_, err = r.Update(ctx, 42, order.Patch{Status: &status})
	require.Error(t, err)
	assertIndexesInSync(t, r)

	assert.Equal(t, int64(3), r.nextID)
}
