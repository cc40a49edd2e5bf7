// Package orderrepo provides the in-memory order store. Orders live in an
// ordered slice and an id index that always hold the same set of values.
package orderrepo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
)

// firstID is the id handed to the first order created after the seeds.
const firstID int64 = 2

// MemoryOrderRepository implements ports.OrderRepository on top of a slice
// and a map guarded by one RWMutex.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []*order.Order
	byID   map[int64]*order.Order
	nextID int64
}

// NewMemoryOrderRepository returns a store seeded with the two example orders
// (ids 0 and 1). The next created order gets id 2.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	r := &MemoryOrderRepository{
		byID:   make(map[int64]*order.Order),
		nextID: firstID,
	}

	for _, seed := range []struct {
		id     int64
		title  string
		status order.Status
	}{
		{0, "First order", order.Processing},
		{1, "Second order", order.InTransit},
	} {
		o, err := order.NewOrder(seed.id, seed.title, seed.status)
		if err != nil {
			panic(fmt.Sprintf("orderrepo: invalid seed order %d: %v", seed.id, err))
		}
		r.orders = append(r.orders, o)
		r.byID[o.ID()] = o
	}

	return r
}

// List returns a copy of the ordered slice.
func (r *MemoryOrderRepository) List(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.orders), nil
}

// Get looks the order up in the id index.
func (r *MemoryOrderRepository) Get(_ context.Context, id int64) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

// Create allocates the next id and appends the new order to both indexes.
// The counter only advances when the order is valid.
func (r *MemoryOrderRepository) Create(_ context.Context, title string, status order.Status) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, err := order.NewOrder(r.nextID, title, status)
	if err != nil {
		return nil, err
	}
	r.nextID++

	r.orders = append(r.orders, o)
	r.byID[o.ID()] = o
	return o, nil
}

// Update replaces the slice slot and the index entry with the patched order.
// A missing id is reported before the patch is validated.
func (r *MemoryOrderRepository) Update(_ context.Context, id int64, patch order.Patch) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(r.orders, func(o *order.Order) bool { return o.ID() == id })
	if idx < 0 {
		return nil, errs.NewObjectNotFoundErrorWithCause("order", id, fmt.Errorf("id %d missing from ordered list", id))
	}

	updated := existing.Apply(patch)
	r.orders[idx] = updated
	r.byID[id] = updated
	return updated, nil
}

// Count returns the number of stored orders.
func (r *MemoryOrderRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders), nil
}
