package ports

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
)

// OrderRepository is the authoritative holder of orders. It owns identifier
// assignment and keeps the insertion order of orders.
type OrderRepository interface {
	// List returns every order in insertion order.
	List(ctx context.Context) ([]*order.Order, error)

	// Get returns the order with the given id or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Create allocates the next id, stores a new order and returns it.
	Create(ctx context.Context, title string, status order.Status) (*order.Order, error)

	// Update merges the patch into the stored order and returns the new value.
	// Returns an errs.ObjectNotFoundError, leaving the store untouched, when
	// no order has the id.
	Update(ctx context.Context, id int64, patch order.Patch) (*order.Order, error)

	// Count returns the number of stored orders.
	Count(ctx context.Context) (int, error)
}
