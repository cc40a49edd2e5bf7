package commands

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// UpdateOrderCommandHandler applies partial updates to stored orders.
type UpdateOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(orderRepo ports.OrderRepository) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		orderRepo: orderRepo,
	}
}

// Handle validates the command and returns the updated order, or an
// errs.ObjectNotFoundError when the id is unknown.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepo.Update(ctx, cmd.OrderID(), cmd.Patch())
}
