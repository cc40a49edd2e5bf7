package commands

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// CreateOrderCommandHandler stores new orders. The repository assigns the id.
type CreateOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(orderRepo ports.OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepo: orderRepo,
	}
}

// Handle validates the command and returns the stored order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepo.Create(ctx, cmd.Title(), cmd.Status())
}
