package queries

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// CountOrdersByStatusQueryHandler aggregates order counts per status.
type CountOrdersByStatusQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewCountOrdersByStatusQueryHandler creates a handler for statistics queries.
func NewCountOrdersByStatusQueryHandler(orderRepo ports.OrderRepository) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{orderRepo: orderRepo}
}

// Handle reads the total from the store and counts orders per status over a
// snapshot of it.
func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (CountOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CountOrdersByStatusQueryResponse{}, err
	}

	total, err := h.orderRepo.Count(ctx)
	if err != nil {
		return CountOrdersByStatusQueryResponse{}, err
	}

	orders, err := h.orderRepo.List(ctx)
	if err != nil {
		return CountOrdersByStatusQueryResponse{}, err
	}

	resp := CountOrdersByStatusQueryResponse{
		Total:    total,
		ByStatus: make(map[order.Status]int, len(order.Statuses())),
	}
	for _, s := range order.Statuses() {
		resp.ByStatus[s] = 0
	}
	for _, o := range orders {
		resp.ByStatus[o.Status()]++
	}

	return resp, nil
}
