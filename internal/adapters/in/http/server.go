package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	msgNotFound       = "Not Found"
	msgInvalidPayload = "Invalid Payload"
	msgInternalError  = "Internal Server Error"
)

// Server serves the orders API. It coordinates between HTTP handlers and
// application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler

	// Query handlers
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getOrderHandler     queries.GetOrderQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		updateOrderHandler:  updateOrderHandler,
		getAllOrdersHandler: getAllOrdersHandler,
		getOrderHandler:     getOrderHandler,
		logger:              logger.With("component", "http_server"),
	}
}

// Order is the wire representation of an order.
type Order struct {
	ID     int64        `json:"id"`
	Title  string       `json:"title"`
	Status order.Status `json:"status"`
}

// Error is the body of every failed request.
type Error struct {
	Error string `json:"error"`
}

func toOrder(o *order.Order) Order {
	return Order{ID: o.ID(), Title: o.Title(), Status: o.Status()}
}

// ListOrders handles GET /api/orders - retrieves all orders in insertion order.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, ok := parseOrderID(ctx.Param("id"))
	if !ok {
		return ctx.JSON(http.StatusNotFound, Error{Error: msgNotFound})
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// CreateOrder handles POST /api/orders - creates a new order from {title, status}.
func (s *Server) CreateOrder(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Error: msgInvalidPayload})
	}

	payload, err := order.ParseCreatePayload(body)
	if err != nil {
		s.logger.DebugContext(ctx.Request().Context(), "create payload rejected", "error", err)
		return ctx.JSON(http.StatusBadRequest, Error{Error: msgInvalidPayload})
	}

	cmd, err := commands.NewCreateOrderCommand(payload.Title, payload.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.logger.InfoContext(ctx.Request().Context(), "order created", "id", created.ID(), "status", created.Status())
	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// UpdateOrder handles PUT /api/orders/:id - partially updates an order.
// An unknown id is reported before the payload is looked at.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, ok := parseOrderID(ctx.Param("id"))
	if !ok {
		return ctx.JSON(http.StatusNotFound, Error{Error: msgNotFound})
	}

	if _, err := s.getOrderHandler.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(id)); err != nil {
		return s.fail(ctx, err)
	}

	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Error: msgInvalidPayload})
	}

	payload, err := order.ParseUpdatePayload(body)
	if err != nil {
		s.logger.DebugContext(ctx.Request().Context(), "update payload rejected", "id", id, "error", err)
		return ctx.JSON(http.StatusBadRequest, Error{Error: msgInvalidPayload})
	}

	cmd, err := commands.NewUpdateOrderCommand(id, payload.Patch())
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.logger.InfoContext(ctx.Request().Context(), "order updated", "id", updated.ID(), "status", updated.Status())
	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// fail maps use case errors onto the two client error bodies. Anything else
// is logged and reported as a 500.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{Error: msgNotFound})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{Error: msgInvalidPayload})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{Error: msgInternalError})
	}
}
