package commands

import (
	"errors"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new order.
//
// Example:
//
//	payload, err := order.ParseCreatePayload(body)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewCreateOrderCommand(payload.Title, payload.Status)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	title  string
	status order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command for a new order. The status must be
// valid; the title is taken as is.
func NewCreateOrderCommand(title string, status order.Status) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		title: title,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setStatus(status); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Title returns the order title.
func (c CreateOrderCommand) Title() string {
	return c.title
}

// Status returns the initial order status.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
