package commands

import (
	"errors"
	"fmt"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a partial update of an existing order.
// Only non-empty fields of the patch are applied.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	patch   order.Patch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an update command. The id must be
// non-negative and a status in the patch, if set, must be valid.
func NewUpdateOrderCommand(orderID int64, patch order.Patch) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Patch returns the fields to merge.
func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID < 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is negative", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setPatch(patch order.Patch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	c.patch = patch
	return nil
}
