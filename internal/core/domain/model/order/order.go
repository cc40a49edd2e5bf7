package order

import (
	"errors"
	"fmt"

	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a tracked order. It has no setters: every change produces a new
// value through Apply, so a pointer to an Order can be shared freely between
// the store's ordered list and its id index.
type Order struct {
	id     int64
	title  string
	status Status

	guard guard.ConstructorGuard
}

// NewOrder creates an Order after checking that id is non-negative and the
// status is valid. The title is taken as is; an empty title is allowed.
//
// Example:
//
//	o, err := order.NewOrder(2, "New", order.Processing)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id int64, title string, status Status) (*Order, error) {
	o := &Order{
		title: title,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created by NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the store-assigned identifier.
func (o *Order) ID() int64 {
	return o.id
}

// Title returns the order title.
func (o *Order) Title() string {
	return o.title
}

// Status returns the current status.
func (o *Order) Status() Status {
	return o.status
}

// Apply returns a copy of the order with the patch merged in. A field is
// overwritten only when the patch carries a non-empty value for it, so an
// explicit empty title leaves the current title untouched.
func (o *Order) Apply(p Patch) *Order {
	next := *o
	if p.Title != nil && *p.Title != "" {
		next.title = *p.Title
	}
	if p.Status != nil && *p.Status != "" {
		next.status = *p.Status
	}
	return &next
}

func (o *Order) setID(id int64) error {
	if id < 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is negative", id))
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// Patch is a partial update. Nil fields are left alone.
type Patch struct {
	Title  *string
	Status *Status
}

// Validate rejects a patch whose status is set to something outside the enum.
// An empty status is not an error; Apply simply ignores it.
func (p Patch) Validate() error {
	if p.Status != nil && *p.Status != "" {
		return p.Status.Validate()
	}
	return nil
}
