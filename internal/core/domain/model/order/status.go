package order

import (
	"fmt"

	"ordertracker/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The string value is the
// wire representation.
type Status string

const (
	// Processing is the status of a freshly accepted order.
	Processing Status = "PROCESSING"

	// InTransit indicates the order has left the warehouse.
	InTransit Status = "IN_TRANSIT"

	// Delivered is the final status.
	Delivered Status = "DELIVERED"
)

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Processing, InTransit, Delivered}
}

// Validate returns an errs.ValueIsInvalidError if s is not one of Statuses().
func (s Status) Validate() error {
	switch s {
	case Processing, InTransit, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// IsValidStatus reports whether v is non-nil and equal to one of the Status
// constants. Both Status and plain string values are accepted.
func IsValidStatus(v any) bool {
	switch s := v.(type) {
	case Status:
		return s.Validate() == nil
	case string:
		return Status(s).Validate() == nil
	case *Status:
		return s != nil && s.Validate() == nil
	case *string:
		return s != nil && Status(*s).Validate() == nil
	default:
		return false
	}
}
