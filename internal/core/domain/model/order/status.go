package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> InProgress ──> Delivered
//	   │            │
//	   └────────────┴────> Cancelled
//
// Transitions other than MarkReady are driven by the order's delivery.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status; the delivery is being prepared.
	Pending

	// InProgress means the order is on its way or was marked ready by a supplier.
	InProgress

	// Delivered is final: the delivery reached the customer.
	Delivered

	// Cancelled is final: the delivery was returned.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InProgress, Delivered, Cancelled}
}

// ParseStatus converts the persisted/query-string form into a Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not an order status", s),
	)
}

// Validate checks that s is one of Statuses().
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name used in storage, query strings and exports.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// MarkReady transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress
//   - InProgress -> InProgress (idempotent)
//
// Delivered and Cancelled orders cannot be marked ready.
func (s Status) MarkReady() (Status, error) {
	if s != Pending && s != InProgress {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark ready", s.String()),
		)
	}
	return InProgress, nil
}

// MarshalText lets Status serialize as its string form.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
