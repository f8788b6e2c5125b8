package delivery

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Prep ──> InTransit ──> Delivered
//	  │          │
//	  │          └──────> Returned
//	  ├─────────────────> Delivered
//	  └─────────────────> Returned
//
// Every status may be re-applied to itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Prep is the initial status: the parcel is being prepared.
	Prep

	// InTransit means a courier has the parcel.
	InTransit

	// Delivered is final: the customer received the parcel.
	Delivered

	// Returned is final: the parcel came back.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Prep:      "prep",
		InTransit: "in_transit",
		Delivered: "delivered",
		Returned:  "returned",
	}
}

func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // Unknown has no transitions
	return map[Status][]Status{
		Prep:      {Prep, InTransit, Delivered, Returned},
		InTransit: {InTransit, Delivered, Returned},
		Delivered: {Delivered},
		Returned:  {Returned},
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Prep, InTransit, Delivered, Returned}
}

// ParseStatus converts the persisted/query-string form into a Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a delivery status", s),
	)
}

// Validate checks that s is one of Statuses().
func (s Status) Validate() error {
	if s <= Unknown || s > Returned {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsPending reports whether the parcel has not reached a final state yet.
func (s Status) IsPending() bool {
	return s == Prep || s == InTransit
}

// ValidateTransition checks that the delivery may move from s to next.
//
// Returns:
//   - nil for a forward move or a re-application of the same status
//   - error when next is invalid or lies behind s
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"status transition is invalid",
		fmt.Errorf("%s -> %s is not allowed", s.String(), next.String()),
	)
}

// MarshalText lets Status serialize as its string form.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
