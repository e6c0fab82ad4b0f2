package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Assigned ──> PickedUp ──> OnTheWay ──> Delivered
//	   │            │             │           │           │            │            │
//	   └────────────┴─────────────┴───────────┴───────────┴────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are final states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	Ready
	Assigned
	PickedUp
	OnTheWay
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		OnTheWay:  "on_the_way",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getProgress is the fixed completion percentage shown to customers.
func getProgress() map[Status]int {
	//nolint:exhaustive // Unknown has no progress
	return map[Status]int{
		Pending:   0,
		Confirmed: 15,
		Preparing: 30,
		Ready:     45,
		Assigned:  60,
		PickedUp:  75,
		OnTheWay:  90,
		Delivered: 100,
		Cancelled: 0,
	}
}

// ParseStatus converts a stored or transported name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the stored name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the order can no longer change.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Progress returns the completion percentage for the status.
func (s Status) Progress() int {
	return getProgress()[s]
}

// Next returns the immediate successor on the forward chain.
func (s Status) Next() (Status, bool) {
	if s < Pending || s >= Delivered {
		return Unknown, false
	}
	return s + 1, true
}

// CanTransitionTo reports whether next is the immediate successor of s, or
// cancellation from a non-terminal status.
func (s Status) CanTransitionTo(next Status) bool {
	if next == Cancelled {
		return s.Validate() == nil && !s.IsTerminal()
	}
	successor, ok := s.Next()
	return ok && successor == next
}

// TransitionTo returns next when the move is legal, or an invalid transition error.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), next.String())
	}
	return next, nil
}

// ValidateCanHaveDeliveryPerson checks that the status agrees with the
// presence of a delivery person. Before assignment there must be none; from
// assigned through delivery there must be one. A cancelled order may keep the
// person it had.
func (s Status) ValidateCanHaveDeliveryPerson(has bool) error {
	switch s {
	case Pending, Confirmed, Preparing, Ready:
		if has {
			return errs.NewValueIsInvalidErrorWithCause("status is invalid",
				fmt.Errorf("%s is not a valid status to have a delivery person", s))
		}
	case Assigned, PickedUp, OnTheWay, Delivered:
		if !has {
			return errs.NewValueIsInvalidErrorWithCause("status is invalid",
				fmt.Errorf("%s is not a valid status to have no delivery person", s))
		}
	}
	return nil
}
