package order

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel error for illegal status transitions.
// Use errors.Is against this value to classify InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders only move
// along the legal workflow from intake to delivery or cancellation.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──┬──> Delivering ──> Delivered
//	   │            │             │                 └─────────────────> Delivered
//	   └────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Orders are never deleted; cancellation
// is a status value.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at creation.
	Pending

	// Confirmed means the order has been accepted by staff.
	Confirmed

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means all items are prepared and awaiting handoff.
	Ready

	// Delivering means the order left for the customer's table or address.
	Delivering

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal state for abandoned or rejected orders.
	Cancelled
)

// getStatusStrings maps every Status value to its wire representation.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		Preparing:  "preparing",
		Ready:      "ready",
		Delivering: "delivering",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings maps only valid Status values, for validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Confirmed:  "confirmed",
		Preparing:  "preparing",
		Ready:      "ready",
		Delivering: "delivering",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getTransitions is the authoritative transition table. Both ChangeStatus and
// Cancel consult it; there is no other source of legal moves.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {Preparing, Cancelled},
		Preparing:  {Ready, Cancelled},
		Ready:      {Delivering, Delivered},
		Delivering: {Delivered},
		Delivered:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses a wire representation ("pending", "confirmed", ...)
// into a Status. Returns an error for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("pending", ...).
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table allows moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the move is legal, or an InvalidTransitionError
// describing the rejected edge.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, &InvalidTransitionError{From: s, To: next}
	}
	return next, nil
}

// InvalidTransitionError describes a status change rejected by the transition table.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
