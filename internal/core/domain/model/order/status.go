package order

import (
	"errors"
	"fmt"

	"waterdelivery/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a requested status change is not
// present in the transition table. Callers can classify guard violations
// with errors.Is(err, ErrInvalidTransition).
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table: any
// pair of states not listed in the table is rejected, there are no ad hoc
// exceptions.
//
// State transitions:
//
//	New ──────> Confirmed ──────> InDelivery ──────> Completed
//	 │              │                  │
//	 │              ├──> PaymentPending ──> Paid ──> InDelivery
//	 │              │
//	 └──────────────┴──> Rescheduled (from any non-terminal state)
//
//	Cancelled is reachable from every non-terminal state.
//	Completed and Cancelled are terminal.
//
// Status is a value object persisted by its canonical string identifier
// so the stored representation stays stable across releases.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is a legacy stored status. No operation produces it; orders
	// restored in Draft can only be cancelled or rescheduled.
	Draft

	// New is the initial status of every created order. Orders stay New
	// until an operator confirms them, the client edits them, or the
	// stale-order sweep cancels them.
	New

	// Confirmed means an operator accepted the order for its delivery date.
	Confirmed

	// Rescheduled means an operator moved the order to an explicitly
	// chosen delivery date.
	Rescheduled

	// InDelivery means the order is out with a courier.
	InDelivery

	// Completed means the order was delivered. Terminal.
	Completed

	// Cancelled means the order was withdrawn by the client, an operator,
	// or the auto-cancel sweep. Terminal.
	Cancelled

	// PaymentPending means the order awaits payment before delivery.
	PaymentPending

	// Paid means payment for the order was received.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Draft:          "draft",
		New:            "new",
		Confirmed:      "confirmed",
		Rescheduled:    "rescheduled",
		InDelivery:     "in_delivery",
		Completed:      "completed",
		Cancelled:      "cancelled",
		PaymentPending: "payment_pending",
		Paid:           "paid",
	}
}

// transitionTable lists, per target status, the states a transition may
// start from. A target missing from the table is unreachable through
// TransitionTo.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Confirmed:      {New},
		Cancelled:      {Draft, New, Confirmed, Rescheduled, InDelivery, PaymentPending, Paid},
		Rescheduled:    {Draft, New, Confirmed, Rescheduled, InDelivery, PaymentPending, Paid},
		InDelivery:     {Confirmed, Rescheduled, Paid},
		Completed:      {InDelivery},
		PaymentPending: {Confirmed, Rescheduled, InDelivery},
		Paid:           {PaymentPending},
	}
}

// StatusFromString restores a Status from its canonical string identifier.
// Returns an error for unknown identifiers, including "unknown" itself.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// String returns the canonical identifier of the status. This is the
// representation stored in the database and exposed to callers.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Status is one of the defined values.
// Unknown (the zero value) is invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// IsTerminal reports whether the status permits no further transitions.
// Completed and Cancelled orders are retained for history but never mutate.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the transition table allows moving from
// s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, from := range transitionTable()[target] {
		if from == s {
			return true
		}
	}
	return false
}

// TransitionTo returns target when the transition table allows reaching it
// from s, and a guard violation wrapping ErrInvalidTransition otherwise.
//
// Example:
//
//	next, err := status.TransitionTo(order.Confirmed)
//	if errors.Is(err, order.ErrInvalidTransition) {
//	    // reject the request, nothing was mutated
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}
	return target, nil
}
