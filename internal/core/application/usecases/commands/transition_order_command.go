package commands

import (
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
	ErrRescheduleDateIsRequired = errors.New("reschedule requires an explicit date")
)

// TransitionOrderCommand represents a request to move an order to a new
// lifecycle status. The reschedule target additionally carries the
// operator-chosen date.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	target         order.Status
	operatorID     *kernel.UUID
	comment        string
	rescheduleDate kernel.Day

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order.
// The target must be a reachable status; reaching Rescheduled requires a
// non-zero rescheduleDate. operatorID may be nil for client- or
// system-driven transitions.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	operatorID *kernel.UUID,
	comment string,
	rescheduleDate kernel.Day,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		target:         target,
		operatorID:     operatorID,
		comment:        comment,
		rescheduleDate: rescheduleDate,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		target.Validate(),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	if operatorID != nil {
		if err := operatorID.Validate(); err != nil {
			return TransitionOrderCommand{}, err
		}
	}

	if target == order.Rescheduled && rescheduleDate.IsZero() {
		return TransitionOrderCommand{}, ErrRescheduleDateIsRequired
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested destination status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// OperatorID returns the acting operator, or nil.
func (c TransitionOrderCommand) OperatorID() *kernel.UUID {
	return c.operatorID
}

// Comment returns the note recorded in the audit trail.
func (c TransitionOrderCommand) Comment() string {
	return c.comment
}

// RescheduleDate returns the operator-chosen date for the Rescheduled
// target, or the zero Day for every other target.
func (c TransitionOrderCommand) RescheduleDate() kernel.Day {
	return c.rescheduleDate
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
