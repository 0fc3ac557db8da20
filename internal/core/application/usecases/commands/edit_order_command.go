package commands

import (
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/guard"
)

var (
	ErrEditOrderCommandIsNotConstructed = errors.New(
		"EditOrderCommand must be created via NewEditOrderCommand constructor",
	)
	ErrNothingToEdit = errors.New("at least one of qtyA, qtyB or comment must be provided")
)

// EditOrderCommand represents a request to change the quantities or the
// comment of a pending order. Nil fields are left unchanged.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	qtyA    *int
	qtyB    *int
	comment *string

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to edit a pending order. At least
// one field must be provided; provided quantities must be non-negative.
func NewEditOrderCommand(orderID kernel.UUID, qtyA, qtyB *int, comment *string) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		qtyA:    qtyA,
		qtyB:    qtyB,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return EditOrderCommand{}, err
	}
	if qtyA == nil && qtyB == nil && comment == nil {
		return EditOrderCommand{}, ErrNothingToEdit
	}
	if (qtyA != nil && *qtyA < 0) || (qtyB != nil && *qtyB < 0) {
		return EditOrderCommand{}, ErrQuantityIsInvalid
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// QtyA returns the new first-type bottle count, or nil to keep the
// current value.
func (c EditOrderCommand) QtyA() *int {
	return c.qtyA
}

// QtyB returns the new second-type bottle count, or nil to keep the
// current value.
func (c EditOrderCommand) QtyB() *int {
	return c.qtyB
}

// Comment returns the new comment, or nil to keep the current one.
func (c EditOrderCommand) Comment() *string {
	return c.comment
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
