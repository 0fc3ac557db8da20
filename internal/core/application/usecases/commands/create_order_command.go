package commands

import (
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantities must be non-negative and sum to at least 1")
)

// CreateOrderCommand represents a request to place a new water delivery
// order. Quantities are bottle counts of the two product types; the
// preferred date is optional and serves as the earliest candidate for the
// slot search.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, userID, addressID, 3, 2, "leave at the door", kernel.Day{})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, settings)
//	slot, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	userID        kernel.UUID
	addressID     kernel.UUID
	qtyA          int
	qtyB          int
	comment       string
	preferredDate kernel.Day

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the identifiers and that quantities are non-negative with a
// positive sum. preferredDate may be the zero Day.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	addressID kernel.UUID,
	qtyA, qtyB int,
	comment string,
	preferredDate kernel.Day,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		comment:       comment,
		preferredDate: preferredDate,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setAddressID(addressID),
		cmd.setQuantities(qtyA, qtyB),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the client-supplied identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the ordering user.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// AddressID returns the identifier of the delivery address.
func (c CreateOrderCommand) AddressID() kernel.UUID {
	return c.addressID
}

// QtyA returns the bottle count of the first product type.
func (c CreateOrderCommand) QtyA() int {
	return c.qtyA
}

// QtyB returns the bottle count of the second product type.
func (c CreateOrderCommand) QtyB() int {
	return c.qtyB
}

// Comment returns the free-form note attached to the order.
func (c CreateOrderCommand) Comment() string {
	return c.comment
}

// PreferredDate returns the earliest candidate delivery date, or the zero
// Day when the client has no preference.
func (c CreateOrderCommand) PreferredDate() kernel.Day {
	return c.preferredDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *CreateOrderCommand) setQuantities(qtyA, qtyB int) error {
	if qtyA < 0 || qtyB < 0 || qtyA+qtyB < 1 {
		return ErrQuantityIsInvalid
	}

	c.qtyA = qtyA
	c.qtyB = qtyB
	return nil
}
