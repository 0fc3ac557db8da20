package order

import (
	"errors"
	"fmt"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrDuplicateOrder is returned when a near-identical submission arrives
	// within the duplicate window of an existing non-cancelled order.
	ErrDuplicateOrder = errors.New("duplicate order submission")
)

// Order represents a water delivery request. It is the aggregate root that
// manages the order lifecycle from creation through confirmation and
// delivery to completion or cancellation.
//
// Order maintains these invariants:
//   - totalQty == qtyA + qtyB and totalQty >= 1 at all times
//   - status changes follow the transition table in Status
//   - quantities and comment are editable only while the order is New
//   - orders are never deleted; Completed and Cancelled are kept for history
//
// The struct uses private fields so every mutation goes through a guarded
// method. Instances must be created via NewOrder (new submissions) or
// RestoreOrder (reconstruction from persistence).
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the owning client
	userID kernel.UUID

	// addressID references the delivery address; nil after the address
	// was deleted (the order itself is retained)
	addressID *kernel.UUID

	// qtyA and qtyB are the two independently tracked product quantities
	qtyA int
	qtyB int

	// totalQty is always qtyA + qtyB
	totalQty int

	// deliveryDate is the allocated slot; zero until assigned
	deliveryDate kernel.Day

	// status is the current state in the order lifecycle
	status Status

	// comment is free text supplied by the client
	comment string

	createdAt   time.Time
	confirmedAt *time.Time

	// operatorID references the operator who confirmed the order, if any
	operatorID *kernel.UUID

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in status New with an allocated delivery
// date. The quantities must be non-negative and sum to at least one unit.
//
// Example:
//
//	o, err := order.NewOrder(
//	    kernel.NewUUID(), userID, addressID,
//	    3, 2, slot.Date, "call an hour ahead", time.Now(),
//	)
//	if err != nil {
//	    // one of the invariants was violated
//	}
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	addressID kernel.UUID,
	qtyA, qtyB int,
	deliveryDate kernel.Day,
	comment string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        New,
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}

	addrID := addressID
	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setAddressID(&addrID),
		o.setQuantities(qtyA, qtyB),
		o.setDeliveryDate(deliveryDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without applying the
// creation-time invariants that only hold for fresh submissions (an old
// order may reference a deleted address or carry a legacy status).
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	addressID *kernel.UUID,
	qtyA, qtyB, totalQty int,
	deliveryDate kernel.Day,
	status Status,
	comment string,
	createdAt time.Time,
	confirmedAt *time.Time,
	operatorID *kernel.UUID,
) (*Order, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if totalQty != qtyA+qtyB {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalQty",
			fmt.Errorf("%d is not the sum of %d and %d", totalQty, qtyA, qtyB),
		)
	}

	return &Order{
		id:            id,
		userID:        userID,
		addressID:     addressID,
		qtyA:          qtyA,
		qtyB:          qtyB,
		totalQty:      totalQty,
		deliveryDate:  deliveryDate,
		status:        status,
		comment:       comment,
		createdAt:     createdAt,
		confirmedAt:   confirmedAt,
		operatorID:    operatorID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning client's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// AddressID returns the delivery address reference.
// Returns nil if the address was deleted.
func (o *Order) AddressID() *kernel.UUID {
	return o.addressID
}

// QtyA returns the quantity of product type A.
func (o *Order) QtyA() int {
	return o.qtyA
}

// QtyB returns the quantity of product type B.
func (o *Order) QtyB() int {
	return o.qtyB
}

// TotalQty returns the total unit count, always qtyA + qtyB.
func (o *Order) TotalQty() int {
	return o.totalQty
}

// DeliveryDate returns the allocated delivery date.
// The zero Day means no date has been assigned.
func (o *Order) DeliveryDate() kernel.Day {
	return o.deliveryDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Comment returns the client's free-text comment.
func (o *Order) Comment() string {
	return o.comment
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmedAt returns the confirmation timestamp.
// Returns nil while the order has never been confirmed.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// OperatorID returns the operator who took the order, if any.
func (o *Order) OperatorID() *kernel.UUID {
	return o.operatorID
}

// Confirm transitions the order from New to Confirmed, recording the
// confirmation time and the acting operator (which may be nil).
func (o *Order) Confirm(at time.Time, operatorID *kernel.UUID) error {
	newStatus, err := o.status.TransitionTo(Confirmed)
	if err != nil {
		return err
	}
	if operatorID != nil {
		if err = operatorID.Validate(); err != nil {
			return err
		}
	}

	o.status = newStatus
	o.confirmedAt = &at
	if operatorID != nil {
		o.operatorID = operatorID
	}
	return nil
}

// Cancel transitions the order to Cancelled. Allowed from every
// non-terminal state; the cancellation reason is kept in the audit log,
// not on the order itself.
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reschedule moves the order to an operator-chosen delivery date and the
// Rescheduled status. The date is taken as-is: this is an explicit
// operator override that bypasses slot allocation, so neither calendar
// exclusions nor capacity are re-checked here.
func (o *Order) Reschedule(date kernel.Day, operatorID *kernel.UUID) error {
	if err := date.Validate(); err != nil {
		return err
	}
	newStatus, err := o.status.TransitionTo(Rescheduled)
	if err != nil {
		return err
	}
	if operatorID != nil {
		if err = operatorID.Validate(); err != nil {
			return err
		}
	}

	o.status = newStatus
	o.deliveryDate = date
	if operatorID != nil {
		o.operatorID = operatorID
	}
	return nil
}

// StartDelivery transitions the order to InDelivery.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.TransitionTo(InDelivery)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete transitions the order to Completed, the terminal success state.
func (o *Order) Complete() error {
	newStatus, err := o.status.TransitionTo(Completed)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPaymentPending transitions the order to PaymentPending.
func (o *Order) MarkPaymentPending() error {
	newStatus, err := o.status.TransitionTo(PaymentPending)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPaid transitions the order from PaymentPending to Paid.
func (o *Order) MarkPaid() error {
	newStatus, err := o.status.TransitionTo(Paid)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Edit updates quantities and comment while the order is still New.
// nil arguments leave the corresponding field unchanged. The resulting
// total quantity must stay at least one unit. The caller is responsible
// for re-allocating the delivery date afterwards via SetDeliveryDate.
func (o *Order) Edit(qtyA, qtyB *int, comment *string) error {
	if o.status != New {
		return fmt.Errorf("%w: only orders in %s status can be edited, order is %s",
			ErrInvalidTransition, New, o.status)
	}

	newA := o.qtyA
	newB := o.qtyB
	if qtyA != nil {
		newA = *qtyA
	}
	if qtyB != nil {
		newB = *qtyB
	}
	if err := o.setQuantities(newA, newB); err != nil {
		return err
	}

	if comment != nil {
		o.comment = *comment
	}
	return nil
}

// SetDeliveryDate assigns a freshly allocated slot date after an edit.
// Only valid while the order is New; operators change dates on other
// statuses through Reschedule.
func (o *Order) SetDeliveryDate(date kernel.Day) error {
	if o.status != New {
		return fmt.Errorf("%w: delivery date can be reallocated only in %s status, order is %s",
			ErrInvalidTransition, New, o.status)
	}
	return o.setDeliveryDate(date)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.userID = id
	return nil
}

func (o *Order) setAddressID(id *kernel.UUID) error {
	if id == nil {
		return errs.NewValueIsRequiredError("addressID")
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.addressID = id
	return nil
}

// setQuantities validates and sets both quantities and the derived total.
// Each quantity must be non-negative and the total at least 1.
func (o *Order) setQuantities(qtyA, qtyB int) error {
	if qtyA < 0 {
		return errs.NewValueIsInvalidErrorWithCause("qtyA", fmt.Errorf("%d is negative", qtyA))
	}
	if qtyB < 0 {
		return errs.NewValueIsInvalidErrorWithCause("qtyB", fmt.Errorf("%d is negative", qtyB))
	}
	if qtyA+qtyB < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalQty",
			fmt.Errorf("%d is not greater than 0", qtyA+qtyB),
		)
	}

	o.qtyA = qtyA
	o.qtyB = qtyB
	o.totalQty = qtyA + qtyB
	return nil
}

func (o *Order) setDeliveryDate(date kernel.Day) error {
	if err := date.Validate(); err != nil {
		return err
	}
	o.deliveryDate = date
	return nil
}
