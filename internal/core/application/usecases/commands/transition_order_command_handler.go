package commands

import (
	"context"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/pkg/errs"
)

// TransitionOrderCommandHandler applies a lifecycle transition to an
// order and appends the matching audit entry in the same transaction.
// The order row is read under a lock, so of two racing transitions the
// second evaluates its guard against the status the first committed.
// Guard failures surface as order.ErrInvalidTransition and change
// nothing.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	settings   Settings
}

// NewTransitionOrderCommandHandler creates a handler for status transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, settings Settings) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
	}
}

// Handle processes the transition command.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.settings.Validate(); err != nil {
		return err
	}

	now := h.settings.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	oldStatus := aggregate.Status()

	if err = applyTransition(aggregate, cmd, now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := order.NewStatusChangeLogEntry(
		kernel.NewUUID(),
		aggregate.ID(),
		oldStatus,
		aggregate.Status(),
		cmd.OperatorID(),
		cmd.Comment(),
		now,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.AppendLog(ctx, &entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// applyTransition dispatches the target status to the matching aggregate
// operation.
func applyTransition(aggregate *order.Order, cmd TransitionOrderCommand, now time.Time) error {
	switch cmd.Target() {
	case order.Confirmed:
		return aggregate.Confirm(now, cmd.OperatorID())
	case order.Cancelled:
		return aggregate.Cancel()
	case order.Rescheduled:
		return aggregate.Reschedule(cmd.RescheduleDate(), cmd.OperatorID())
	case order.InDelivery:
		return aggregate.StartDelivery()
	case order.Completed:
		return aggregate.Complete()
	case order.PaymentPending:
		return aggregate.MarkPaymentPending()
	case order.Paid:
		return aggregate.MarkPaid()
	default:
		return errs.NewValueIsInvalidError("target")
	}
}
