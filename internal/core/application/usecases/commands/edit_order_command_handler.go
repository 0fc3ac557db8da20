package commands

import (
	"context"
	"fmt"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/domain/services"
	"waterdelivery/internal/pkg/errs"
)

// EditOrderCommandHandler handles edits to pending orders. Every edit,
// comment-only edits included, re-runs the slot search for the order's
// zone under the capacity lock and may move the delivery date. The order
// row itself is read under a lock so a racing transition cannot be
// overwritten. Every edit appends an audit entry recording the resulting
// quantities.
type EditOrderCommandHandler struct {
	uowFactory AllocationUoWFactory
	settings   Settings
}

// NewEditOrderCommandHandler creates a handler for order edits.
func NewEditOrderCommandHandler(uowFactory AllocationUoWFactory, settings Settings) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
	}
}

// Handle processes the edit command. Only orders still in New status can
// be edited; the aggregate enforces that.
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
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
	scheduleRepo := uow.ScheduleRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Edit(cmd.QtyA(), cmd.QtyB(), cmd.Comment()); err != nil {
		return err
	}

	addressID := aggregate.AddressID()
	if addressID == nil {
		return errs.NewValueIsRequiredError("addressID")
	}

	zone, err := uow.AddressRepository().GetZone(ctx, *addressID)
	if err != nil {
		return err
	}

	if err = uow.LockCapacity(ctx, zone); err != nil {
		return err
	}

	calendar, err := services.NewCalendarPolicy(h.settings.CutoffHour, scheduleRepo)
	if err != nil {
		return err
	}

	finder, err := services.NewSlotFinder(h.settings.Slot, calendar, orderRepo, scheduleRepo)
	if err != nil {
		return err
	}

	slot, err := finder.FindSlot(ctx, zone, aggregate.TotalQty(), kernel.Day{}, now)
	if err != nil {
		return err
	}

	if err = aggregate.SetDeliveryDate(slot.Date); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := order.NewEditedLogEntry(
		kernel.NewUUID(),
		aggregate.ID(),
		fmt.Sprintf("qty_a=%d, qty_b=%d", aggregate.QtyA(), aggregate.QtyB()),
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
