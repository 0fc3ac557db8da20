package commands

import (
	"context"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation:
// duplicate suppression, capacity locking, slot allocation and the initial
// audit record, all inside one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, commands.DefaultSettings())
//	cmd, _ := NewCreateOrderCommand(orderID, userID, addressID, 3, 2, "", kernel.Day{})
//
//	slot, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrDuplicateOrder) {
//	    // identical order placed moments ago
//	}
type CreateOrderCommandHandler struct {
	uowFactory AllocationUoWFactory
	settings   Settings
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an AllocationUoWFactory for transactional persistence and the
// shared business settings.
func NewCreateOrderCommandHandler(uowFactory AllocationUoWFactory, settings Settings) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
	}
}

// Handle processes the order creation command and returns the allocated
// slot. The capacity lock for the address zone is taken before any
// capacity read, so two concurrent creations cannot both claim the last
// remaining units of a date.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (services.Slot, error) {
	if err := cmd.Validate(); err != nil {
		return services.Slot{}, err
	}
	if err := h.settings.Validate(); err != nil {
		return services.Slot{}, err
	}

	now := h.settings.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Slot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	scheduleRepo := uow.ScheduleRepository()

	zone, err := uow.AddressRepository().GetZone(ctx, cmd.AddressID())
	if err != nil {
		return services.Slot{}, err
	}

	if err = uow.LockCapacity(ctx, zone); err != nil {
		return services.Slot{}, err
	}

	duplicate, err := orderRepo.FindDuplicate(
		ctx,
		cmd.UserID(),
		cmd.AddressID(),
		cmd.QtyA(),
		cmd.QtyB(),
		now.Add(-h.settings.DuplicateWindow),
	)
	if err != nil {
		return services.Slot{}, err
	}
	if duplicate != nil {
		return services.Slot{}, order.ErrDuplicateOrder
	}

	calendar, err := services.NewCalendarPolicy(h.settings.CutoffHour, scheduleRepo)
	if err != nil {
		return services.Slot{}, err
	}

	finder, err := services.NewSlotFinder(h.settings.Slot, calendar, orderRepo, scheduleRepo)
	if err != nil {
		return services.Slot{}, err
	}

	slot, err := finder.FindSlot(ctx, zone, cmd.QtyA()+cmd.QtyB(), cmd.PreferredDate(), now)
	if err != nil {
		return services.Slot{}, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.AddressID(),
		cmd.QtyA(),
		cmd.QtyB(),
		slot.Date,
		cmd.Comment(),
		now,
	)
	if err != nil {
		return services.Slot{}, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return services.Slot{}, err
	}

	entry, err := order.NewCreatedLogEntry(kernel.NewUUID(), aggregate.ID(), now)
	if err != nil {
		return services.Slot{}, err
	}

	if err = orderRepo.AppendLog(ctx, &entry); err != nil {
		return services.Slot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.Slot{}, err
	}

	return slot, nil
}
