package queries

import (
	"context"
	"time"

	"waterdelivery/internal/core/domain/services"
	"waterdelivery/internal/core/ports"
)

// FindSlotQueryHandler runs the slot search in a read-only transaction.
// The probe takes no capacity locks: it only informs the caller, the
// binding check happens again at creation time.
type FindSlotQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	slotConfig services.SlotFinderConfig
	cutoffHour int
	now        func() time.Time
}

// NewFindSlotQueryHandler creates a handler for slot probes.
func NewFindSlotQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	slotConfig services.SlotFinderConfig,
	cutoffHour int,
) FindSlotQueryHandler {
	return FindSlotQueryHandler{
		uowFactory: uowFactory,
		slotConfig: slotConfig,
		cutoffHour: cutoffHour,
		now:        time.Now,
	}
}

// Handle returns the nearest feasible slot for the zone and quantity.
func (h FindSlotQueryHandler) Handle(ctx context.Context, query FindSlotQuery) (FindSlotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return FindSlotQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return FindSlotQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	calendar, err := services.NewCalendarPolicy(h.cutoffHour, uow.ScheduleRepository())
	if err != nil {
		return FindSlotQueryResponse{}, err
	}

	finder, err := services.NewSlotFinder(h.slotConfig, calendar, uow.OrderRepository(), uow.ScheduleRepository())
	if err != nil {
		return FindSlotQueryResponse{}, err
	}

	slot, err := finder.FindSlot(ctx, query.Zone(), query.Qty(), query.StartDate(), h.now())
	if err != nil {
		return FindSlotQueryResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return FindSlotQueryResponse{}, err
	}

	return FindSlotQueryResponse{
		Date:           slot.Date.String(),
		ZoneRemaining:  slot.ZoneRemaining,
		TotalRemaining: slot.TotalRemaining,
	}, nil
}
