package cmd

import (
	"context"
	"fmt"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/schedule"
)

// defaultHolidays are seeded alongside the fallback zone. Operators
// manage the real calendar afterwards.
var defaultHolidays = []struct {
	date        kernel.Day
	description string
}{
	{kernel.NewDay(2026, time.January, 1), "New Year's Day"},
	{kernel.NewDay(2026, time.January, 2), "New Year holidays"},
	{kernel.NewDay(2027, time.January, 1), "New Year's Day"},
}

// SeedSchedule inserts the fallback zone record and the default holidays
// when the zone capacity table is empty. Subsequent starts are no-ops, so
// operator edits survive restarts.
func (c *CompositionRoot) SeedSchedule(ctx context.Context) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("seed schedule: %w", err)
	}
	defer uow.Rollback(ctx)

	scheduleRepo := uow.ScheduleRepository()

	count, err := scheduleRepo.CountZoneCapacities(ctx)
	if err != nil {
		return fmt.Errorf("seed schedule: %w", err)
	}
	if count > 0 {
		return nil
	}

	fallback, err := schedule.NewZoneCapacity(
		kernel.NewUUID(), c.settings.Slot.FallbackZone, c.settings.Slot.DefaultZoneLimit,
	)
	if err != nil {
		return fmt.Errorf("seed schedule: %w", err)
	}
	if err = scheduleRepo.AddZoneCapacity(ctx, fallback); err != nil {
		return fmt.Errorf("seed schedule: %w", err)
	}

	for _, h := range defaultHolidays {
		holiday, holidayErr := schedule.NewHoliday(kernel.NewUUID(), h.date, h.description)
		if holidayErr != nil {
			return fmt.Errorf("seed schedule: %w", holidayErr)
		}
		if holidayErr = scheduleRepo.AddHoliday(ctx, holiday); holidayErr != nil {
			return fmt.Errorf("seed schedule: %w", holidayErr)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("seed schedule: %w", err)
	}

	c.logger.InfoContext(ctx, "seeded schedule defaults",
		"fallback_zone", c.settings.Slot.FallbackZone,
		"holidays", len(defaultHolidays),
	)
	return nil
}
