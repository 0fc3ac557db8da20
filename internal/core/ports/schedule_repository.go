package ports

import (
	"context"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/schedule"
)

// ScheduleRepository defines the persistence contract for the delivery
// schedule configuration: per-zone capacity records and holidays. It
// serves the zone limit and holiday lookups used during slot allocation.
type ScheduleRepository interface {
	// AddZoneCapacity persists a new zone capacity record.
	// The zone name must be unique among existing records.
	AddZoneCapacity(ctx context.Context, capacity *schedule.ZoneCapacity) error

	// UpdateZoneCapacity persists changes to an existing capacity record.
	UpdateZoneCapacity(ctx context.Context, capacity *schedule.ZoneCapacity) error

	// MaxPerDay returns the active daily limit for the zone and whether
	// an active record for it exists.
	MaxPerDay(ctx context.Context, zone string) (int, bool, error)

	// CountZoneCapacities returns the number of capacity records,
	// inactive ones included. Used to decide on first-start seeding.
	CountZoneCapacities(ctx context.Context) (int64, error)

	// AddHoliday persists a new holiday. The date must be unique.
	AddHoliday(ctx context.Context, holiday *schedule.Holiday) error

	// IsHoliday reports whether the date is a registered holiday.
	IsHoliday(ctx context.Context, date kernel.Day) (bool, error)
}
