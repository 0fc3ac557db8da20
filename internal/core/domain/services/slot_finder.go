package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/errs"
)

// ErrNoSlotAvailable is returned when no candidate date within the search
// horizon has enough remaining capacity for the requested quantity.
var ErrNoSlotAvailable = errors.New("no delivery slot available within the search horizon")

// Default slot allocation limits. They match the operational setup the
// system was sized for and can be overridden through SlotFinderConfig.
const (
	DefaultGlobalDailyLimit = 331
	DefaultHorizonDays      = 60
	DefaultZoneLimit        = 91
	DefaultFallbackZone     = "Other"
)

// SlotFinderConfig is the immutable configuration of a SlotFinder.
type SlotFinderConfig struct {
	// GlobalDailyLimit caps the total units deliverable across all zones
	// on one date.
	GlobalDailyLimit int

	// HorizonDays bounds how many days forward the search walks before
	// giving up, excluded dates included.
	HorizonDays int

	// FallbackZone names the capacity record consulted for zones without
	// their own record.
	FallbackZone string

	// DefaultZoneLimit applies when even the fallback record is absent.
	DefaultZoneLimit int
}

// DefaultSlotFinderConfig returns the standard limits.
func DefaultSlotFinderConfig() SlotFinderConfig {
	return SlotFinderConfig{
		GlobalDailyLimit: DefaultGlobalDailyLimit,
		HorizonDays:      DefaultHorizonDays,
		FallbackZone:     DefaultFallbackZone,
		DefaultZoneLimit: DefaultZoneLimit,
	}
}

// Validate checks that every limit is usable.
func (c SlotFinderConfig) Validate() error {
	if c.GlobalDailyLimit <= 0 {
		return errs.NewValueIsInvalidError("globalDailyLimit")
	}
	if c.HorizonDays <= 0 {
		return errs.NewValueIsInvalidError("horizonDays")
	}
	if c.FallbackZone == "" {
		return errs.NewValueIsRequiredError("fallbackZone")
	}
	if c.DefaultZoneLimit <= 0 {
		return errs.NewValueIsInvalidError("defaultZoneLimit")
	}
	return nil
}

// CapacityLedger is the read contract for demand already committed to a
// date. Implementations must observe a snapshot consistent with the
// caller's transaction so a concurrent writer cannot slip between the
// reads and the subsequent insert.
type CapacityLedger interface {
	// ConsumedForDate sums total quantities over all non-cancelled orders
	// for the date.
	ConsumedForDate(ctx context.Context, date kernel.Day) (int, error)

	// ConsumedForZone sums total quantities over non-cancelled orders for
	// the date whose delivery address lies in the zone.
	ConsumedForZone(ctx context.Context, date kernel.Day, zone string) (int, error)
}

// ZoneLimits is the read contract for per-zone daily limits.
// Only active capacity records are visible through it.
type ZoneLimits interface {
	// MaxPerDay returns the active daily limit for the zone and whether
	// such a record exists.
	MaxPerDay(ctx context.Context, zone string) (int, bool, error)
}

// Slot is the result of a successful search: the first feasible date and
// the capacity that would remain after reserving the requested quantity,
// for caller display.
type Slot struct {
	Date           kernel.Day
	ZoneRemaining  int
	TotalRemaining int
}

// SlotFinder walks forward through candidate dates applying the calendar
// policy and the capacity ledger, returning the first date where both the
// zone pool and the global pool can take the requested quantity.
//
// Example:
//
//	finder, _ := services.NewSlotFinder(cfg, calendar, ledger, zones)
//	slot, err := finder.FindSlot(ctx, "North", 5, kernel.Day{}, time.Now())
//	if errors.Is(err, services.ErrNoSlotAvailable) {
//	    // nothing free within the horizon
//	}
type SlotFinder struct {
	config   SlotFinderConfig
	calendar *CalendarPolicy
	ledger   CapacityLedger
	zones    ZoneLimits
}

// NewSlotFinder creates a SlotFinder over the given policy and read
// contracts.
func NewSlotFinder(
	config SlotFinderConfig,
	calendar *CalendarPolicy,
	ledger CapacityLedger,
	zones ZoneLimits,
) (*SlotFinder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if calendar == nil {
		return nil, errs.NewValueIsRequiredError("calendar")
	}
	if ledger == nil {
		return nil, errs.NewValueIsRequiredError("ledger")
	}
	if zones == nil {
		return nil, errs.NewValueIsRequiredError("zones")
	}

	return &SlotFinder{
		config:   config,
		calendar: calendar,
		ledger:   ledger,
		zones:    zones,
	}, nil
}

// FindSlot returns the nearest feasible delivery slot for the quantity in
// the zone. The search starts at start, or at the calendar's earliest
// candidate derived from now when start is the zero Day. Unrecognized
// zones silently use the fallback capacity pool. Excluded dates count
// against the horizon.
func (f *SlotFinder) FindSlot(
	ctx context.Context,
	zone string,
	quantity int,
	start kernel.Day,
	now time.Time,
) (Slot, error) {
	if zone == "" {
		return Slot{}, errs.NewValueIsRequiredError("zone")
	}
	if quantity < 1 {
		return Slot{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	zoneLimit, err := f.zoneLimit(ctx, zone)
	if err != nil {
		return Slot{}, err
	}

	current := start
	if current.IsZero() {
		current = f.calendar.EarliestCandidate(now)
	}

	for i := 0; i < f.config.HorizonDays; i++ {
		excluded, excErr := f.calendar.IsExcluded(ctx, current)
		if excErr != nil {
			return Slot{}, excErr
		}
		if excluded {
			current = current.Next()
			continue
		}

		zoneUsed, zoneErr := f.ledger.ConsumedForZone(ctx, current, zone)
		if zoneErr != nil {
			return Slot{}, zoneErr
		}
		totalUsed, totalErr := f.ledger.ConsumedForDate(ctx, current)
		if totalErr != nil {
			return Slot{}, totalErr
		}

		zoneAvailable := zoneLimit - zoneUsed
		totalAvailable := f.config.GlobalDailyLimit - totalUsed

		if zoneAvailable >= quantity && totalAvailable >= quantity {
			return Slot{
				Date:           current,
				ZoneRemaining:  zoneAvailable - quantity,
				TotalRemaining: totalAvailable - quantity,
			}, nil
		}

		current = current.Next()
	}

	return Slot{}, ErrNoSlotAvailable
}

// zoneLimit resolves the daily limit for a zone: its own active record,
// else the fallback zone's record, else the hard default.
func (f *SlotFinder) zoneLimit(ctx context.Context, zone string) (int, error) {
	limit, found, err := f.zones.MaxPerDay(ctx, zone)
	if err != nil {
		return 0, err
	}
	if found {
		return limit, nil
	}

	limit, found, err = f.zones.MaxPerDay(ctx, f.config.FallbackZone)
	if err != nil {
		return 0, err
	}
	if found {
		return limit, nil
	}

	return f.config.DefaultZoneLimit, nil
}
