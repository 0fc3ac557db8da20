package schedule

import (
	"errors"
	"fmt"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/errs"
)

// ErrZoneCapacityIsNotConstructed is returned when a ZoneCapacity instance
// was not created through NewZoneCapacity or RestoreZoneCapacity.
var ErrZoneCapacityIsNotConstructed = errors.New(
	"ZoneCapacity must be created via NewZoneCapacity or RestoreZoneCapacity",
)

// ZoneCapacity defines the daily delivery limit of one geographic zone.
// The zone name is the unique key used by slot allocation; one designated
// fallback record supplies the limit for zones without their own row.
//
// ZoneCapacity maintains these invariants:
//   - the zone name is never empty
//   - the daily limit is always positive
//
// An inactive record is ignored by slot allocation but kept for history.
type ZoneCapacity struct {
	id        kernel.UUID
	zone      string
	maxPerDay int
	active    bool

	isConstructed bool
}

// NewZoneCapacity creates an active capacity record for a zone.
func NewZoneCapacity(id kernel.UUID, zone string, maxPerDay int) (*ZoneCapacity, error) {
	zc := &ZoneCapacity{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		zc.setID(id),
		zc.setZone(zone),
		zc.setMaxPerDay(maxPerDay),
	); err != nil {
		return nil, err
	}

	return zc, nil
}

// RestoreZoneCapacity reconstructs a ZoneCapacity from persistence.
func RestoreZoneCapacity(id kernel.UUID, zone string, maxPerDay int, active bool) (*ZoneCapacity, error) {
	zc, err := NewZoneCapacity(id, zone, maxPerDay)
	if err != nil {
		return nil, err
	}
	zc.active = active
	return zc, nil
}

// Validate ensures the instance was properly constructed.
func (z *ZoneCapacity) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrZoneCapacityIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (z *ZoneCapacity) ID() kernel.UUID {
	return z.id
}

// Zone returns the zone name, the unique capacity-pool key.
func (z *ZoneCapacity) Zone() string {
	return z.zone
}

// MaxPerDay returns the number of units deliverable in the zone per day.
func (z *ZoneCapacity) MaxPerDay() int {
	return z.maxPerDay
}

// IsActive reports whether slot allocation should honor this record.
func (z *ZoneCapacity) IsActive() bool {
	return z.active
}

// Deactivate excludes the record from slot allocation without deleting it.
func (z *ZoneCapacity) Deactivate() {
	z.active = false
}

// ChangeLimit updates the daily limit. The limit must stay positive.
func (z *ZoneCapacity) ChangeLimit(maxPerDay int) error {
	return z.setMaxPerDay(maxPerDay)
}

func (z *ZoneCapacity) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *ZoneCapacity) setZone(zone string) error {
	if zone == "" {
		return errs.NewValueIsRequiredError("zone")
	}
	z.zone = zone
	return nil
}

func (z *ZoneCapacity) setMaxPerDay(maxPerDay int) error {
	if maxPerDay <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxPerDay",
			fmt.Errorf("%d is not greater than 0", maxPerDay),
		)
	}
	z.maxPerDay = maxPerDay
	return nil
}
