package queries

import (
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/guard"
)

var (
	ErrFindSlotQueryIsNotConstructed = errors.New(
		"FindSlotQuery must be created via NewFindSlotQuery constructor",
	)
	ErrZoneIsRequired   = errors.New("zone is required")
	ErrSlotQtyIsInvalid = errors.New("qty must be greater than 0")
)

// FindSlotQuery probes for the nearest feasible delivery slot without
// reserving anything. startDate may be the zero Day to search from the
// earliest candidate.
type FindSlotQuery struct {
	zone      string
	qty       int
	startDate kernel.Day

	guard guard.ConstructorGuard
}

// NewFindSlotQuery creates a slot probe query.
func NewFindSlotQuery(zone string, qty int, startDate kernel.Day) (FindSlotQuery, error) {
	if zone == "" {
		return FindSlotQuery{}, ErrZoneIsRequired
	}
	if qty < 1 {
		return FindSlotQuery{}, ErrSlotQtyIsInvalid
	}

	return FindSlotQuery{
		zone:      zone,
		qty:       qty,
		startDate: startDate,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindSlotQuery) Validate() error {
	return q.guard.Validate(ErrFindSlotQueryIsNotConstructed)
}

// Zone returns the delivery zone to probe.
func (q FindSlotQuery) Zone() string {
	return q.zone
}

// Qty returns the quantity the probe asks room for.
func (q FindSlotQuery) Qty() int {
	return q.qty
}

// StartDate returns the earliest date the probe considers, or the zero
// Day for no preference.
func (q FindSlotQuery) StartDate() kernel.Day {
	return q.startDate
}

// FindSlotQueryResponse is the probe result.
type FindSlotQueryResponse struct {
	Date           string
	ZoneRemaining  int
	TotalRemaining int
}
