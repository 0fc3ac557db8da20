package schedule

import (
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
)

// ErrHolidayIsNotConstructed is returned when a Holiday instance was not
// created through NewHoliday.
var ErrHolidayIsNotConstructed = errors.New("Holiday must be created via NewHoliday")

// Holiday marks one calendar date as excluded from delivery.
// Dates are unique; the description is informational only.
type Holiday struct {
	id          kernel.UUID
	date        kernel.Day
	description string

	isConstructed bool
}

// NewHoliday creates a Holiday for the given date.
func NewHoliday(id kernel.UUID, date kernel.Day, description string) (*Holiday, error) {
	if err := errors.Join(id.Validate(), date.Validate()); err != nil {
		return nil, err
	}

	return &Holiday{
		id:            id,
		date:          date,
		description:   description,
		isConstructed: true,
	}, nil
}

// Validate ensures the instance was properly constructed.
func (h *Holiday) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHolidayIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (h *Holiday) ID() kernel.UUID {
	return h.id
}

// Date returns the excluded calendar date.
func (h *Holiday) Date() kernel.Day {
	return h.date
}

// Description returns the informational label of the holiday.
func (h *Holiday) Description() string {
	return h.description
}
