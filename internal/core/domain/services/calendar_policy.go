package services

import (
	"context"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/errs"
)

// DefaultCutoffHour is the local hour after which same-day delivery is no
// longer offered.
const DefaultCutoffHour = 17

// HolidayCalendar is the narrow read contract CalendarPolicy needs to
// recognize registered holidays. Implemented by the schedule repository.
type HolidayCalendar interface {
	// IsHoliday reports whether the date is a registered holiday.
	IsHoliday(ctx context.Context, date kernel.Day) (bool, error)
}

// CalendarPolicy decides which candidate dates are excluded from delivery
// and where the slot search starts. It is a domain service over an injected
// holiday lookup; it has no side effects of its own.
//
// Rules:
//   - before the cutoff hour the earliest candidate is today, after it
//     tomorrow
//   - Saturdays, Sundays and registered holidays are excluded
type CalendarPolicy struct {
	cutoffHour int
	holidays   HolidayCalendar
}

// NewCalendarPolicy creates a CalendarPolicy with the given cutoff hour
// (0..23) and holiday lookup.
func NewCalendarPolicy(cutoffHour int, holidays HolidayCalendar) (*CalendarPolicy, error) {
	if cutoffHour < 0 || cutoffHour > 23 {
		return nil, errs.NewValueIsOutOfRangeError("cutoffHour", cutoffHour, 0, 23)
	}
	if holidays == nil {
		return nil, errs.NewValueIsRequiredError("holidays")
	}

	return &CalendarPolicy{
		cutoffHour: cutoffHour,
		holidays:   holidays,
	}, nil
}

// EarliestCandidate returns the first date the slot search may consider:
// the calendar date of now while its local hour is before the cutoff,
// otherwise the following day.
func (p *CalendarPolicy) EarliestCandidate(now time.Time) kernel.Day {
	today := kernel.DayOf(now)
	if now.Hour() < p.cutoffHour {
		return today
	}
	return today.Next()
}

// IsExcluded reports whether the date must be skipped by the slot search:
// weekends and registered holidays.
func (p *CalendarPolicy) IsExcluded(ctx context.Context, date kernel.Day) (bool, error) {
	if date.IsWeekend() {
		return true, nil
	}
	return p.holidays.IsHoliday(ctx, date)
}
