package kernel

import (
	"time"

	"waterdelivery/internal/pkg/errs"
)

// ErrDayIsNotConstructed indicates that a Day was not created through one of
// the constructor functions. The zero value of Day is invalid.
var ErrDayIsNotConstructed = errs.NewValueIsRequiredError(
	"Day must be created via NewDay, DayOf, or DayFromString",
)

// DayLayout is the canonical string representation of a Day.
const DayLayout = "2006-01-02"

// Day is a value object representing a single calendar date without a
// time-of-day component. It is used for delivery dates, holiday dates and
// capacity bookkeeping, where comparing wall-clock instants would be wrong.
//
// Internally a Day is stored as midnight UTC, so two Days built from
// different time zones but the same calendar date compare equal.
//
// Day is immutable and safe for concurrent use. The zero value is invalid
// and represents "no date assigned"; use IsZero to test for it.
//
// Example usage:
//
//	d := kernel.NewDay(2025, time.January, 6)
//	d.IsWeekend()      // false, it is a Monday
//	d.Next().String()  // "2025-01-07"
type Day struct {
	t time.Time
}

// NewDay creates a Day from a year, month and day of month.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf creates the Day containing the given instant, interpreted in the
// instant's own location. This is the conversion used when turning "now"
// into a candidate delivery date.
func DayOf(t time.Time) Day {
	year, month, day := t.Date()
	return NewDay(year, month, day)
}

// DayFromString parses a Day from its canonical "YYYY-MM-DD" representation.
// Returns an error for any other format.
func DayFromString(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, errs.NewValueIsInvalidErrorWithCause("day", err)
	}
	return DayOf(t), nil
}

// String returns the canonical "YYYY-MM-DD" representation.
func (d Day) String() string {
	return d.t.Format(DayLayout)
}

// Time returns the Day as midnight UTC. Useful for persistence.
func (d Day) Time() time.Time {
	return d.t
}

// Weekday returns the day of the week.
func (d Day) Weekday() time.Weekday {
	return d.t.Weekday()
}

// IsWeekend reports whether the Day falls on a Saturday or Sunday.
func (d Day) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Next returns the following calendar day.
func (d Day) Next() Day {
	return d.AddDays(1)
}

// AddDays returns the Day shifted by n calendar days. n may be negative.
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Before reports whether d is an earlier calendar date than other.
func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

// IsEqual reports whether both values represent the same calendar date.
func (d Day) IsEqual(other Day) bool {
	return d.t.Equal(other.t)
}

// IsZero reports whether the Day is the invalid zero value, which stands
// for "no date assigned".
func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// Validate checks that the Day was constructed and is not the zero value.
func (d Day) Validate() error {
	if d.IsZero() {
		return ErrDayIsNotConstructed
	}
	return nil
}
