package commands

import (
	"time"

	"waterdelivery/internal/core/domain/services"
	"waterdelivery/internal/pkg/errs"
)

// Default business thresholds used when the environment supplies none.
const (
	DefaultDuplicateWindow = 10 * time.Minute
	DefaultReminderAfter   = 2 * time.Hour
	DefaultAutoCancelAfter = 24 * time.Hour
)

// Settings carries the tunable business parameters shared by the command
// handlers. A single value is built in the composition root and injected
// everywhere, so tests can swap limits and the clock freely.
type Settings struct {
	// Slot holds the capacity limits and search horizon.
	Slot services.SlotFinderConfig

	// CutoffHour is the local hour after which today stops being a
	// candidate delivery date.
	CutoffHour int

	// DuplicateWindow is how far back creation looks for an identical
	// pending order.
	DuplicateWindow time.Duration

	// ReminderAfter is how long an order may sit unconfirmed before
	// operators are reminded about it.
	ReminderAfter time.Duration

	// AutoCancelAfter is how long an order may sit unconfirmed before it
	// is cancelled automatically.
	AutoCancelAfter time.Duration

	// Now supplies the current time. Defaults to time.Now.
	Now func() time.Time
}

// DefaultSettings returns the standard business parameters.
func DefaultSettings() Settings {
	return Settings{
		Slot:            services.DefaultSlotFinderConfig(),
		CutoffHour:      services.DefaultCutoffHour,
		DuplicateWindow: DefaultDuplicateWindow,
		ReminderAfter:   DefaultReminderAfter,
		AutoCancelAfter: DefaultAutoCancelAfter,
		Now:             time.Now,
	}
}

// Validate checks that every parameter is usable.
func (s Settings) Validate() error {
	if err := s.Slot.Validate(); err != nil {
		return err
	}
	if s.CutoffHour < 0 || s.CutoffHour > 23 {
		return errs.NewValueIsOutOfRangeError("cutoffHour", s.CutoffHour, 0, 23)
	}
	if s.DuplicateWindow <= 0 {
		return errs.NewValueIsInvalidError("duplicateWindow")
	}
	if s.ReminderAfter <= 0 {
		return errs.NewValueIsInvalidError("reminderAfter")
	}
	if s.AutoCancelAfter <= 0 {
		return errs.NewValueIsInvalidError("autoCancelAfter")
	}
	if s.Now == nil {
		return errs.NewValueIsRequiredError("now")
	}
	return nil
}
