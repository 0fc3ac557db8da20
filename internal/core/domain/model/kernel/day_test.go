package kernel_test

import (
	"testing"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDay(t *testing.T) {
	t.Run("creates_valid_day", func(t *testing.T) {
		d := kernel.NewDay(2025, time.January, 6)

		require.NoError(t, d.Validate())
		assert.Equal(t, "2025-01-06", d.String())
		assert.Equal(t, time.Monday, d.Weekday())
	})

	t.Run("normalizes_overflowing_dates", func(t *testing.T) {
		d := kernel.NewDay(2025, time.January, 32)
		assert.Equal(t, "2025-02-01", d.String())
	})
}

func TestDayOf(t *testing.T) {
	t.Run("truncates_time_of_day", func(t *testing.T) {
		instant := time.Date(2025, time.January, 6, 16, 59, 59, 0, time.UTC)
		d := kernel.DayOf(instant)

		assert.Equal(t, "2025-01-06", d.String())
	})

	t.Run("uses_calendar_date_of_the_instant_location", func(t *testing.T) {
		loc := time.FixedZone("UTC+5", 5*60*60)
		// 01:00 local on Jan 7 is still Jan 6 in UTC; the local date wins.
		instant := time.Date(2025, time.January, 7, 1, 0, 0, 0, loc)

		assert.Equal(t, "2025-01-07", kernel.DayOf(instant).String())
	})
}

func TestDayFromString(t *testing.T) {
	t.Run("parses_canonical_format", func(t *testing.T) {
		d, err := kernel.DayFromString("2025-01-06")

		require.NoError(t, err)
		assert.Equal(t, "2025-01-06", d.String())
	})

	t.Run("rejects_invalid_input", func(t *testing.T) {
		_, err := kernel.DayFromString("06.01.2025")
		require.Error(t, err)

		_, err = kernel.DayFromString("")
		require.Error(t, err)
	})
}

func TestDay_IsWeekend(t *testing.T) {
	tests := []struct {
		name    string
		day     kernel.Day
		weekend bool
	}{
		{"monday", kernel.NewDay(2025, time.January, 6), false},
		{"friday", kernel.NewDay(2025, time.January, 3), false},
		{"saturday", kernel.NewDay(2025, time.January, 4), true},
		{"sunday", kernel.NewDay(2025, time.January, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.weekend, tt.day.IsWeekend())
		})
	}
}

func TestDay_Arithmetic(t *testing.T) {
	t.Run("next_crosses_month_boundary", func(t *testing.T) {
		d := kernel.NewDay(2025, time.January, 31)
		assert.Equal(t, "2025-02-01", d.Next().String())
	})

	t.Run("add_days", func(t *testing.T) {
		d := kernel.NewDay(2025, time.January, 6)
		assert.Equal(t, "2025-01-13", d.AddDays(7).String())
		assert.Equal(t, "2025-01-05", d.AddDays(-1).String())
	})

	t.Run("before_and_equal", func(t *testing.T) {
		a := kernel.NewDay(2025, time.January, 6)
		b := kernel.NewDay(2025, time.January, 7)

		assert.True(t, a.Before(b))
		assert.False(t, b.Before(a))
		assert.True(t, a.IsEqual(kernel.NewDay(2025, time.January, 6)))
		assert.False(t, a.IsEqual(b))
	})
}

func TestDay_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var d kernel.Day

		assert.True(t, d.IsZero())
		require.Error(t, d.Validate())
	})

	t.Run("constructed_day_is_valid", func(t *testing.T) {
		d := kernel.NewDay(2025, time.January, 6)

		assert.False(t, d.IsZero())
		require.NoError(t, d.Validate())
	})
}
