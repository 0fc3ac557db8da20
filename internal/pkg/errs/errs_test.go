package errs_test

import (
	"errors"
	"testing"

	"waterdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "3f1c9a4e-7d20-4b7e-9f05-58c1a2b6d410")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "3f1c9a4e-7d20-4b7e-9f05-58c1a2b6d410", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 3f1c9a4e-7d20-4b7e-9f05-58c1a2b6d410", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("addressId", "a-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: addressId, ID is: a-1 (cause: record not found)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("cutoffHour")

		assert.Equal(t, "cutoffHour", err.ParamName)
		assert.Equal(t, "value is invalid: cutoffHour", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("0 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: 0 is not greater than 0)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("reports_bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("cutoffHour", 25, 0, 23)

		assert.Equal(t, 25, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 23, err.Max)
		assert.Equal(t, "value is invalid: 25 is cutoffHour, min value is 0, max value is 23", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("message_stays_single_line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("comment", "first\nsecond", 0, 10)

		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("zone")

		assert.Equal(t, "zone", err.ParamName)
		assert.Equal(t, "value is required: zone", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("address has no zone assigned")
		err := errs.NewValueIsRequiredErrorWithCause("zone", cause)

		assert.Equal(t, "value is required: zone (cause: address has no zone assigned)", err.Error())
	})
}

func TestConcurrencyConflictError(t *testing.T) {
	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("ERROR: could not serialize access (SQLSTATE 40001)")
		err := errs.NewConcurrencyConflictError("commit", cause)

		assert.Equal(t, "commit", err.Operation)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"concurrency conflict: commit (cause: ERROR: could not serialize access (SQLSTATE 40001))",
			err.Error())
		assert.Equal(t, errs.ErrConcurrencyConflict, err.Unwrap())
	})

	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewConcurrencyConflictError("lock zone capacity", nil)

		require.NoError(t, err.Cause)
		assert.Equal(t, "concurrency conflict: lock zone capacity", err.Error())
	})
}

func TestSentinelClassification(t *testing.T) {
	// The HTTP layer maps errors to responses through errors.Is against
	// the sentinels, so every typed error must unwrap to its sentinel.
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"object_not_found", errs.NewObjectNotFoundError("orderId", "o-1"), errs.ErrObjectNotFound},
		{"value_is_invalid", errs.NewValueIsInvalidError("qtyA"), errs.ErrValueIsInvalid},
		{"value_is_out_of_range", errs.NewValueIsOutOfRangeError("cutoffHour", 25, 0, 23), errs.ErrValueIsOutOfRange},
		{"value_is_required", errs.NewValueIsRequiredError("userId"), errs.ErrValueIsRequired},
		{"concurrency_conflict", errs.NewConcurrencyConflictError("commit", errors.New("deadlock")), errs.ErrConcurrencyConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}
