package guard_test

import (
	"errors"
	"testing"

	"waterdelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("command not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_supplied_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		notConstructed := errors.New("CreateOrderCommand must be created via NewCreateOrderCommand")

		err := g.Validate(notConstructed)
		require.Error(t, err)
		assert.Equal(t, notConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// The guard is embedded by value in commands and queries, so copies must
// carry the constructed flag with them.
func TestConstructorGuard_CopiesKeepTheFlag(t *testing.T) {
	type findSlotRequest struct {
		zone  string
		qty   int
		guard guard.ConstructorGuard
	}

	errNotConstructed := errors.New("findSlotRequest must be created via its constructor")

	built := findSlotRequest{
		zone:  "North",
		qty:   2,
		guard: guard.NewConstructorGuard(),
	}
	copied := built

	require.NoError(t, built.guard.Validate(errNotConstructed))
	require.NoError(t, copied.guard.Validate(errNotConstructed))

	var zero findSlotRequest
	err := zero.guard.Validate(errNotConstructed)
	require.Error(t, err)
	assert.Equal(t, errNotConstructed, err)
}

func TestErrDefaultConstructorGuard_Message(t *testing.T) {
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}
