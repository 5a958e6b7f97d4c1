package guard_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// Guards are plain values; copies must validate independently.
func TestConstructorGuard_CopySemantics(t *testing.T) {
	g := guard.NewConstructorGuard()
	cp := g

	require.NoError(t, g.Validate(errors.New("boom")))
	require.NoError(t, cp.Validate(errors.New("boom")))
}

func TestConstructorGuardUsage(t *testing.T) {
	type plate struct {
		value string
		guard guard.ConstructorGuard
	}

	errPlateNotConstructed := errors.New("Plate must be created via newPlate")

	newPlate := func(v string) (plate, error) {
		if v == "" {
			return plate{}, errors.New("plate is required")
		}
		return plate{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_object_passes_validation", func(t *testing.T) {
		p, err := newPlate("ABC1D23")
		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errPlateNotConstructed))
		assert.Equal(t, "ABC1D23", p.value)
	})

	t.Run("zero_value_object_fails_validation", func(t *testing.T) {
		var p plate
		err := p.guard.Validate(errPlateNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errPlateNotConstructed, err)
	})
}
