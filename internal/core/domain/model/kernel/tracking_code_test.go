package kernel_test

import (
	"strings"
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingCode(t *testing.T) {
	t.Run("should create a valid tracking code", func(t *testing.T) {
		code := kernel.NewTrackingCode()

		assert.NoError(t, code.Validate())
		assert.Len(t, code.String(), 8)
		assert.Equal(t, strings.ToUpper(code.String()), code.String())
	})

	t.Run("should create unique tracking codes", func(t *testing.T) {
		code1 := kernel.NewTrackingCode()
		code2 := kernel.NewTrackingCode()

		assert.False(t, code1.IsEqual(code2))
	})
}

func TestTrackingCodeFromString(t *testing.T) {
	t.Run("should accept 8 uppercase hex characters", func(t *testing.T) {
		code, err := kernel.TrackingCodeFromString("A1B2C3D4")

		require.NoError(t, err)
		assert.Equal(t, "A1B2C3D4", code.String())
		assert.NoError(t, code.Validate())
	})

	t.Run("should normalize lowercase input", func(t *testing.T) {
		code, err := kernel.TrackingCodeFromString("a1b2c3d4")

		require.NoError(t, err)
		assert.Equal(t, "A1B2C3D4", code.String())
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		code, err := kernel.TrackingCodeFromString("  a1b2c3d4 ")

		require.NoError(t, err)
		assert.Equal(t, "A1B2C3D4", code.String())
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		invalid := []string{"", "A1B2C3", "A1B2C3D4E5", "G1B2C3D4", "A1B2-3D4"}

		for _, s := range invalid {
			_, err := kernel.TrackingCodeFromString(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input: %q", s)
		}
	})
}

func TestTrackingCodeValidate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var code kernel.TrackingCode

		err := code.Validate()
		require.Error(t, err)
		assert.Equal(t, kernel.ErrTrackingCodeIsNotConstructed, err)
	})
}

func TestTrackingCodeIsEqual(t *testing.T) {
	t.Run("equal codes compare equal", func(t *testing.T) {
		code1, err := kernel.TrackingCodeFromString("A1B2C3D4")
		require.NoError(t, err)
		code2, err := kernel.TrackingCodeFromString("a1b2c3d4")
		require.NoError(t, err)

		assert.True(t, code1.IsEqual(code2))
	})
}
