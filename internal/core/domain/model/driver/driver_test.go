package driver_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "Carlos Silva", "123.456.789-09",
		driver.LicenseD, "98765432100", "+55 11 97777-0000", "carlos@example.com", nil)
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("creates an available driver", func(t *testing.T) {
		d := validDriver(t)

		assert.NoError(t, d.Validate())
		assert.Equal(t, driver.StatusAvailable, d.Status())
		assert.True(t, d.CanReceiveDeliveries())
		assert.Nil(t, d.AccountID())
	})

	t.Run("requires name, tax id, license number and email", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "", "", driver.LicenseB, "", "", "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid license category", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "Carlos", "123.456.789-09",
			driver.LicenseCategory("Z"), "98765432100", "", "carlos@example.com", nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDriverAccountUsername(t *testing.T) {
	t.Run("derives username from tax id digits", func(t *testing.T) {
		d := validDriver(t)

		assert.Equal(t, "motorista_12345678909", d.AccountUsername())
	})
}

func TestDriverRouteLifecycle(t *testing.T) {
	t.Run("start route moves driver to en_route", func(t *testing.T) {
		d := validDriver(t)

		require.NoError(t, d.StartRoute())
		assert.Equal(t, driver.StatusEnRoute, d.Status())
		assert.False(t, d.CanReceiveDeliveries())
	})

	t.Run("en_route driver cannot start another route", func(t *testing.T) {
		d := validDriver(t)
		require.NoError(t, d.StartRoute())

		err := d.StartRoute()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("finish route returns driver to available", func(t *testing.T) {
		d := validDriver(t)
		require.NoError(t, d.StartRoute())

		d.FinishRoute()
		assert.Equal(t, driver.StatusAvailable, d.Status())
	})
}

func TestDriverLinkAccount(t *testing.T) {
	t.Run("links a valid account", func(t *testing.T) {
		d := validDriver(t)
		accountID := kernel.NewUUID()

		require.NoError(t, d.LinkAccount(accountID))
		require.NotNil(t, d.AccountID())
		assert.True(t, d.AccountID().IsEqual(accountID))
	})

	t.Run("rejects an invalid account id", func(t *testing.T) {
		d := validDriver(t)

		require.Error(t, d.LinkAccount(kernel.UUID{}))
	})
}

func TestDriverStatus(t *testing.T) {
	t.Run("parses wire values", func(t *testing.T) {
		for _, s := range []string{"active", "inactive", "en_route", "available"} {
			status, err := driver.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := driver.StatusFromString("resting")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("inactive driver cannot receive deliveries", func(t *testing.T) {
		assert.False(t, driver.StatusInactive.CanReceiveDeliveries())
		assert.False(t, driver.StatusEnRoute.CanReceiveDeliveries())
		assert.True(t, driver.StatusActive.CanReceiveDeliveries())
		assert.True(t, driver.StatusAvailable.CanReceiveDeliveries())
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		registeredAt := time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)
		accountID := kernel.NewUUID()

		d, err := driver.RestoreDriver(kernel.NewUUID(), "Carlos", "123.456.789-09",
			driver.LicenseE, "98765432100", "", "carlos@example.com",
			driver.StatusEnRoute, nil, &accountID, registeredAt)

		require.NoError(t, err)
		assert.Equal(t, driver.StatusEnRoute, d.Status())
		assert.Equal(t, registeredAt, d.RegisteredAt())
		require.NotNil(t, d.AccountID())
		assert.True(t, d.AccountID().IsEqual(accountID))
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := driver.RestoreDriver(kernel.NewUUID(), "Carlos", "123.456.789-09",
			driver.LicenseB, "98765432100", "", "carlos@example.com",
			driver.StatusUnknown, nil, nil, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDriverValidate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var d driver.Driver

		assert.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}
