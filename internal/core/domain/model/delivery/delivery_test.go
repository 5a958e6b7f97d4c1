package delivery_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(),
		"Rua A, 100 - São Paulo", "Av. B, 200 - Campinas",
		"01001-000", "13010-000", 50, 149.90, nil, "")
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("creates a pending delivery with a tracking code", func(t *testing.T) {
		d := validDelivery(t)

		assert.NoError(t, d.Validate())
		assert.Equal(t, delivery.StatusPending, d.Status())
		assert.NoError(t, d.TrackingCode().Validate())
		assert.Len(t, d.TrackingCode().String(), 8)
		assert.Nil(t, d.DeliveredAt())
		assert.Nil(t, d.DriverID())
		assert.Nil(t, d.RouteID())
		assert.WithinDuration(t, time.Now().UTC(), d.RequestedAt(), time.Minute)
	})

	t.Run("tracking codes are unique per delivery", func(t *testing.T) {
		d1 := validDelivery(t)
		d2 := validDelivery(t)

		assert.False(t, d1.TrackingCode().IsEqual(d2.TrackingCode()))
	})

	t.Run("requires a customer", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.UUID{},
			"Rua A", "Av. B", "", "", 10, 0, nil, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires both addresses", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(),
			"", "Av. B", "", "", 10, 0, nil, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(),
			"Rua A", "", "", "", 10, 0, nil, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive required capacity", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(),
			"Rua A", "Av. B", "", "", 0, 0, nil, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeliveryChangeStatus(t *testing.T) {
	t.Run("records exactly one history entry per change", func(t *testing.T) {
		d := validDelivery(t)

		history, err := d.ChangeStatus(delivery.StatusInTransit, "saiu para entrega", nil)

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusInTransit, d.Status())
		assert.Equal(t, delivery.StatusPending, history.PreviousStatus())
		assert.Equal(t, delivery.StatusInTransit, history.NewStatus())
		assert.Equal(t, "saiu para entrega", history.Note())
		assert.True(t, history.DeliveryID().IsEqual(d.ID()))
		assert.Nil(t, history.DriverID())
	})

	t.Run("stamps deliveredAt on first transition to delivered", func(t *testing.T) {
		d := validDelivery(t)

		_, err := d.ChangeStatus(delivery.StatusDelivered, "", nil)
		require.NoError(t, err)
		require.NotNil(t, d.DeliveredAt())
		first := *d.DeliveredAt()

		_, err = d.ChangeStatus(delivery.StatusRescheduled, "", nil)
		require.NoError(t, err)
		_, err = d.ChangeStatus(delivery.StatusDelivered, "", nil)
		require.NoError(t, err)

		assert.Equal(t, first, *d.DeliveredAt())
	})

	t.Run("accepts any transition within the enumerated set", func(t *testing.T) {
		d := validDelivery(t)

		_, err := d.ChangeStatus(delivery.StatusCancelled, "", nil)
		require.NoError(t, err)

		_, err = d.ChangeStatus(delivery.StatusInTransit, "", nil)
		require.NoError(t, err)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		d := validDelivery(t)

		_, err := d.ChangeStatus(delivery.StatusUnknown, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("records the acting driver", func(t *testing.T) {
		d := validDelivery(t)
		driverID := kernel.NewUUID()

		history, err := d.ChangeStatus(delivery.StatusDelivered, "entregue", &driverID)

		require.NoError(t, err)
		require.NotNil(t, history.DriverID())
		assert.True(t, history.DriverID().IsEqual(driverID))
	})
}

func TestDeliveryAssignDriver(t *testing.T) {
	t.Run("assigns and records a history entry with unchanged status", func(t *testing.T) {
		d := validDelivery(t)
		driverID := kernel.NewUUID()

		history, err := d.AssignDriver(driverID, "Carlos Silva")

		require.NoError(t, err)
		assert.True(t, d.BelongsToDriver(driverID))
		assert.Equal(t, history.PreviousStatus(), history.NewStatus())
		assert.Contains(t, history.Note(), "Carlos Silva")
	})

	t.Run("rejects an invalid driver id", func(t *testing.T) {
		d := validDelivery(t)

		_, err := d.AssignDriver(kernel.UUID{}, "Carlos")
		require.Error(t, err)
	})
}

func TestDeliveryRouteMembership(t *testing.T) {
	t.Run("attach and detach", func(t *testing.T) {
		d := validDelivery(t)
		routeID := kernel.NewUUID()

		require.NoError(t, d.AttachToRoute(routeID))
		require.NotNil(t, d.RouteID())
		assert.True(t, d.RouteID().IsEqual(routeID))

		d.DetachFromRoute()
		assert.Nil(t, d.RouteID())
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("restores persisted state including tracking code", func(t *testing.T) {
		code, err := kernel.TrackingCodeFromString("A1B2C3D4")
		require.NoError(t, err)
		requestedAt := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
		deliveredAt := requestedAt.Add(48 * time.Hour)
		driverID := kernel.NewUUID()

		d, err := delivery.RestoreDelivery(kernel.NewUUID(), code, kernel.NewUUID(),
			"Rua A", "Av. B", "01001-000", "13010-000",
			delivery.StatusDelivered, 30, 99.5, requestedAt, nil, &deliveredAt,
			"frágil", &driverID, nil)

		require.NoError(t, err)
		assert.Equal(t, "A1B2C3D4", d.TrackingCode().String())
		assert.Equal(t, delivery.StatusDelivered, d.Status())
		assert.Equal(t, requestedAt, d.RequestedAt())
		require.NotNil(t, d.DeliveredAt())
	})

	t.Run("rejects a zero tracking code", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(kernel.NewUUID(), kernel.TrackingCode{},
			kernel.NewUUID(), "Rua A", "Av. B", "", "",
			delivery.StatusPending, 10, 0, time.Now(), nil, nil, "", nil, nil)

		require.Error(t, err)
	})
}

func TestDeliveryStatus(t *testing.T) {
	t.Run("parses wire values", func(t *testing.T) {
		for _, s := range []string{"pending", "in_transit", "delivered", "cancelled", "rescheduled"} {
			status, err := delivery.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := delivery.StatusFromString("lost")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeliveryValidate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var d delivery.Delivery

		assert.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
	})
}
