package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateRouteCommand_Success(t *testing.T) {
	driverID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	routeDate := time.Now().AddDate(0, 0, 1)
	deliveryIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	cmd, err := commands.NewCreateRouteCommand(
		"Rota Centro", "Entregas da regiao central",
		&driverID, &vehicleID, routeDate, 42.5, 180, deliveryIDs,
	)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Rota Centro", cmd.Name())
	assert.Equal(t, "Entregas da regiao central", cmd.Description())
	assert.Equal(t, routeDate, cmd.RouteDate())
	assert.InDelta(t, 42.5, cmd.EstimatedKm(), 0.001)
	assert.Equal(t, 180, cmd.EstimatedMinutes())
	assert.Len(t, cmd.DeliveryIDs(), 2)
	require.NoError(t, cmd.RouteID().Validate())
}

func TestNewCreateRouteCommand_OptionalReferences(t *testing.T) {
	cmd, err := commands.NewCreateRouteCommand(
		"Rota Centro", "", nil, nil, time.Now().AddDate(0, 0, 1), 0, 0, nil,
	)

	require.NoError(t, err)
	assert.Nil(t, cmd.DriverID())
	assert.Nil(t, cmd.VehicleID())
	assert.Empty(t, cmd.DeliveryIDs())
}

func TestNewCreateRouteCommand_Errors(t *testing.T) {
	routeDate := time.Now().AddDate(0, 0, 1)

	tests := map[string]struct {
		name             string
		routeDate        time.Time
		estimatedKm      float64
		estimatedMinutes int
	}{
		"empty name":        {"", routeDate, 10, 60},
		"zero route date":   {"Rota Centro", time.Time{}, 10, 60},
		"negative distance": {"Rota Centro", routeDate, -1, 60},
		"negative duration": {"Rota Centro", routeDate, 10, -5},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			_, err := commands.NewCreateRouteCommand(
				test.name, "", nil, nil, test.routeDate,
				test.estimatedKm, test.estimatedMinutes, nil,
			)

			require.Error(t, err)
		})
	}
}

func TestCreateRouteCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateRouteCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateRouteCommandIsNotConstructed)
}

func TestNewCreateRouteCommand_InvalidDeliveryID(t *testing.T) {
	_, err := commands.NewCreateRouteCommand(
		"Rota Centro", "", nil, nil, time.Now().AddDate(0, 0, 1), 10, 60,
		[]kernel.UUID{{}},
	)

	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
