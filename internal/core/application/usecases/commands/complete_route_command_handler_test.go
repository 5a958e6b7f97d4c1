package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func inProgressRoute(t *testing.T, driverID, vehicleID *kernel.UUID) *route.Route {
	t.Helper()

	startedAt := time.Now().UTC().Add(-time.Hour)
	testRoute, err := route.RestoreRoute(
		kernel.NewUUID(), "Rota Centro", "",
		driverID, vehicleID,
		time.Now(), route.StatusInProgress,
		42.5, nil, 180, nil,
		nil, time.Now().UTC().Add(-2*time.Hour), &startedAt, nil,
	)
	require.NoError(t, err)
	return testRoute
}

func TestCompleteRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDriver, err := driver.NewDriver(
		kernel.NewUUID(), "Carlos Pereira", "123.456.789-00",
		driver.LicenseD, "98765432100", "", "carlos@transportes.com.br", nil,
	)
	require.NoError(t, err)
	require.NoError(t, testDriver.StartRoute())

	testVehicle, err := vehicle.NewVehicle(
		kernel.NewUUID(), "ABC1D23", "Sprinter", "Mercedes-Benz",
		vehicle.KindVan, 100, 2022, 35000,
	)
	require.NoError(t, err)

	driverID := testDriver.ID()
	vehicleID := testVehicle.ID()
	testRoute := inProgressRoute(t, &driverID, &vehicleID)

	actualKm := 51.3
	actualMinutes := 195
	cmd, err := commands.NewCompleteRouteCommand(testRoute.ID(), nil, &actualKm, &actualMinutes)
	require.NoError(t, err)

	routeRepo := new(MockRoutePlanRouteRepository)
	driverRepo := new(MockStartRouteDriverRepository)
	vehicleRepo := new(MockRoutePlanVehicleRepository)
	uow := new(MockRoutePlanUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RouteRepository").Return(routeRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)

	routeRepo.On("Get", ctx, testRoute.ID()).Return(testRoute, nil).Once()
	driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once()
	vehicleRepo.On("Get", ctx, testVehicle.ID()).Return(testVehicle, nil).Once()
	driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()
	vehicleRepo.On("Update", ctx, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once()
	routeRepo.On("Update", ctx, mock.AnythingOfType("*route.Route")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRoutePlanUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	routeRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	assert.Equal(t, route.StatusCompleted, testRoute.Status())
	assert.NotNil(t, testRoute.CompletedAt())
	assert.Equal(t, driver.StatusAvailable, testDriver.Status())
	assert.Equal(t, vehicle.StatusAvailable, testVehicle.Status())
	assert.InDelta(t, 35051.3, testVehicle.OdometerKm(), 0.001)
}

func TestCompleteRouteCommandHandler_Handle_ClearedAssignmentsStillComplete(t *testing.T) {
	ctx := t.Context()
	testRoute := inProgressRoute(t, nil, nil)

	cmd, err := commands.NewCompleteRouteCommand(testRoute.ID(), nil, nil, nil)
	require.NoError(t, err)

	routeRepo := new(MockRoutePlanRouteRepository)
	uow := new(MockRoutePlanUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RouteRepository").Return(routeRepo)
	routeRepo.On("Get", ctx, testRoute.ID()).Return(testRoute, nil).Once()
	routeRepo.On("Update", ctx, mock.AnythingOfType("*route.Route")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRoutePlanUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, route.StatusCompleted, testRoute.Status())
	uow.AssertNotCalled(t, "DriverRepository")
	uow.AssertNotCalled(t, "VehicleRepository")
	uow.AssertExpectations(t)
}

func TestCancelRouteCommandHandler_Handle_InProgressWithClearedAssignments(t *testing.T) {
	ctx := t.Context()
	testRoute := inProgressRoute(t, nil, nil)

	cmd, err := commands.NewCancelRouteCommand(testRoute.ID(), nil)
	require.NoError(t, err)

	routeRepo := new(MockRoutePlanRouteRepository)
	uow := new(MockRoutePlanUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RouteRepository").Return(routeRepo)
	routeRepo.On("Get", ctx, testRoute.ID()).Return(testRoute, nil).Once()
	routeRepo.On("Update", ctx, mock.AnythingOfType("*route.Route")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRoutePlanUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, route.StatusCancelled, testRoute.Status())
	uow.AssertNotCalled(t, "DriverRepository")
	uow.AssertNotCalled(t, "VehicleRepository")
	uow.AssertExpectations(t)
}
