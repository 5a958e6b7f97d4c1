package commands

import (
	"context"
)

// CompleteRouteCommandHandler handles finishing a route: the route moves to
// completed, the driver and the vehicle become available again, and the
// recorded actual distance is added to the vehicle's odometer.
type CompleteRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCompleteRouteCommandHandler creates a handler for completing routes.
func NewCompleteRouteCommandHandler(uowFactory RouteUoWFactory) CompleteRouteCommandHandler {
	return CompleteRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route completion command.
func (h *CompleteRouteCommandHandler) Handle(ctx context.Context, cmd CompleteRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeEntity, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if actor := cmd.ActorDriverID(); actor != nil && !routeEntity.BelongsToDriver(*actor) {
		return ErrRouteNotOwnedByDriver
	}

	if err = routeEntity.Complete(cmd.ActualKm(), cmd.ActualMinutes()); err != nil {
		return err
	}

	// Assignments may have been cleared after the route started, so the
	// driver and vehicle bookkeeping only runs for references still set.
	if driverID := routeEntity.DriverID(); driverID != nil {
		driverEntity, getErr := uow.DriverRepository().Get(ctx, *driverID)
		if getErr != nil {
			return getErr
		}

		driverEntity.FinishRoute()

		if err = uow.DriverRepository().Update(ctx, driverEntity); err != nil {
			return err
		}
	}

	if vehicleID := routeEntity.VehicleID(); vehicleID != nil {
		vehicleEntity, getErr := uow.VehicleRepository().Get(ctx, *vehicleID)
		if getErr != nil {
			return getErr
		}

		vehicleEntity.Release()

		if cmd.ActualKm() != nil {
			if err = vehicleEntity.AddOdometer(*cmd.ActualKm()); err != nil {
				return err
			}
		}

		if err = uow.VehicleRepository().Update(ctx, vehicleEntity); err != nil {
			return err
		}
	}

	if err = uow.RouteRepository().Update(ctx, routeEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
