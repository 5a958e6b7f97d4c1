package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
)

// CancelRouteCommandHandler handles abandoning a route. Cancelling an
// in-progress route also frees the driver and the vehicle.
type CancelRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCancelRouteCommandHandler creates a handler for cancelling routes.
func NewCancelRouteCommandHandler(uowFactory RouteUoWFactory) CancelRouteCommandHandler {
	return CancelRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route cancellation command.
func (h *CancelRouteCommandHandler) Handle(ctx context.Context, cmd CancelRouteCommand) error {
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

	wasInProgress := routeEntity.Status() == route.StatusInProgress

	if err = routeEntity.Cancel(); err != nil {
		return err
	}

	if wasInProgress {
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

			if err = uow.VehicleRepository().Update(ctx, vehicleEntity); err != nil {
				return err
			}
		}
	}

	if err = uow.RouteRepository().Update(ctx, routeEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
