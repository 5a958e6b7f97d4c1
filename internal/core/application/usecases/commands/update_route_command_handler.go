package commands

import (
	"context"
)

// UpdateRouteCommandHandler handles route updates. Changing the vehicle
// re-checks the route's current cargo against the new vehicle's maximum.
type UpdateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewUpdateRouteCommandHandler creates a handler for route updates.
func NewUpdateRouteCommandHandler(uowFactory RouteUoWFactory) UpdateRouteCommandHandler {
	return UpdateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route update command.
func (h *UpdateRouteCommandHandler) Handle(ctx context.Context, cmd UpdateRouteCommand) error {
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

	if cmd.DriverID() != nil {
		if _, err = uow.DriverRepository().Get(ctx, *cmd.DriverID()); err != nil {
			return err
		}
	}

	if err = routeEntity.Update(
		cmd.Name(), cmd.Description(),
		cmd.DriverID(), nil,
		cmd.RouteDate(), cmd.EstimatedKm(), cmd.EstimatedMinutes(),
	); err != nil {
		return err
	}

	if cmd.VehicleID() != nil {
		vehicleEntity, err := uow.VehicleRepository().Get(ctx, *cmd.VehicleID())
		if err != nil {
			return err
		}

		if err = routeEntity.AssignVehicle(vehicleEntity.ID(), vehicleEntity.MaxCapacity()); err != nil {
			return err
		}
	}

	if err = uow.RouteRepository().Update(ctx, routeEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
