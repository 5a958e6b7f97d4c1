package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/delivery"
)

// ErrRouteNotOwnedByDriver is returned when a driver tries to operate a route
// assigned to someone else. Maps to forbidden at the HTTP boundary.
var ErrRouteNotOwnedByDriver = errors.New("route is not assigned to the acting driver")

// StartRouteCommandHandler handles putting a route on the road: the route
// moves to in_progress, the driver to en_route, the vehicle to in_use, and
// every pending delivery on the route to in_transit with a history entry.
type StartRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewStartRouteCommandHandler creates a handler for starting routes.
func NewStartRouteCommandHandler(uowFactory RouteUoWFactory) StartRouteCommandHandler {
	return StartRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route start command.
func (h *StartRouteCommandHandler) Handle(ctx context.Context, cmd StartRouteCommand) error {
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

	if err = routeEntity.Start(); err != nil {
		return err
	}

	driverEntity, err := uow.DriverRepository().Get(ctx, *routeEntity.DriverID())
	if err != nil {
		return err
	}

	if err = driverEntity.StartRoute(); err != nil {
		return err
	}

	vehicleEntity, err := uow.VehicleRepository().Get(ctx, *routeEntity.VehicleID())
	if err != nil {
		return err
	}

	if current := vehicleEntity.CurrentDriverID(); current == nil || !current.IsEqual(driverEntity.ID()) {
		if err = vehicleEntity.AssignDriver(driverEntity.ID()); err != nil {
			return err
		}
	}

	deliveryRepo := uow.DeliveryRepository()

	for _, item := range routeEntity.Items() {
		deliveryEntity, err := deliveryRepo.Get(ctx, item.DeliveryID())
		if err != nil {
			return err
		}

		if deliveryEntity.Status() != delivery.StatusPending {
			continue
		}

		driverID := driverEntity.ID()
		history, err := deliveryEntity.ChangeStatus(
			delivery.StatusInTransit, "Rota iniciada", &driverID,
		)
		if err != nil {
			return err
		}

		if err = deliveryRepo.Update(ctx, deliveryEntity); err != nil {
			return err
		}
		if err = deliveryRepo.AddHistory(ctx, history); err != nil {
			return err
		}
	}

	if err = uow.DriverRepository().Update(ctx, driverEntity); err != nil {
		return err
	}
	if err = uow.VehicleRepository().Update(ctx, vehicleEntity); err != nil {
		return err
	}
	if err = uow.RouteRepository().Update(ctx, routeEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
