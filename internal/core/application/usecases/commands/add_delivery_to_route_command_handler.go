package commands

import (
	"context"
)

// AddDeliveryToRouteCommandHandler handles attaching a delivery to a route.
// The capacity check runs against the route's assigned vehicle, if any.
type AddDeliveryToRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewAddDeliveryToRouteCommandHandler creates a handler for attaching deliveries to routes.
func NewAddDeliveryToRouteCommandHandler(uowFactory RouteUoWFactory) AddDeliveryToRouteCommandHandler {
	return AddDeliveryToRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attach command.
func (h *AddDeliveryToRouteCommandHandler) Handle(ctx context.Context, cmd AddDeliveryToRouteCommand) error {
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

	deliveryEntity, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	var vehicleMaxCapacity *int

	if routeEntity.VehicleID() != nil {
		vehicleEntity, err := uow.VehicleRepository().Get(ctx, *routeEntity.VehicleID())
		if err != nil {
			return err
		}

		maxCapacity := vehicleEntity.MaxCapacity()
		vehicleMaxCapacity = &maxCapacity
	}

	if err = routeEntity.AddDelivery(
		deliveryEntity.ID(), deliveryEntity.RequiredCapacity(), vehicleMaxCapacity,
	); err != nil {
		return err
	}

	if err = deliveryEntity.AttachToRoute(routeEntity.ID()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, deliveryEntity); err != nil {
		return err
	}

	if err = uow.RouteRepository().Update(ctx, routeEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
