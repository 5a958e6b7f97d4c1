package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
)

// CreateRouteCommandHandler handles route planning. Referenced drivers,
// vehicles and seed deliveries are resolved inside the transaction, and
// the summed required capacity of the seed set is checked against the
// vehicle's maximum before anything is written.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route planning.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route creation command.
func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
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

	if cmd.DriverID() != nil {
		if _, err := uow.DriverRepository().Get(ctx, *cmd.DriverID()); err != nil {
			return err
		}
	}

	var vehicleMaxCapacity *int

	if cmd.VehicleID() != nil {
		vehicleEntity, err := uow.VehicleRepository().Get(ctx, *cmd.VehicleID())
		if err != nil {
			return err
		}

		maxCapacity := vehicleEntity.MaxCapacity()
		vehicleMaxCapacity = &maxCapacity
	}

	routeEntity, err := route.NewRoute(
		cmd.RouteID(), cmd.Name(), cmd.Description(),
		cmd.DriverID(), cmd.VehicleID(),
		cmd.RouteDate(), cmd.EstimatedKm(), cmd.EstimatedMinutes(),
	)
	if err != nil {
		return err
	}

	for _, deliveryID := range cmd.DeliveryIDs() {
		deliveryEntity, err := uow.DeliveryRepository().Get(ctx, deliveryID)
		if err != nil {
			return err
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
	}

	if err = uow.RouteRepository().Add(ctx, routeEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
