package commands

import (
	"context"
)

// RemoveDeliveryFromRouteCommandHandler handles detaching a delivery from a route.
type RemoveDeliveryFromRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewRemoveDeliveryFromRouteCommandHandler creates a handler for detaching deliveries from routes.
func NewRemoveDeliveryFromRouteCommandHandler(uowFactory RouteUoWFactory) RemoveDeliveryFromRouteCommandHandler {
	return RemoveDeliveryFromRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the detach command.
func (h *RemoveDeliveryFromRouteCommandHandler) Handle(ctx context.Context, cmd RemoveDeliveryFromRouteCommand) error {
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

	if err = routeEntity.RemoveDelivery(cmd.DeliveryID()); err != nil {
		return err
	}

	deliveryEntity, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	deliveryEntity.DetachFromRoute()

	if err = uow.DeliveryRepository().Update(ctx, deliveryEntity); err != nil {
		return err
	}

	if err = uow.RouteRepository().Update(ctx, routeEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
