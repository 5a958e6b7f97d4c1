package commands

import (
	"context"
)

// DeleteRouteCommandHandler handles route removal. Deliveries on the route
// are detached inside the same transaction so they can be re-planned.
type DeleteRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewDeleteRouteCommandHandler creates a handler for route removal.
func NewDeleteRouteCommandHandler(uowFactory RouteUoWFactory) DeleteRouteCommandHandler {
	return DeleteRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route deletion command.
func (h *DeleteRouteCommandHandler) Handle(ctx context.Context, cmd DeleteRouteCommand) error {
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

	for _, item := range routeEntity.Items() {
		deliveryEntity, err := uow.DeliveryRepository().Get(ctx, item.DeliveryID())
		if err != nil {
			return err
		}

		deliveryEntity.DetachFromRoute()

		if err = uow.DeliveryRepository().Update(ctx, deliveryEntity); err != nil {
			return err
		}
	}

	if err = uow.RouteRepository().Delete(ctx, routeEntity.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
