package commands

import (
	"context"
)

// UpdateDeliveryCommandHandler handles delivery planning updates.
type UpdateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryCommandHandler creates a handler for delivery updates.
func NewUpdateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the delivery, applies the changes and persists the result.
func (h *UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	deliveryEntity, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = deliveryEntity.Update(
		cmd.OriginAddress(), cmd.DestinationAddress(),
		cmd.OriginPostal(), cmd.DestinationPostal(),
		cmd.RequiredCapacity(), cmd.FreightValue(),
		cmd.ExpectedDate(), cmd.Notes(),
	); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, deliveryEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
