package commands

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler handles delivery registration.
// The customer reference is resolved inside the transaction so an unknown
// customer fails before anything is written.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery registration.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery creation command.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	deliveryEntity, err := delivery.NewDelivery(
		cmd.DeliveryID(), cmd.CustomerID(),
		cmd.OriginAddress(), cmd.DestinationAddress(),
		cmd.OriginPostal(), cmd.DestinationPostal(),
		cmd.RequiredCapacity(), cmd.FreightValue(),
		cmd.ExpectedDate(), cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, deliveryEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
