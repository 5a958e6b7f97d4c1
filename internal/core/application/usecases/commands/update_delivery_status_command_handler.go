package commands

import (
	"context"
	"errors"
)

// ErrDeliveryNotOwnedByDriver is returned when a driver tries to change the
// status of a delivery that is not assigned to them. Maps to forbidden at the
// HTTP boundary.
var ErrDeliveryNotOwnedByDriver = errors.New("delivery is not assigned to the acting driver")

// UpdateDeliveryStatusCommandHandler handles delivery status changes.
// Every successful change appends exactly one status history entry; the
// aggregate stamps deliveredAt on the first transition to delivered.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for status changes.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the delivery to the new status and persists the history entry
// in the same transaction.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	if actor := cmd.ActorDriverID(); actor != nil && !deliveryEntity.BelongsToDriver(*actor) {
		return ErrDeliveryNotOwnedByDriver
	}

	history, err := deliveryEntity.ChangeStatus(cmd.NewStatus(), cmd.Note(), cmd.ActorDriverID())
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, deliveryEntity); err != nil {
		return err
	}
	if err = deliveryRepo.AddHistory(ctx, history); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
