package commands

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
)

// ErrDriverCannotReceiveDeliveries is returned when the target driver is
// inactive or already en route.
var ErrDriverCannotReceiveDeliveries = errors.New("driver cannot receive deliveries")

// AssignDriverCommandHandler assigns a delivery to a driver.
// The driver must be active or available. The assignment appends a history
// entry with unchanged status so the trail shows who took over the delivery.
type AssignDriverCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory DeliveryUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the driver and persists the history entry transactionally.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	driverEntity, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if !driverEntity.CanReceiveDeliveries() {
		return fmt.Errorf("%w: %w", ErrDriverCannotReceiveDeliveries,
			errs.NewValueIsInvalidError("driverStatus"))
	}

	deliveryRepo := uow.DeliveryRepository()
	deliveryEntity, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	history, err := deliveryEntity.AssignDriver(driverEntity.ID(), driverEntity.Name())
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
