package commands

import (
	"context"
)

// DeleteVehicleCommandHandler handles vehicle removal.
type DeleteVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewDeleteVehicleCommandHandler creates a handler for vehicle removal.
func NewDeleteVehicleCommandHandler(uowFactory VehicleUoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the vehicle exists and removes it.
func (h *DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
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

	vehicleRepo := uow.VehicleRepository()
	if _, err := vehicleRepo.Get(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	if err := vehicleRepo.Delete(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
