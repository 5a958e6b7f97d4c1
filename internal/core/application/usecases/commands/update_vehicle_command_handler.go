package commands

import (
	"context"
)

// UpdateVehicleCommandHandler handles vehicle data updates.
type UpdateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewUpdateVehicleCommandHandler creates a handler for vehicle updates.
func NewUpdateVehicleCommandHandler(uowFactory VehicleUoWFactory) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the vehicle, applies the changes and persists the result.
func (h *UpdateVehicleCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleCommand) error {
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
	vehicleEntity, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if err = vehicleEntity.Update(
		cmd.Model(), cmd.Brand(), cmd.Kind(), cmd.MaxCapacity(),
		cmd.Year(), cmd.OdometerKm(), cmd.Status(),
	); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, vehicleEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
