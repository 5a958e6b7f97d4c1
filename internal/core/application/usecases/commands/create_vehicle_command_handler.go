package commands

import (
	"context"

	"logistics/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler handles vehicle registration.
// A duplicate plate surfaces as a conflict from the repository.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle creation command.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
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

	vehicleEntity, err := vehicle.NewVehicle(
		cmd.VehicleID(), cmd.Plate(), cmd.Model(), cmd.Brand(),
		cmd.Kind(), cmd.MaxCapacity(), cmd.Year(), cmd.OdometerKm(),
	)
	if err != nil {
		return err
	}

	if err = uow.VehicleRepository().Add(ctx, vehicleEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
