package commands

import (
	"context"
)

// AssignVehicleCommandHandler puts a driver behind the wheel of a vehicle.
// The target vehicle must be available. A vehicle the driver previously had
// in use is released in the same transaction.
type AssignVehicleCommandHandler struct {
	uowFactory DriverVehicleUoWFactory
}

// NewAssignVehicleCommandHandler creates a handler for vehicle assignment.
func NewAssignVehicleCommandHandler(uowFactory DriverVehicleUoWFactory) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle assignment command.
func (h *AssignVehicleCommandHandler) Handle(ctx context.Context, cmd AssignVehicleCommand) error {
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

	vehicleRepo := uow.VehicleRepository()
	vehicleEntity, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	previous, err := vehicleRepo.GetByCurrentDriver(ctx, driverEntity.ID())
	if err != nil {
		return err
	}
	if previous != nil && !previous.IsEqual(vehicleEntity) {
		previous.Release()
		if err = vehicleRepo.Update(ctx, previous); err != nil {
			return err
		}
	}

	if err = vehicleEntity.AssignDriver(driverEntity.ID()); err != nil {
		return err
	}
	if err = vehicleRepo.Update(ctx, vehicleEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
