package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignVehicleCommandIsNotConstructed = errors.New(
	"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
)

// AssignVehicleCommand represents a request to put a driver behind the wheel
// of a vehicle.
type AssignVehicleCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand creates a command to assign a vehicle to a driver.
func NewAssignVehicleCommand(driverID, vehicleID kernel.UUID) (AssignVehicleCommand, error) {
	command := AssignVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driverID.Validate(),
		vehicleID.Validate(),
	); err != nil {
		return AssignVehicleCommand{}, err
	}
	command.driverID = driverID
	command.vehicleID = vehicleID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

func (c AssignVehicleCommand) DriverID() kernel.UUID  { return c.driverID }
func (c AssignVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }
