package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateVehicleCommandIsNotConstructed = errors.New(
	"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
)

// UpdateVehicleCommand represents a request to change a vehicle's data.
// The plate is immutable and therefore not part of the command.
type UpdateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID   kernel.UUID
	model       string
	brand       string
	kind        vehicle.Kind
	maxCapacity int
	year        int
	odometerKm  float64
	status      vehicle.Status

	guard guard.ConstructorGuard
}

// NewUpdateVehicleCommand creates a command to update an existing vehicle.
func NewUpdateVehicleCommand(
	vehicleID kernel.UUID,
	model, brand string,
	kind vehicle.Kind,
	maxCapacity, year int,
	odometerKm float64,
	status vehicle.Status,
) (UpdateVehicleCommand, error) {
	command := UpdateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(vehicleID),
		command.setKind(kind),
		command.setMaxCapacity(maxCapacity),
		command.setStatus(status),
	); err != nil {
		return UpdateVehicleCommand{}, err
	}

	command.model = model
	command.brand = brand
	command.year = year
	command.odometerKm = odometerKm

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

func (c UpdateVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }
func (c UpdateVehicleCommand) Model() string          { return c.model }
func (c UpdateVehicleCommand) Brand() string          { return c.brand }
func (c UpdateVehicleCommand) Kind() vehicle.Kind     { return c.kind }
func (c UpdateVehicleCommand) MaxCapacity() int       { return c.maxCapacity }
func (c UpdateVehicleCommand) Year() int              { return c.year }
func (c UpdateVehicleCommand) OdometerKm() float64    { return c.odometerKm }
func (c UpdateVehicleCommand) Status() vehicle.Status { return c.status }

func (c *UpdateVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vehicleID = id
	return nil
}

func (c *UpdateVehicleCommand) setKind(kind vehicle.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *UpdateVehicleCommand) setMaxCapacity(capacity int) error {
	if capacity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("maxCapacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	c.maxCapacity = capacity
	return nil
}

func (c *UpdateVehicleCommand) setStatus(status vehicle.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
