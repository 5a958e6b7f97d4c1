package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a new fleet vehicle.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID   kernel.UUID
	plate       string
	model       string
	brand       string
	kind        vehicle.Kind
	maxCapacity int
	year        int
	odometerKm  float64

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
func NewCreateVehicleCommand(
	plate, model, brand string,
	kind vehicle.Kind,
	maxCapacity, year int,
	odometerKm float64,
) (CreateVehicleCommand, error) {
	command := CreateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(kernel.NewUUID()),
		command.setPlate(plate),
		command.setKind(kind),
		command.setMaxCapacity(maxCapacity),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	command.model = model
	command.brand = brand
	command.year = year
	command.odometerKm = odometerKm

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }
func (c CreateVehicleCommand) Plate() string          { return c.plate }
func (c CreateVehicleCommand) Model() string          { return c.model }
func (c CreateVehicleCommand) Brand() string          { return c.brand }
func (c CreateVehicleCommand) Kind() vehicle.Kind     { return c.kind }
func (c CreateVehicleCommand) MaxCapacity() int       { return c.maxCapacity }
func (c CreateVehicleCommand) Year() int              { return c.year }
func (c CreateVehicleCommand) OdometerKm() float64    { return c.odometerKm }

func (c *CreateVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vehicleID = id
	return nil
}

func (c *CreateVehicleCommand) setPlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	c.plate = plate
	return nil
}

func (c *CreateVehicleCommand) setKind(kind vehicle.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *CreateVehicleCommand) setMaxCapacity(capacity int) error {
	if capacity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("maxCapacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	c.maxCapacity = capacity
	return nil
}
