package commands

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateRouteCommandIsNotConstructed = errors.New(
	"UpdateRouteCommand must be created via NewUpdateRouteCommand constructor",
)

// UpdateRouteCommand represents a request to change a route's planning
// attributes. Status transitions go through the dedicated start, complete
// and cancel operations instead.
type UpdateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID          kernel.UUID
	name             string
	description      string
	driverID         *kernel.UUID
	vehicleID        *kernel.UUID
	routeDate        time.Time
	estimatedKm      float64
	estimatedMinutes int

	guard guard.ConstructorGuard
}

// NewUpdateRouteCommand creates a command to update a route.
func NewUpdateRouteCommand(
	routeID kernel.UUID,
	name, description string,
	driverID, vehicleID *kernel.UUID,
	routeDate time.Time,
	estimatedKm float64,
	estimatedMinutes int,
) (UpdateRouteCommand, error) {
	command := UpdateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRouteID(routeID),
		command.setName(name),
		command.setRouteDate(routeDate),
		command.setEstimates(estimatedKm, estimatedMinutes),
	); err != nil {
		return UpdateRouteCommand{}, err
	}

	command.description = description
	command.driverID = driverID
	command.vehicleID = vehicleID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRouteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteCommandIsNotConstructed)
}

func (c UpdateRouteCommand) RouteID() kernel.UUID    { return c.routeID }
func (c UpdateRouteCommand) Name() string            { return c.name }
func (c UpdateRouteCommand) Description() string     { return c.description }
func (c UpdateRouteCommand) DriverID() *kernel.UUID  { return c.driverID }
func (c UpdateRouteCommand) VehicleID() *kernel.UUID { return c.vehicleID }
func (c UpdateRouteCommand) RouteDate() time.Time    { return c.routeDate }
func (c UpdateRouteCommand) EstimatedKm() float64    { return c.estimatedKm }
func (c UpdateRouteCommand) EstimatedMinutes() int   { return c.estimatedMinutes }

func (c *UpdateRouteCommand) setRouteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.routeID = id
	return nil
}

func (c *UpdateRouteCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateRouteCommand) setRouteDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("routeDate")
	}
	c.routeDate = date
	return nil
}

func (c *UpdateRouteCommand) setEstimates(km float64, minutes int) error {
	if km < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedKm",
			fmt.Errorf("%.2f is negative", km))
	}
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedMinutes",
			fmt.Errorf("%d is negative", minutes))
	}
	c.estimatedKm = km
	c.estimatedMinutes = minutes
	return nil
}
