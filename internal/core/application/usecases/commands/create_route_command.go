package commands

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand represents a request to plan a new route, optionally
// seeded with an initial set of deliveries. Seeding fails when the summed
// required capacity exceeds the assigned vehicle's maximum.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID          kernel.UUID
	name             string
	description      string
	driverID         *kernel.UUID
	vehicleID        *kernel.UUID
	routeDate        time.Time
	estimatedKm      float64
	estimatedMinutes int
	deliveryIDs      []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to plan a new route.
func NewCreateRouteCommand(
	name, description string,
	driverID, vehicleID *kernel.UUID,
	routeDate time.Time,
	estimatedKm float64,
	estimatedMinutes int,
	deliveryIDs []kernel.UUID,
) (CreateRouteCommand, error) {
	command := CreateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRouteID(kernel.NewUUID()),
		command.setName(name),
		command.setRouteDate(routeDate),
		command.setEstimates(estimatedKm, estimatedMinutes),
		command.setDeliveryIDs(deliveryIDs),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	command.description = description
	command.driverID = driverID
	command.vehicleID = vehicleID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

func (c CreateRouteCommand) RouteID() kernel.UUID       { return c.routeID }
func (c CreateRouteCommand) Name() string               { return c.name }
func (c CreateRouteCommand) Description() string        { return c.description }
func (c CreateRouteCommand) DriverID() *kernel.UUID     { return c.driverID }
func (c CreateRouteCommand) VehicleID() *kernel.UUID    { return c.vehicleID }
func (c CreateRouteCommand) RouteDate() time.Time       { return c.routeDate }
func (c CreateRouteCommand) EstimatedKm() float64       { return c.estimatedKm }
func (c CreateRouteCommand) EstimatedMinutes() int      { return c.estimatedMinutes }
func (c CreateRouteCommand) DeliveryIDs() []kernel.UUID { return c.deliveryIDs }

func (c *CreateRouteCommand) setRouteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.routeID = id
	return nil
}

func (c *CreateRouteCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateRouteCommand) setRouteDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("routeDate")
	}
	c.routeDate = date
	return nil
}

func (c *CreateRouteCommand) setEstimates(km float64, minutes int) error {
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

func (c *CreateRouteCommand) setDeliveryIDs(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.deliveryIDs = ids
	return nil
}
