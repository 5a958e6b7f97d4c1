package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAddDeliveryToRouteCommandIsNotConstructed = errors.New(
	"AddDeliveryToRouteCommand must be created via NewAddDeliveryToRouteCommand constructor",
)

// AddDeliveryToRouteCommand represents a request to attach a delivery to a
// route. Fails when the delivery is already on the route or the added cargo
// would exceed the assigned vehicle's capacity.
type AddDeliveryToRouteCommand struct { //nolint:recvcheck //using for validation
	routeID    kernel.UUID
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddDeliveryToRouteCommand creates a command to attach a delivery to a route.
func NewAddDeliveryToRouteCommand(routeID, deliveryID kernel.UUID) (AddDeliveryToRouteCommand, error) {
	command := AddDeliveryToRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		routeID.Validate(),
		deliveryID.Validate(),
	); err != nil {
		return AddDeliveryToRouteCommand{}, err
	}

	command.routeID = routeID
	command.deliveryID = deliveryID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDeliveryToRouteCommand) Validate() error {
	return c.guard.Validate(ErrAddDeliveryToRouteCommandIsNotConstructed)
}

func (c AddDeliveryToRouteCommand) RouteID() kernel.UUID    { return c.routeID }
func (c AddDeliveryToRouteCommand) DeliveryID() kernel.UUID { return c.deliveryID }
