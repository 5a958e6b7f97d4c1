package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRemoveDeliveryFromRouteCommandIsNotConstructed = errors.New(
	"RemoveDeliveryFromRouteCommand must be created via NewRemoveDeliveryFromRouteCommand constructor",
)

// RemoveDeliveryFromRouteCommand represents a request to detach a delivery
// from a route.
type RemoveDeliveryFromRouteCommand struct { //nolint:recvcheck //using for validation
	routeID    kernel.UUID
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveDeliveryFromRouteCommand creates a command to detach a delivery from a route.
func NewRemoveDeliveryFromRouteCommand(routeID, deliveryID kernel.UUID) (RemoveDeliveryFromRouteCommand, error) {
	command := RemoveDeliveryFromRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		routeID.Validate(),
		deliveryID.Validate(),
	); err != nil {
		return RemoveDeliveryFromRouteCommand{}, err
	}

	command.routeID = routeID
	command.deliveryID = deliveryID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveDeliveryFromRouteCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDeliveryFromRouteCommandIsNotConstructed)
}

func (c RemoveDeliveryFromRouteCommand) RouteID() kernel.UUID    { return c.routeID }
func (c RemoveDeliveryFromRouteCommand) DeliveryID() kernel.UUID { return c.deliveryID }
