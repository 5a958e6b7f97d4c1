package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCancelRouteCommandIsNotConstructed = errors.New(
	"CancelRouteCommand must be created via NewCancelRouteCommand constructor",
)

// CancelRouteCommand represents a request to abandon a planned or
// in-progress route.
type CancelRouteCommand struct { //nolint:recvcheck //using for validation
	routeID       kernel.UUID
	actorDriverID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelRouteCommand creates a command to cancel a route.
func NewCancelRouteCommand(routeID kernel.UUID, actorDriverID *kernel.UUID) (CancelRouteCommand, error) {
	command := CancelRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := routeID.Validate(); err != nil {
		return CancelRouteCommand{}, err
	}
	if actorDriverID != nil {
		if err := actorDriverID.Validate(); err != nil {
			return CancelRouteCommand{}, err
		}
	}

	command.routeID = routeID
	command.actorDriverID = actorDriverID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelRouteCommand) Validate() error {
	return c.guard.Validate(ErrCancelRouteCommandIsNotConstructed)
}

func (c CancelRouteCommand) RouteID() kernel.UUID        { return c.routeID }
func (c CancelRouteCommand) ActorDriverID() *kernel.UUID { return c.actorDriverID }
