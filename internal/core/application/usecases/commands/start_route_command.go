package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrStartRouteCommandIsNotConstructed = errors.New(
	"StartRouteCommand must be created via NewStartRouteCommand constructor",
)

// StartRouteCommand represents a request to put a planned route on the road.
// ActorDriverID is nil for back-office users; drivers may only start their
// own routes.
type StartRouteCommand struct { //nolint:recvcheck //using for validation
	routeID       kernel.UUID
	actorDriverID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartRouteCommand creates a command to start a route.
func NewStartRouteCommand(routeID kernel.UUID, actorDriverID *kernel.UUID) (StartRouteCommand, error) {
	command := StartRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := routeID.Validate(); err != nil {
		return StartRouteCommand{}, err
	}
	if actorDriverID != nil {
		if err := actorDriverID.Validate(); err != nil {
			return StartRouteCommand{}, err
		}
	}

	command.routeID = routeID
	command.actorDriverID = actorDriverID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRouteCommand) Validate() error {
	return c.guard.Validate(ErrStartRouteCommandIsNotConstructed)
}

func (c StartRouteCommand) RouteID() kernel.UUID        { return c.routeID }
func (c StartRouteCommand) ActorDriverID() *kernel.UUID { return c.actorDriverID }
