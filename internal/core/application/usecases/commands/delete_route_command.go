package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteRouteCommandIsNotConstructed = errors.New(
	"DeleteRouteCommand must be created via NewDeleteRouteCommand constructor",
)

// DeleteRouteCommand represents a request to remove a route.
// Attached deliveries are detached, not deleted.
type DeleteRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRouteCommand creates a command to delete a route.
func NewDeleteRouteCommand(routeID kernel.UUID) (DeleteRouteCommand, error) {
	command := DeleteRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := routeID.Validate(); err != nil {
		return DeleteRouteCommand{}, err
	}
	command.routeID = routeID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRouteCommandIsNotConstructed)
}

func (c DeleteRouteCommand) RouteID() kernel.UUID { return c.routeID }
