package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCompleteRouteCommandIsNotConstructed = errors.New(
	"CompleteRouteCommand must be created via NewCompleteRouteCommand constructor",
)

// CompleteRouteCommand represents a request to finish an in-progress route,
// optionally recording the actual distance and duration. ActorDriverID is nil
// for back-office users; drivers may only complete their own routes.
type CompleteRouteCommand struct { //nolint:recvcheck //using for validation
	routeID       kernel.UUID
	actorDriverID *kernel.UUID
	actualKm      *float64
	actualMinutes *int

	guard guard.ConstructorGuard
}

// NewCompleteRouteCommand creates a command to complete a route.
func NewCompleteRouteCommand(
	routeID kernel.UUID,
	actorDriverID *kernel.UUID,
	actualKm *float64,
	actualMinutes *int,
) (CompleteRouteCommand, error) {
	command := CompleteRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := routeID.Validate(); err != nil {
		return CompleteRouteCommand{}, err
	}
	if actorDriverID != nil {
		if err := actorDriverID.Validate(); err != nil {
			return CompleteRouteCommand{}, err
		}
	}
	if actualKm != nil && *actualKm < 0 {
		return CompleteRouteCommand{}, errs.NewValueIsInvalidErrorWithCause("actualKm",
			fmt.Errorf("%.2f is negative", *actualKm))
	}
	if actualMinutes != nil && *actualMinutes < 0 {
		return CompleteRouteCommand{}, errs.NewValueIsInvalidErrorWithCause("actualMinutes",
			fmt.Errorf("%d is negative", *actualMinutes))
	}

	command.routeID = routeID
	command.actorDriverID = actorDriverID
	command.actualKm = actualKm
	command.actualMinutes = actualMinutes

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRouteCommandIsNotConstructed)
}

func (c CompleteRouteCommand) RouteID() kernel.UUID        { return c.routeID }
func (c CompleteRouteCommand) ActorDriverID() *kernel.UUID { return c.actorDriverID }
func (c CompleteRouteCommand) ActualKm() *float64          { return c.actualKm }
func (c CompleteRouteCommand) ActualMinutes() *int         { return c.actualMinutes }
