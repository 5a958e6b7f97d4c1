package commands

import (
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a request to move a delivery to a new
// status. actorDriverID identifies the driver performing the change; nil means
// a back-office operator, who may change any delivery.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	newStatus     delivery.Status
	note          string
	actorDriverID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to change a delivery status.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.UUID,
	newStatus delivery.Status,
	note string,
	actorDriverID *kernel.UUID,
) (UpdateDeliveryStatusCommand, error) {
	command := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setNewStatus(newStatus),
		command.setActorDriverID(actorDriverID),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	command.note = note

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID     { return c.deliveryID }
func (c UpdateDeliveryStatusCommand) NewStatus() delivery.Status  { return c.newStatus }
func (c UpdateDeliveryStatusCommand) Note() string                { return c.note }
func (c UpdateDeliveryStatusCommand) ActorDriverID() *kernel.UUID { return c.actorDriverID }

func (c *UpdateDeliveryStatusCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *UpdateDeliveryStatusCommand) setNewStatus(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.newStatus = status
	return nil
}

func (c *UpdateDeliveryStatusCommand) setActorDriverID(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.actorDriverID = id
	return nil
}
