package commands

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand represents a request to change a delivery's planning
// data. Status changes are a separate operation so they always leave a
// history trail; the tracking code and customer are immutable.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID         kernel.UUID
	originAddress      string
	destinationAddress string
	originPostal       string
	destinationPostal  string
	requiredCapacity   int
	freightValue       float64
	expectedDate       *time.Time
	notes              string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a command to update an existing delivery.
func NewUpdateDeliveryCommand(
	deliveryID kernel.UUID,
	originAddress, destinationAddress, originPostal, destinationPostal string,
	requiredCapacity int,
	freightValue float64,
	expectedDate *time.Time,
	notes string,
) (UpdateDeliveryCommand, error) {
	command := UpdateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setAddresses(originAddress, destinationAddress),
		command.setRequiredCapacity(requiredCapacity),
	); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	command.originPostal = originPostal
	command.destinationPostal = destinationPostal
	command.freightValue = freightValue
	command.expectedDate = expectedDate
	command.notes = notes

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID    { return c.deliveryID }
func (c UpdateDeliveryCommand) OriginAddress() string      { return c.originAddress }
func (c UpdateDeliveryCommand) DestinationAddress() string { return c.destinationAddress }
func (c UpdateDeliveryCommand) OriginPostal() string       { return c.originPostal }
func (c UpdateDeliveryCommand) DestinationPostal() string  { return c.destinationPostal }
func (c UpdateDeliveryCommand) RequiredCapacity() int      { return c.requiredCapacity }
func (c UpdateDeliveryCommand) FreightValue() float64      { return c.freightValue }
func (c UpdateDeliveryCommand) ExpectedDate() *time.Time   { return c.expectedDate }
func (c UpdateDeliveryCommand) Notes() string              { return c.notes }

func (c *UpdateDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *UpdateDeliveryCommand) setAddresses(origin, destination string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("originAddress")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}
	c.originAddress = origin
	c.destinationAddress = destination
	return nil
}

func (c *UpdateDeliveryCommand) setRequiredCapacity(capacity int) error {
	if capacity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("requiredCapacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	c.requiredCapacity = capacity
	return nil
}
