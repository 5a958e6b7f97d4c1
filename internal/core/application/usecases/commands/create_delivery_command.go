package commands

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to register a new delivery for a
// customer. The tracking code is generated by the aggregate, not the caller.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID         kernel.UUID
	customerID         kernel.UUID
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

// NewCreateDeliveryCommand creates a command to register a new delivery.
func NewCreateDeliveryCommand(
	customerID kernel.UUID,
	originAddress, destinationAddress, originPostal, destinationPostal string,
	requiredCapacity int,
	freightValue float64,
	expectedDate *time.Time,
	notes string,
) (CreateDeliveryCommand, error) {
	command := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(kernel.NewUUID()),
		command.setCustomerID(customerID),
		command.setAddresses(originAddress, destinationAddress),
		command.setRequiredCapacity(requiredCapacity),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	command.originPostal = originPostal
	command.destinationPostal = destinationPostal
	command.freightValue = freightValue
	command.expectedDate = expectedDate
	command.notes = notes

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) DeliveryID() kernel.UUID    { return c.deliveryID }
func (c CreateDeliveryCommand) CustomerID() kernel.UUID    { return c.customerID }
func (c CreateDeliveryCommand) OriginAddress() string      { return c.originAddress }
func (c CreateDeliveryCommand) DestinationAddress() string { return c.destinationAddress }
func (c CreateDeliveryCommand) OriginPostal() string       { return c.originPostal }
func (c CreateDeliveryCommand) DestinationPostal() string  { return c.destinationPostal }
func (c CreateDeliveryCommand) RequiredCapacity() int      { return c.requiredCapacity }
func (c CreateDeliveryCommand) FreightValue() float64      { return c.freightValue }
func (c CreateDeliveryCommand) ExpectedDate() *time.Time   { return c.expectedDate }
func (c CreateDeliveryCommand) Notes() string              { return c.notes }

func (c *CreateDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *CreateDeliveryCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateDeliveryCommand) setAddresses(origin, destination string) error {
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

func (c *CreateDeliveryCommand) setRequiredCapacity(capacity int) error {
	if capacity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("requiredCapacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	c.requiredCapacity = capacity
	return nil
}
