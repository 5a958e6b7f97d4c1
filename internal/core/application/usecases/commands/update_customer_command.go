package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a request to change a customer's contact data.
// The tax ID is immutable and therefore not part of the command.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string
	address    string
	postalCode string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update an existing customer.
func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	name, email, phone, address, postalCode string,
) (UpdateCustomerCommand, error) {
	command := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setName(name),
		command.setEmail(email),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	command.phone = phone
	command.address = address
	command.postalCode = postalCode

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c UpdateCustomerCommand) Name() string            { return c.name }
func (c UpdateCustomerCommand) Email() string           { return c.email }
func (c UpdateCustomerCommand) Phone() string           { return c.phone }
func (c UpdateCustomerCommand) Address() string         { return c.address }
func (c UpdateCustomerCommand) PostalCode() string      { return c.postalCode }

func (c *UpdateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *UpdateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
