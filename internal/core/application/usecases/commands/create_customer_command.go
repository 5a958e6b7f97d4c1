package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
// A fresh ID is generated so the caller can read it back after handling.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string
	taxID      string
	address    string
	postalCode string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Name, email and tax ID are required; full validation happens in the aggregate.
func NewCreateCustomerCommand(name, email, phone, taxID, address, postalCode string) (CreateCustomerCommand, error) {
	command := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(kernel.NewUUID()),
		command.setName(name),
		command.setEmail(email),
		command.setTaxID(taxID),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	command.phone = phone
	command.address = address
	command.postalCode = postalCode

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateCustomerCommand) Name() string            { return c.name }
func (c CreateCustomerCommand) Email() string           { return c.email }
func (c CreateCustomerCommand) Phone() string           { return c.phone }
func (c CreateCustomerCommand) TaxID() string           { return c.taxID }
func (c CreateCustomerCommand) Address() string         { return c.address }
func (c CreateCustomerCommand) PostalCode() string      { return c.postalCode }

func (c *CreateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateCustomerCommand) setTaxID(taxID string) error {
	if taxID == "" {
		return errs.NewValueIsRequiredError("taxId")
	}
	c.taxID = taxID
	return nil
}
