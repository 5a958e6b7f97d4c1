package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new driver.
// Handling also provisions a login account when the driver has none:
// username "motorista_<tax id digits>" with the configured default password.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID        kernel.UUID
	name            string
	taxID           string
	licenseCategory driver.LicenseCategory
	licenseNumber   string
	phone           string
	email           string
	birthDate       *time.Time

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
func NewCreateDriverCommand(
	name, taxID string,
	licenseCategory driver.LicenseCategory,
	licenseNumber, phone, email string,
	birthDate *time.Time,
) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(kernel.NewUUID()),
		command.setName(name),
		command.setTaxID(taxID),
		command.setLicenseCategory(licenseCategory),
		command.setLicenseNumber(licenseNumber),
		command.setEmail(email),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	command.phone = phone
	command.birthDate = birthDate

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() kernel.UUID                   { return c.driverID }
func (c CreateDriverCommand) Name() string                            { return c.name }
func (c CreateDriverCommand) TaxID() string                           { return c.taxID }
func (c CreateDriverCommand) LicenseCategory() driver.LicenseCategory { return c.licenseCategory }
func (c CreateDriverCommand) LicenseNumber() string                   { return c.licenseNumber }
func (c CreateDriverCommand) Phone() string                           { return c.phone }
func (c CreateDriverCommand) Email() string                           { return c.email }
func (c CreateDriverCommand) BirthDate() *time.Time                   { return c.birthDate }

func (c *CreateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateDriverCommand) setTaxID(taxID string) error {
	if taxID == "" {
		return errs.NewValueIsRequiredError("taxId")
	}
	c.taxID = taxID
	return nil
}

func (c *CreateDriverCommand) setLicenseCategory(category driver.LicenseCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.licenseCategory = category
	return nil
}

func (c *CreateDriverCommand) setLicenseNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	c.licenseNumber = number
	return nil
}

func (c *CreateDriverCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
