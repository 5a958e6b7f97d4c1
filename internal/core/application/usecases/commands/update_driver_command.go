package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand represents a request to change a driver's data.
// The tax ID is immutable and therefore not part of the command.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID        kernel.UUID
	name            string
	licenseCategory driver.LicenseCategory
	licenseNumber   string
	phone           string
	email           string
	status          driver.Status
	birthDate       *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command to update an existing driver.
func NewUpdateDriverCommand(
	driverID kernel.UUID,
	name string,
	licenseCategory driver.LicenseCategory,
	licenseNumber, phone, email string,
	status driver.Status,
	birthDate *time.Time,
) (UpdateDriverCommand, error) {
	command := UpdateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setName(name),
		command.setLicenseCategory(licenseCategory),
		command.setStatus(status),
	); err != nil {
		return UpdateDriverCommand{}, err
	}

	command.licenseNumber = licenseNumber
	command.phone = phone
	command.email = email
	command.birthDate = birthDate

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

func (c UpdateDriverCommand) DriverID() kernel.UUID                   { return c.driverID }
func (c UpdateDriverCommand) Name() string                            { return c.name }
func (c UpdateDriverCommand) LicenseCategory() driver.LicenseCategory { return c.licenseCategory }
func (c UpdateDriverCommand) LicenseNumber() string                   { return c.licenseNumber }
func (c UpdateDriverCommand) Phone() string                           { return c.phone }
func (c UpdateDriverCommand) Email() string                           { return c.email }
func (c UpdateDriverCommand) Status() driver.Status                   { return c.status }
func (c UpdateDriverCommand) BirthDate() *time.Time                   { return c.birthDate }

func (c *UpdateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}

func (c *UpdateDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateDriverCommand) setLicenseCategory(category driver.LicenseCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.licenseCategory = category
	return nil
}

func (c *UpdateDriverCommand) setStatus(status driver.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
