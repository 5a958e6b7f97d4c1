package driver

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Driver represents a person who executes delivery routes.
// It is an aggregate root that owns the driver's identity, license data and
// operational status. A driver may be linked to exactly one login account;
// the link is optional so back-office staff can register drivers before
// provisioning credentials.
//
// Business rules:
//   - Tax ID, license number and email are unique (enforced at persistence)
//   - New drivers start as available
//   - Only active or available drivers can receive deliveries
//   - Starting a route moves the driver to en_route; completing it back to available
type Driver struct {
	id              kernel.UUID
	name            string
	taxID           string
	licenseCategory LicenseCategory
	licenseNumber   string
	phone           string
	email           string
	status          Status
	birthDate       *time.Time
	accountID       *kernel.UUID
	registeredAt    time.Time

	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver in the available status.
func NewDriver(
	id kernel.UUID,
	name, taxID string,
	licenseCategory LicenseCategory,
	licenseNumber, phone, email string,
	birthDate *time.Time,
) (*Driver, error) {
	driver := &Driver{
		status:       StatusAvailable,
		registeredAt: time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setTaxID(taxID),
		driver.setLicenseCategory(licenseCategory),
		driver.setLicenseNumber(licenseNumber),
		driver.setEmail(email),
	); err != nil {
		return nil, err
	}

	driver.phone = phone
	driver.birthDate = birthDate

	return driver, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(
	id kernel.UUID,
	name, taxID string,
	licenseCategory LicenseCategory,
	licenseNumber, phone, email string,
	status Status,
	birthDate *time.Time,
	accountID *kernel.UUID,
	registeredAt time.Time,
) (*Driver, error) {
	driver := &Driver{
		registeredAt: registeredAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setTaxID(taxID),
		driver.setLicenseCategory(licenseCategory),
		driver.setLicenseNumber(licenseNumber),
		driver.setEmail(email),
		driver.setStatus(status),
	); err != nil {
		return nil, err
	}

	driver.phone = phone
	driver.birthDate = birthDate
	driver.accountID = accountID

	return driver, nil
}

// Validate checks that the Driver was created via one of the constructors.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by ID.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Driver) ID() kernel.UUID                  { return d.id }
func (d *Driver) Name() string                     { return d.name }
func (d *Driver) TaxID() string                    { return d.taxID }
func (d *Driver) LicenseCategory() LicenseCategory { return d.licenseCategory }
func (d *Driver) LicenseNumber() string            { return d.licenseNumber }
func (d *Driver) Phone() string                    { return d.phone }
func (d *Driver) Email() string                    { return d.email }
func (d *Driver) Status() Status                   { return d.status }
func (d *Driver) BirthDate() *time.Time            { return d.birthDate }
func (d *Driver) AccountID() *kernel.UUID          { return d.accountID }
func (d *Driver) RegisteredAt() time.Time          { return d.registeredAt }

// AccountUsername derives the login username auto-provisioned for this driver:
// "motorista_" followed by the digits of the tax ID.
func (d *Driver) AccountUsername() string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, d.taxID)
	return "motorista_" + digits
}

// CanReceiveDeliveries reports whether deliveries may be assigned to this driver.
func (d *Driver) CanReceiveDeliveries() bool {
	return d.status.CanReceiveDeliveries()
}

// LinkAccount attaches the login account provisioned for this driver.
func (d *Driver) LinkAccount(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	d.accountID = &accountID
	return nil
}

// StartRoute moves the driver to en_route when a route starts.
func (d *Driver) StartRoute() error {
	if !d.status.CanReceiveDeliveries() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New(d.status.String()+" driver cannot start a route"))
	}
	d.status = StatusEnRoute
	return nil
}

// FinishRoute returns the driver to available when a route completes.
func (d *Driver) FinishRoute() {
	d.status = StatusAvailable
}

// Update replaces the driver's mutable attributes. Tax ID is immutable.
func (d *Driver) Update(
	name string,
	licenseCategory LicenseCategory,
	licenseNumber, phone, email string,
	status Status,
	birthDate *time.Time,
) error {
	if err := errors.Join(
		d.setName(name),
		d.setLicenseCategory(licenseCategory),
		d.setLicenseNumber(licenseNumber),
		d.setEmail(email),
		d.setStatus(status),
	); err != nil {
		return err
	}
	d.phone = phone
	d.birthDate = birthDate
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setTaxID(taxID string) error {
	if strings.TrimSpace(taxID) == "" {
		return errs.NewValueIsRequiredError("taxId")
	}
	d.taxID = taxID
	return nil
}

func (d *Driver) setLicenseCategory(category LicenseCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}
	d.licenseCategory = category
	return nil
}

func (d *Driver) setLicenseNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	d.licenseNumber = number
	return nil
}

func (d *Driver) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidError("email")
	}
	d.email = email
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
