package customer

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Customer represents a party that requests deliveries.
// It is an aggregate root identified by a UUID. Email and tax ID are unique
// across customers; uniqueness is enforced by the persistence layer, the
// aggregate only validates shape.
type Customer struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	taxID        string
	address      string
	postalCode   string
	registeredAt time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the given attributes.
// Name, email and tax ID are required; the email must look like an address.
// The registration timestamp is set to the current time.
func NewCustomer(id kernel.UUID, name, email, phone, taxID, address, postalCode string) (*Customer, error) {
	customer := &Customer{
		registeredAt: time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
		customer.setTaxID(taxID),
	); err != nil {
		return nil, err
	}

	customer.phone = phone
	customer.address = address
	customer.postalCode = postalCode

	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage,
// preserving its original registration timestamp.
func RestoreCustomer(
	id kernel.UUID,
	name, email, phone, taxID, address, postalCode string,
	registeredAt time.Time,
) (*Customer, error) {
	customer := &Customer{
		registeredAt: registeredAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
		customer.setTaxID(taxID),
	); err != nil {
		return nil, err
	}

	customer.phone = phone
	customer.address = address
	customer.postalCode = postalCode

	return customer, nil
}

// Validate checks that the Customer was created via one of the constructors.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by ID.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Customer) ID() kernel.UUID         { return c.id }
func (c *Customer) Name() string            { return c.name }
func (c *Customer) Email() string           { return c.email }
func (c *Customer) Phone() string           { return c.phone }
func (c *Customer) TaxID() string           { return c.taxID }
func (c *Customer) Address() string         { return c.address }
func (c *Customer) PostalCode() string      { return c.postalCode }
func (c *Customer) RegisteredAt() time.Time { return c.registeredAt }

// UpdateContact replaces the customer's mutable attributes.
// Email keeps its format requirement; the tax ID is immutable after creation.
func (c *Customer) UpdateContact(name, email, phone, address, postalCode string) error {
	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return err
	}
	c.phone = phone
	c.address = address
	c.postalCode = postalCode
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidError("email")
	}
	c.email = email
	return nil
}

func (c *Customer) setTaxID(taxID string) error {
	if strings.TrimSpace(taxID) == "" {
		return errs.NewValueIsRequiredError("taxId")
	}
	c.taxID = taxID
	return nil
}
