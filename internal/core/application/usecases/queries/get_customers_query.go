// Package queries contains read operations that bypass the domain model.
// Implements the query side of the CQRS architecture: handlers read the
// database directly and return flat read models shaped for the API.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves customers, optionally narrowed to a single ID.
// A driver filter limits the result to customers with deliveries assigned to
// that driver, which is how driver accounts are scoped.
type GetCustomersQuery struct {
	customerID *kernel.UUID
	driverID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a query for customers. Pass nil to list all.
func NewGetCustomersQuery(customerID, driverID *kernel.UUID) (GetCustomersQuery, error) {
	query := GetCustomersQuery{guard: guard.NewConstructorGuard()}

	for _, id := range []*kernel.UUID{customerID, driverID} {
		if id != nil {
			if err := id.Validate(); err != nil {
				return GetCustomersQuery{}, err
			}
		}
	}
	query.customerID = customerID
	query.driverID = driverID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

func (q GetCustomersQuery) CustomerID() *kernel.UUID { return q.customerID }
func (q GetCustomersQuery) DriverID() *kernel.UUID   { return q.driverID }

// CustomerResponse is the customer read model.
type CustomerResponse struct {
	ID           kernel.UUID
	Name         string
	Email        string
	Phone        string
	TaxID        string
	Address      string
	PostalCode   string
	RegisteredAt time.Time
}
