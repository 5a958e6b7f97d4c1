// Package ports defines repository interfaces for the logistics domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/vehicle"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer. Duplicate email or tax ID is a conflict.
	Add(ctx context.Context, customer *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, customer *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Delete removes a customer. Its deliveries are removed by cascade.
	Delete(ctx context.Context, id kernel.UUID) error
}

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	Add(ctx context.Context, driver *driver.Driver) error
	Update(ctx context.Context, driver *driver.Driver) error
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// Delete removes a driver. References on deliveries, vehicles and routes
	// are nulled; the linked account is removed.
	Delete(ctx context.Context, id kernel.UUID) error
}

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	Add(ctx context.Context, vehicle *vehicle.Vehicle) error
	Update(ctx context.Context, vehicle *vehicle.Vehicle) error
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
	Delete(ctx context.Context, id kernel.UUID) error

	// GetByCurrentDriver retrieves the vehicle currently in use by the driver.
	// Returns (nil, nil) when the driver has no vehicle.
	GetByCurrentDriver(ctx context.Context, driverID kernel.UUID) (*vehicle.Vehicle, error)
}

// DeliveryRepository defines the persistence contract for delivery aggregates
// and their append-only status history.
type DeliveryRepository interface {
	Add(ctx context.Context, delivery *delivery.Delivery) error
	Update(ctx context.Context, delivery *delivery.Delivery) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
	Delete(ctx context.Context, id kernel.UUID) error

	// AddHistory appends a status history entry. Entries are never updated.
	AddHistory(ctx context.Context, history *delivery.StatusHistory) error
}

// RouteRepository defines the persistence contract for route aggregates,
// including their ordered delivery memberships.
type RouteRepository interface {
	Add(ctx context.Context, route *route.Route) error
	Update(ctx context.Context, route *route.Route) error
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

// AccountRepository defines the persistence contract for login accounts.
type AccountRepository interface {
	Add(ctx context.Context, account *account.Account) error
	Update(ctx context.Context, account *account.Account) error
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByUsername retrieves an account by its unique username.
	GetByUsername(ctx context.Context, username string) (*account.Account, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
