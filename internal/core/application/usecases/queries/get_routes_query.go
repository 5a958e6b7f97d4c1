package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetRoutesQueryIsNotConstructed = errors.New(
	"GetRoutesQuery must be created via NewGetRoutesQuery constructor",
)

// GetRoutesQuery retrieves routes. All filters are optional and combine with
// AND; drivers are scoped to their own routes by passing their ID as the
// driver filter.
type GetRoutesQuery struct {
	routeID   *kernel.UUID
	driverID  *kernel.UUID
	vehicleID *kernel.UUID
	status    string

	guard guard.ConstructorGuard
}

// NewGetRoutesQuery creates a query for routes.
func NewGetRoutesQuery(routeID, driverID, vehicleID *kernel.UUID, status string) (GetRoutesQuery, error) {
	query := GetRoutesQuery{guard: guard.NewConstructorGuard()}

	for _, id := range []*kernel.UUID{routeID, driverID, vehicleID} {
		if id != nil {
			if err := id.Validate(); err != nil {
				return GetRoutesQuery{}, err
			}
		}
	}

	query.routeID = routeID
	query.driverID = driverID
	query.vehicleID = vehicleID
	query.status = status

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesQueryIsNotConstructed)
}

func (q GetRoutesQuery) RouteID() *kernel.UUID   { return q.routeID }
func (q GetRoutesQuery) DriverID() *kernel.UUID  { return q.driverID }
func (q GetRoutesQuery) VehicleID() *kernel.UUID { return q.vehicleID }
func (q GetRoutesQuery) Status() string          { return q.status }

// RouteResponse is the route read model. Capacity figures come from the
// assigned vehicle and the attached deliveries.
type RouteResponse struct {
	ID               kernel.UUID
	Name             string
	Description      string
	DriverID         *kernel.UUID
	DriverName       *string
	VehicleID        *kernel.UUID
	VehiclePlate     *string
	RouteDate        time.Time
	Status           string
	EstimatedKm      float64
	ActualKm         *float64
	EstimatedMinutes int
	ActualMinutes    *int
	DeliveryCount    int
	UsedCapacity     int
	MaxCapacity      *int
	CreatedAt        time.Time
	StartedAt        *time.Time
	CompletedAt      *time.Time
}
