package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery retrieves deliveries. All filters are optional and
// combine with AND; drivers are scoped to their own deliveries by passing
// their ID as the driver filter.
type GetDeliveriesQuery struct {
	deliveryID *kernel.UUID
	customerID *kernel.UUID
	driverID   *kernel.UUID
	routeID    *kernel.UUID
	status     string

	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a query for deliveries.
func NewGetDeliveriesQuery(
	deliveryID, customerID, driverID, routeID *kernel.UUID,
	status string,
) (GetDeliveriesQuery, error) {
	query := GetDeliveriesQuery{guard: guard.NewConstructorGuard()}

	for _, id := range []*kernel.UUID{deliveryID, customerID, driverID, routeID} {
		if id != nil {
			if err := id.Validate(); err != nil {
				return GetDeliveriesQuery{}, err
			}
		}
	}

	query.deliveryID = deliveryID
	query.customerID = customerID
	query.driverID = driverID
	query.routeID = routeID
	query.status = status

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

func (q GetDeliveriesQuery) DeliveryID() *kernel.UUID { return q.deliveryID }
func (q GetDeliveriesQuery) CustomerID() *kernel.UUID { return q.customerID }
func (q GetDeliveriesQuery) DriverID() *kernel.UUID   { return q.driverID }
func (q GetDeliveriesQuery) RouteID() *kernel.UUID    { return q.routeID }
func (q GetDeliveriesQuery) Status() string           { return q.status }

// DeliveryResponse is the delivery read model. CustomerName and DriverName
// are denormalized from their aggregates for list views.
type DeliveryResponse struct {
	ID                 kernel.UUID
	TrackingCode       string
	CustomerID         kernel.UUID
	CustomerName       string
	OriginAddress      string
	DestinationAddress string
	OriginPostal       string
	DestinationPostal  string
	Status             string
	RequiredCapacity   int
	FreightValue       float64
	RequestedAt        time.Time
	ExpectedDate       *time.Time
	DeliveredAt        *time.Time
	Notes              string
	DriverID           *kernel.UUID
	DriverName         *string
	RouteID            *kernel.UUID
}
