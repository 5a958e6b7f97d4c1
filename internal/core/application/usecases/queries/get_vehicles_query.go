package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetVehiclesQueryIsNotConstructed = errors.New(
	"GetVehiclesQuery must be created via NewGetVehiclesQuery constructor",
)

// GetVehiclesQuery retrieves vehicles, optionally narrowed to a single ID or
// to only those free for assignment.
type GetVehiclesQuery struct {
	vehicleID     *kernel.UUID
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetVehiclesQuery creates a query for vehicles.
func NewGetVehiclesQuery(vehicleID *kernel.UUID, availableOnly bool) (GetVehiclesQuery, error) {
	query := GetVehiclesQuery{guard: guard.NewConstructorGuard()}

	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return GetVehiclesQuery{}, err
		}
	}
	query.vehicleID = vehicleID
	query.availableOnly = availableOnly

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetVehiclesQueryIsNotConstructed)
}

func (q GetVehiclesQuery) VehicleID() *kernel.UUID { return q.vehicleID }
func (q GetVehiclesQuery) AvailableOnly() bool     { return q.availableOnly }

// VehicleResponse is the vehicle read model.
type VehicleResponse struct {
	ID              kernel.UUID
	Plate           string
	Model           string
	Brand           string
	Kind            string
	MaxCapacity     int
	Year            int
	OdometerKm      float64
	Status          string
	CurrentDriverID *kernel.UUID
	RegisteredAt    time.Time
}
