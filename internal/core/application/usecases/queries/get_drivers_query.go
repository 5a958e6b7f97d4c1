package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery retrieves drivers, optionally narrowed to a single ID or
// to a status.
type GetDriversQuery struct {
	driverID *kernel.UUID
	status   string

	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates a query for drivers. Both filters are optional.
func NewGetDriversQuery(driverID *kernel.UUID, status string) (GetDriversQuery, error) {
	query := GetDriversQuery{guard: guard.NewConstructorGuard()}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return GetDriversQuery{}, err
		}
	}
	query.driverID = driverID
	query.status = status

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

func (q GetDriversQuery) DriverID() *kernel.UUID { return q.driverID }
func (q GetDriversQuery) Status() string         { return q.status }

// DriverResponse is the driver read model.
type DriverResponse struct {
	ID              kernel.UUID
	Name            string
	TaxID           string
	LicenseCategory string
	LicenseNumber   string
	Phone           string
	Email           string
	Status          string
	BirthDate       *time.Time
	RegisteredAt    time.Time
}
