package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetDriverHistoryQueryIsNotConstructed = errors.New(
	"GetDriverHistoryQuery must be created via NewGetDriverHistoryQuery constructor",
)

// GetDriverHistoryQuery retrieves every status change a driver recorded,
// across all of their deliveries, newest first.
type GetDriverHistoryQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverHistoryQuery creates a query for a driver's status change trail.
func NewGetDriverHistoryQuery(driverID kernel.UUID) (GetDriverHistoryQuery, error) {
	query := GetDriverHistoryQuery{guard: guard.NewConstructorGuard()}

	if err := driverID.Validate(); err != nil {
		return GetDriverHistoryQuery{}, err
	}
	query.driverID = driverID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverHistoryQueryIsNotConstructed)
}

func (q GetDriverHistoryQuery) DriverID() kernel.UUID { return q.driverID }
