package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetDriverDashboardQueryIsNotConstructed = errors.New(
	"GetDriverDashboardQuery must be created via NewGetDriverDashboardQuery constructor",
)

// GetDriverDashboardQuery assembles the working view a driver sees after
// logging in: who they are, the vehicle in their hands, today's routes and
// their delivery workload.
type GetDriverDashboardQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverDashboardQuery creates a dashboard query for one driver.
func NewGetDriverDashboardQuery(driverID kernel.UUID) (GetDriverDashboardQuery, error) {
	query := GetDriverDashboardQuery{guard: guard.NewConstructorGuard()}

	if err := driverID.Validate(); err != nil {
		return GetDriverDashboardQuery{}, err
	}
	query.driverID = driverID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverDashboardQueryIsNotConstructed)
}

func (q GetDriverDashboardQuery) DriverID() kernel.UUID { return q.driverID }

// DriverDashboardResponse is the driver dashboard read model.
type DriverDashboardResponse struct {
	DriverID   kernel.UUID
	DriverName string
	Status     string

	CurrentVehicle *VehicleResponse
	TodayRoutes    []RouteResponse

	PendingDeliveries   int
	InTransitDeliveries int
	DeliveredToday      int
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
