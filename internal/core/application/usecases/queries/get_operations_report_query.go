package queries

import (
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetOperationsReportQueryIsNotConstructed = errors.New(
	"GetOperationsReportQuery must be created via NewGetOperationsReportQuery constructor",
)

// Report periods accepted by the operations report.
const (
	PeriodToday = "hoje"
	PeriodWeek  = "semana"
	PeriodMonth = "mes"
)

// GetOperationsReportQuery aggregates delivery and route figures over a
// rolling period anchored at now.
type GetOperationsReportQuery struct {
	period string
	now    time.Time

	guard guard.ConstructorGuard
}

// NewGetOperationsReportQuery creates a report query. An empty period
// defaults to today.
func NewGetOperationsReportQuery(period string) (GetOperationsReportQuery, error) {
	query := GetOperationsReportQuery{
		now:   time.Now(),
		guard: guard.NewConstructorGuard(),
	}

	if period == "" {
		period = PeriodToday
	}

	switch period {
	case PeriodToday, PeriodWeek, PeriodMonth:
		query.period = period
	default:
		return GetOperationsReportQuery{}, errs.NewValueIsInvalidError("periodo")
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOperationsReportQuery) Validate() error {
	return q.guard.Validate(ErrGetOperationsReportQueryIsNotConstructed)
}

func (q GetOperationsReportQuery) Period() string { return q.period }

// PeriodStart resolves the period to its opening instant: midnight today,
// seven days ago or thirty days ago.
func (q GetOperationsReportQuery) PeriodStart() time.Time {
	switch q.period {
	case PeriodWeek:
		return startOfDay(q.now).AddDate(0, 0, -7)
	case PeriodMonth:
		return startOfDay(q.now).AddDate(0, 0, -30)
	default:
		return startOfDay(q.now)
	}
}

// OperationsReportResponse is the aggregated operations read model.
type OperationsReportResponse struct {
	Period      string
	PeriodStart time.Time

	TotalDeliveries       int
	PendingDeliveries     int
	InTransitDeliveries   int
	DeliveredDeliveries   int
	CancelledDeliveries   int
	RescheduledDeliveries int

	TotalFreightValue     float64
	DeliveredFreightValue float64

	RoutesPlanned    int
	RoutesInProgress int
	RoutesCompleted  int
	RoutesCancelled  int

	ActiveDrivers     int
	AvailableVehicles int

	UnassignedPendingDeliveries int
	VehiclesInMaintenance       int
}
