package queries

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/vehicle"

	"gorm.io/gorm"
)

// GetOperationsReportQueryHandler aggregates operational figures for the
// back office. Deliveries are bucketed by requested_at, routes by route_date.
type GetOperationsReportQueryHandler struct {
	db *gorm.DB
}

// NewGetOperationsReportQueryHandler creates a handler for operations reports.
func NewGetOperationsReportQueryHandler(db *gorm.DB) GetOperationsReportQueryHandler {
	return GetOperationsReportQueryHandler{db: db}
}

// Handle executes the report query.
func (h GetOperationsReportQueryHandler) Handle(
	ctx context.Context,
	query GetOperationsReportQuery,
) (OperationsReportResponse, error) {
	if err := query.Validate(); err != nil {
		return OperationsReportResponse{}, err
	}

	resp := OperationsReportResponse{
		Period:      query.Period(),
		PeriodStart: query.PeriodStart(),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(freight_value), 0),
			COALESCE(SUM(freight_value) FILTER (WHERE status = ?), 0)
		FROM deliveries
		WHERE requested_at >= ?
	`,
		delivery.StatusPending.String(),
		delivery.StatusInTransit.String(),
		delivery.StatusDelivered.String(),
		delivery.StatusCancelled.String(),
		delivery.StatusRescheduled.String(),
		delivery.StatusDelivered.String(),
		query.PeriodStart(),
	).Row()

	if err := row.Scan(
		&resp.TotalDeliveries,
		&resp.PendingDeliveries,
		&resp.InTransitDeliveries,
		&resp.DeliveredDeliveries,
		&resp.CancelledDeliveries,
		&resp.RescheduledDeliveries,
		&resp.TotalFreightValue,
		&resp.DeliveredFreightValue,
	); err != nil {
		return OperationsReportResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM routes
		WHERE route_date >= ?
	`,
		route.StatusPlanned.String(),
		route.StatusInProgress.String(),
		route.StatusCompleted.String(),
		route.StatusCancelled.String(),
		query.PeriodStart(),
	).Row()

	if err := row.Scan(
		&resp.RoutesPlanned,
		&resp.RoutesInProgress,
		&resp.RoutesCompleted,
		&resp.RoutesCancelled,
	); err != nil {
		return OperationsReportResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM drivers WHERE status IN (?, ?, ?)),
			(SELECT COUNT(*) FROM vehicles WHERE status = ?),
			(SELECT COUNT(*) FROM deliveries
				WHERE status = ? AND driver_id IS NULL AND route_id IS NULL),
			(SELECT COUNT(*) FROM vehicles WHERE status = ?)
	`,
		driver.StatusActive.String(),
		driver.StatusAvailable.String(),
		driver.StatusEnRoute.String(),
		vehicle.StatusAvailable.String(),
		delivery.StatusPending.String(),
		vehicle.StatusMaintenance.String(),
	).Row()

	if err := row.Scan(
		&resp.ActiveDrivers,
		&resp.AvailableVehicles,
		&resp.UnassignedPendingDeliveries,
		&resp.VehiclesInMaintenance,
	); err != nil {
		return OperationsReportResponse{}, err
	}

	return resp, nil
}
