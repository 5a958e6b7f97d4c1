package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverDashboardQueryHandler assembles the driver dashboard from several
// focused reads. It reuses the vehicle and route handlers rather than
// duplicating their scan logic.
type GetDriverDashboardQueryHandler struct {
	db       *gorm.DB
	vehicles GetVehiclesQueryHandler
	routes   GetRoutesQueryHandler
}

// NewGetDriverDashboardQueryHandler creates a handler for driver dashboards.
func NewGetDriverDashboardQueryHandler(db *gorm.DB) GetDriverDashboardQueryHandler {
	return GetDriverDashboardQueryHandler{
		db:       db,
		vehicles: NewGetVehiclesQueryHandler(db),
		routes:   NewGetRoutesQueryHandler(db),
	}
}

// Handle executes the dashboard query. An unknown driver is an
// object-not-found error.
func (h GetDriverDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDriverDashboardQuery,
) (DriverDashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverDashboardResponse{}, err
	}

	resp := DriverDashboardResponse{DriverID: query.DriverID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT name, status FROM drivers WHERE id = ?
	`, query.DriverID().String()).Row()

	if err := row.Scan(&resp.DriverName, &resp.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DriverDashboardResponse{}, errs.NewObjectNotFoundError(
				"driverId", query.DriverID().String(),
			)
		}
		return DriverDashboardResponse{}, err
	}

	if err := h.loadVehicle(ctx, query, &resp); err != nil {
		return DriverDashboardResponse{}, err
	}
	if err := h.loadTodayRoutes(ctx, query, &resp); err != nil {
		return DriverDashboardResponse{}, err
	}
	if err := h.loadWorkload(ctx, query, &resp); err != nil {
		return DriverDashboardResponse{}, err
	}

	return resp, nil
}

func (h GetDriverDashboardQueryHandler) loadVehicle(
	ctx context.Context,
	query GetDriverDashboardQuery,
	resp *DriverDashboardResponse,
) error {
	var rawID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT id FROM vehicles WHERE current_driver_id = ?
	`, query.DriverID().String()).Row()

	if err := row.Scan(&rawID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}

	vehicleID, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return err
	}

	vehiclesQuery, err := NewGetVehiclesQuery(&vehicleID, false)
	if err != nil {
		return err
	}

	vehicles, err := h.vehicles.Handle(ctx, vehiclesQuery)
	if err != nil {
		return err
	}
	if len(vehicles) > 0 {
		resp.CurrentVehicle = &vehicles[0]
	}

	return nil
}

func (h GetDriverDashboardQueryHandler) loadTodayRoutes(
	ctx context.Context,
	query GetDriverDashboardQuery,
	resp *DriverDashboardResponse,
) error {
	driverID := query.DriverID()

	routesQuery, err := NewGetRoutesQuery(nil, &driverID, nil, "")
	if err != nil {
		return err
	}

	routes, err := h.routes.Handle(ctx, routesQuery)
	if err != nil {
		return err
	}

	today := startOfDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	resp.TodayRoutes = make([]RouteResponse, 0)
	for _, r := range routes {
		if !r.RouteDate.Before(today) && r.RouteDate.Before(tomorrow) {
			resp.TodayRoutes = append(resp.TodayRoutes, r)
		}
	}

	return nil
}

func (h GetDriverDashboardQueryHandler) loadWorkload(
	ctx context.Context,
	query GetDriverDashboardQuery,
	resp *DriverDashboardResponse,
) error {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ? AND delivered_at >= ?)
		FROM deliveries
		WHERE driver_id = ?
	`,
		delivery.StatusPending.String(),
		delivery.StatusInTransit.String(),
		delivery.StatusDelivered.String(),
		startOfDay(time.Now()),
		query.DriverID().String(),
	).Row()

	return row.Scan(&resp.PendingDeliveries, &resp.InTransitDeliveries, &resp.DeliveredToday)
}
