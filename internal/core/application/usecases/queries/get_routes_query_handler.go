package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRoutesQueryHandler retrieves route read models from the database.
// Delivery count and used capacity are aggregated from the association table
// so the figures stay correct even when the denormalized column lags.
type GetRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetRoutesQueryHandler creates a handler for route queries.
func NewGetRoutesQueryHandler(db *gorm.DB) GetRoutesQueryHandler {
	return GetRoutesQueryHandler{db: db}
}

// Handle executes the query. When the query names a single route and no row
// matches, an object-not-found error is returned.
func (h GetRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetRoutesQuery,
) ([]RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			r.id,
			r.name,
			r.description,
			r.driver_id,
			dr.name,
			r.vehicle_id,
			v.plate,
			v.max_capacity,
			r.route_date,
			r.status,
			r.estimated_km,
			r.actual_km,
			r.estimated_minutes,
			r.actual_minutes,
			COUNT(rd.delivery_id),
			COALESCE(SUM(rd.required_capacity), 0),
			r.created_at,
			r.started_at,
			r.completed_at
		FROM routes r
		LEFT JOIN drivers dr ON dr.id = r.driver_id
		LEFT JOIN vehicles v ON v.id = r.vehicle_id
		LEFT JOIN route_deliveries rd ON rd.route_id = r.id
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.RouteID() != nil {
		sql += ` AND r.id = ?`
		args = append(args, query.RouteID().String())
	}
	if query.DriverID() != nil {
		sql += ` AND r.driver_id = ?`
		args = append(args, query.DriverID().String())
	}
	if query.VehicleID() != nil {
		sql += ` AND r.vehicle_id = ?`
		args = append(args, query.VehicleID().String())
	}
	if query.Status() != "" {
		sql += ` AND r.status = ?`
		args = append(args, query.Status())
	}
	sql += `
		GROUP BY r.id, dr.name, v.plate, v.max_capacity
		ORDER BY r.route_date DESC, r.created_at DESC
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]RouteResponse, 0)

	for rows.Next() {
		var resp RouteResponse
		var id uuid.UUID
		var driverID, vehicleID *uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Description,
			&driverID,
			&resp.DriverName,
			&vehicleID,
			&resp.VehiclePlate,
			&resp.MaxCapacity,
			&resp.RouteDate,
			&resp.Status,
			&resp.EstimatedKm,
			&resp.ActualKm,
			&resp.EstimatedMinutes,
			&resp.ActualMinutes,
			&resp.DeliveryCount,
			&resp.UsedCapacity,
			&resp.CreatedAt,
			&resp.StartedAt,
			&resp.CompletedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if driverID != nil {
			converted, idErr := kernel.UUIDFromBytes(driverID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DriverID = &converted
		}
		if vehicleID != nil {
			converted, idErr := kernel.UUIDFromBytes(vehicleID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.VehicleID = &converted
		}

		routes = append(routes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if query.RouteID() != nil && len(routes) == 0 {
		return nil, errs.NewObjectNotFoundError("routeId", query.RouteID().String())
	}

	return routes, nil
}
