package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVehiclesQueryHandler retrieves vehicle read models from the database.
type GetVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetVehiclesQueryHandler creates a handler for vehicle queries.
func NewGetVehiclesQueryHandler(db *gorm.DB) GetVehiclesQueryHandler {
	return GetVehiclesQueryHandler{db: db}
}

// Handle executes the query. When the query names a single vehicle and no
// row matches, an object-not-found error is returned.
func (h GetVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetVehiclesQuery,
) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			plate,
			model,
			brand,
			kind,
			max_capacity,
			year,
			odometer_km,
			status,
			current_driver_id,
			registered_at
		FROM vehicles
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.VehicleID() != nil {
		sql += ` AND id = ?`
		args = append(args, query.VehicleID().String())
	}
	if query.AvailableOnly() {
		sql += ` AND status = ?`
		args = append(args, vehicle.StatusAvailable.String())
	}
	sql += ` ORDER BY plate`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]VehicleResponse, 0)

	for rows.Next() {
		var resp VehicleResponse
		var id uuid.UUID
		var currentDriverID *uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Plate,
			&resp.Model,
			&resp.Brand,
			&resp.Kind,
			&resp.MaxCapacity,
			&resp.Year,
			&resp.OdometerKm,
			&resp.Status,
			&currentDriverID,
			&resp.RegisteredAt,
		); err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = vehicleID

		if currentDriverID != nil {
			driverID, idErr := kernel.UUIDFromBytes(currentDriverID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.CurrentDriverID = &driverID
		}

		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if query.VehicleID() != nil && len(vehicles) == 0 {
		return nil, errs.NewObjectNotFoundError("vehicleId", query.VehicleID().String())
	}

	return vehicles, nil
}
