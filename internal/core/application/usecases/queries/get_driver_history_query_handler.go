package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverHistoryQueryHandler retrieves the status changes a driver recorded.
type GetDriverHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverHistoryQueryHandler creates a handler for driver history queries.
func NewGetDriverHistoryQueryHandler(db *gorm.DB) GetDriverHistoryQueryHandler {
	return GetDriverHistoryQueryHandler{db: db}
}

// Handle executes the query. A driver with no recorded changes yields an empty slice.
func (h GetDriverHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetDriverHistoryQuery,
) ([]DeliveryHistoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			h.id,
			h.delivery_id,
			h.previous_status,
			h.new_status,
			h.note,
			h.driver_id,
			dr.name,
			h.recorded_at
		FROM delivery_status_history h
		LEFT JOIN drivers dr ON dr.id = h.driver_id
		WHERE h.driver_id = ?
		ORDER BY h.recorded_at DESC
	`, query.DriverID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]DeliveryHistoryResponse, 0)

	for rows.Next() {
		var resp DeliveryHistoryResponse
		var id, deliveryID uuid.UUID
		var driverID *uuid.UUID

		if err = rows.Scan(
			&id,
			&deliveryID,
			&resp.PreviousStatus,
			&resp.NewStatus,
			&resp.Note,
			&driverID,
			&resp.DriverName,
			&resp.RecordedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.DeliveryID, err = kernel.UUIDFromBytes(deliveryID[:]); err != nil {
			return nil, err
		}
		if driverID != nil {
			converted, idErr := kernel.UUIDFromBytes(driverID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DriverID = &converted
		}

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
