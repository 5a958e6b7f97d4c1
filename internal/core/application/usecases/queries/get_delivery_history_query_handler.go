package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryHistoryQueryHandler retrieves delivery status history entries.
type GetDeliveryHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryHistoryQueryHandler creates a handler for history queries.
func NewGetDeliveryHistoryQueryHandler(db *gorm.DB) GetDeliveryHistoryQueryHandler {
	return GetDeliveryHistoryQueryHandler{db: db}
}

// Handle executes the query. An unknown delivery yields an empty trail.
func (h GetDeliveryHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryHistoryQuery,
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
		WHERE h.delivery_id = ?
		ORDER BY h.recorded_at
	`, query.DeliveryID().String()).Rows()
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
