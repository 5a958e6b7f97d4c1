package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveriesQueryHandler retrieves delivery read models from the database.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for delivery queries.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// Handle executes the query. When the query names a single delivery and no
// row matches, an object-not-found error is returned.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			d.id,
			d.tracking_code,
			d.customer_id,
			c.name,
			d.origin_address,
			d.destination_address,
			d.origin_postal,
			d.destination_postal,
			d.status,
			d.required_capacity,
			d.freight_value,
			d.requested_at,
			d.expected_date,
			d.delivered_at,
			d.notes,
			d.driver_id,
			dr.name,
			d.route_id
		FROM deliveries d
		JOIN customers c ON c.id = d.customer_id
		LEFT JOIN drivers dr ON dr.id = d.driver_id
		WHERE 1=1
	`
	args := make([]any, 0, 5)

	if query.DeliveryID() != nil {
		sql += ` AND d.id = ?`
		args = append(args, query.DeliveryID().String())
	}
	if query.CustomerID() != nil {
		sql += ` AND d.customer_id = ?`
		args = append(args, query.CustomerID().String())
	}
	if query.DriverID() != nil {
		sql += ` AND d.driver_id = ?`
		args = append(args, query.DriverID().String())
	}
	if query.RouteID() != nil {
		sql += ` AND d.route_id = ?`
		args = append(args, query.RouteID().String())
	}
	if query.Status() != "" {
		sql += ` AND d.status = ?`
		args = append(args, query.Status())
	}
	sql += ` ORDER BY d.requested_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]DeliveryResponse, 0)

	for rows.Next() {
		var resp DeliveryResponse
		var id, customerID uuid.UUID
		var driverID, routeID *uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.TrackingCode,
			&customerID,
			&resp.CustomerName,
			&resp.OriginAddress,
			&resp.DestinationAddress,
			&resp.OriginPostal,
			&resp.DestinationPostal,
			&resp.Status,
			&resp.RequiredCapacity,
			&resp.FreightValue,
			&resp.RequestedAt,
			&resp.ExpectedDate,
			&resp.DeliveredAt,
			&resp.Notes,
			&driverID,
			&resp.DriverName,
			&routeID,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if driverID != nil {
			converted, idErr := kernel.UUIDFromBytes(driverID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DriverID = &converted
		}
		if routeID != nil {
			converted, idErr := kernel.UUIDFromBytes(routeID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.RouteID = &converted
		}

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if query.DeliveryID() != nil && len(deliveries) == 0 {
		return nil, errs.NewObjectNotFoundError("deliveryId", query.DeliveryID().String())
	}

	return deliveries, nil
}
