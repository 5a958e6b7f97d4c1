package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackDeliveryQueryHandler resolves public tracking codes.
type TrackDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewTrackDeliveryQueryHandler creates a handler for public tracking lookups.
func NewTrackDeliveryQueryHandler(db *gorm.DB) TrackDeliveryQueryHandler {
	return TrackDeliveryQueryHandler{db: db}
}

// Handle executes the lookup. An unknown code is an object-not-found error;
// the handler never reveals whether a code was once valid.
func (h TrackDeliveryQueryHandler) Handle(
	ctx context.Context,
	query TrackDeliveryQuery,
) (TrackDeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackDeliveryResponse{}, err
	}

	var resp TrackDeliveryResponse
	var deliveryID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			status,
			origin_postal,
			destination_postal,
			requested_at,
			expected_date,
			delivered_at
		FROM deliveries
		WHERE tracking_code = ?
	`, query.TrackingCode().String()).Row()

	err := row.Scan(
		&deliveryID,
		&resp.TrackingCode,
		&resp.Status,
		&resp.OriginPostal,
		&resp.DestinationPostal,
		&resp.RequestedAt,
		&resp.ExpectedDate,
		&resp.DeliveredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackDeliveryResponse{}, errs.NewObjectNotFoundError(
			"trackingCode", query.TrackingCode().String(),
		)
	}
	if err != nil {
		return TrackDeliveryResponse{}, err
	}

	trail, err := h.loadTrail(ctx, deliveryID)
	if err != nil {
		return TrackDeliveryResponse{}, err
	}
	resp.Trail = trail

	return resp, nil
}

func (h TrackDeliveryQueryHandler) loadTrail(
	ctx context.Context,
	deliveryID uuid.UUID,
) ([]TrackEventResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			previous_status,
			new_status,
			note,
			recorded_at
		FROM delivery_status_history
		WHERE delivery_id = ?
		ORDER BY recorded_at
	`, deliveryID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trail := make([]TrackEventResponse, 0)

	for rows.Next() {
		var event TrackEventResponse
		if err = rows.Scan(
			&event.PreviousStatus,
			&event.NewStatus,
			&event.Note,
			&event.RecordedAt,
		); err != nil {
			return nil, err
		}
		trail = append(trail, event)
	}

	return trail, rows.Err()
}
