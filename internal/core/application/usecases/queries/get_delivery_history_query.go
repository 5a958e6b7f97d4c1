package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetDeliveryHistoryQueryIsNotConstructed = errors.New(
	"GetDeliveryHistoryQuery must be created via NewGetDeliveryHistoryQuery constructor",
)

// GetDeliveryHistoryQuery retrieves the status change trail of a delivery in
// chronological order.
type GetDeliveryHistoryQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryHistoryQuery creates a query for a delivery's status history.
func NewGetDeliveryHistoryQuery(deliveryID kernel.UUID) (GetDeliveryHistoryQuery, error) {
	query := GetDeliveryHistoryQuery{guard: guard.NewConstructorGuard()}

	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryHistoryQuery{}, err
	}
	query.deliveryID = deliveryID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryHistoryQueryIsNotConstructed)
}

func (q GetDeliveryHistoryQuery) DeliveryID() kernel.UUID { return q.deliveryID }

// DeliveryHistoryResponse is one entry of a delivery's status trail.
type DeliveryHistoryResponse struct {
	ID             kernel.UUID
	DeliveryID     kernel.UUID
	PreviousStatus string
	NewStatus      string
	Note           string
	DriverID       *kernel.UUID
	DriverName     *string
	RecordedAt     time.Time
}
