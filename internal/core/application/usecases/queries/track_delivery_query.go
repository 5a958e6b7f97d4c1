package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrTrackDeliveryQueryIsNotConstructed = errors.New(
	"TrackDeliveryQuery must be created via NewTrackDeliveryQuery constructor",
)

// TrackDeliveryQuery looks a delivery up by its public tracking code. The
// response carries only what an anonymous caller may see.
type TrackDeliveryQuery struct {
	trackingCode kernel.TrackingCode

	guard guard.ConstructorGuard
}

// NewTrackDeliveryQuery creates a public tracking query. The raw code is
// normalized and validated up front so malformed input never reaches the
// database.
func NewTrackDeliveryQuery(rawCode string) (TrackDeliveryQuery, error) {
	query := TrackDeliveryQuery{guard: guard.NewConstructorGuard()}

	code, err := kernel.TrackingCodeFromString(rawCode)
	if err != nil {
		return TrackDeliveryQuery{}, err
	}
	query.trackingCode = code

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrTrackDeliveryQueryIsNotConstructed)
}

func (q TrackDeliveryQuery) TrackingCode() kernel.TrackingCode { return q.trackingCode }

// TrackDeliveryResponse is the public tracking read model. Addresses are
// reduced to postal codes and no customer or driver identity is exposed.
type TrackDeliveryResponse struct {
	TrackingCode      string
	Status            string
	OriginPostal      string
	DestinationPostal string
	RequestedAt       time.Time
	ExpectedDate      *time.Time
	DeliveredAt       *time.Time
	Trail             []TrackEventResponse
}

// TrackEventResponse is one status change as shown to the public. Notes are
// included; driver identity is not.
type TrackEventResponse struct {
	PreviousStatus string
	NewStatus      string
	Note           string
	RecordedAt     time.Time
}
