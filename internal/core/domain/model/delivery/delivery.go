package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Delivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery represents a shipment from an origin to a destination for a customer.
// It is the aggregate root of the delivery lifecycle: status changes, driver
// assignment and route membership all go through it, and every status change
// produces exactly one StatusHistory entry.
//
// Key invariants:
//   - The tracking code is assigned at creation and never changes
//   - Required capacity is at least 1 and bounds route membership
//   - The delivered timestamp is stamped on the first transition to delivered
//     and never cleared afterwards
//   - History entries are append-only
type Delivery struct {
	id                 kernel.UUID
	trackingCode       kernel.TrackingCode
	customerID         kernel.UUID
	originAddress      string
	destinationAddress string
	originPostal       string
	destinationPostal  string
	status             Status
	requiredCapacity   int
	freightValue       float64
	requestedAt        time.Time
	expectedDate       *time.Time
	deliveredAt        *time.Time
	notes              string
	driverID           *kernel.UUID
	routeID            *kernel.UUID

	guard guard.ConstructorGuard
}

// NewDelivery creates a new pending Delivery with a fresh tracking code.
func NewDelivery(
	id kernel.UUID,
	customerID kernel.UUID,
	originAddress, destinationAddress, originPostal, destinationPostal string,
	requiredCapacity int,
	freightValue float64,
	expectedDate *time.Time,
	notes string,
) (*Delivery, error) {
	delivery := &Delivery{
		trackingCode: kernel.NewTrackingCode(),
		status:       StatusPending,
		requestedAt:  time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setCustomerID(customerID),
		delivery.setAddresses(originAddress, destinationAddress),
		delivery.setRequiredCapacity(requiredCapacity),
		delivery.setFreightValue(freightValue),
	); err != nil {
		return nil, err
	}

	delivery.originPostal = originPostal
	delivery.destinationPostal = destinationPostal
	delivery.expectedDate = expectedDate
	delivery.notes = notes

	return delivery, nil
}

// RestoreDelivery reconstructs a Delivery from persistent storage.
func RestoreDelivery(
	id kernel.UUID,
	trackingCode kernel.TrackingCode,
	customerID kernel.UUID,
	originAddress, destinationAddress, originPostal, destinationPostal string,
	status Status,
	requiredCapacity int,
	freightValue float64,
	requestedAt time.Time,
	expectedDate, deliveredAt *time.Time,
	notes string,
	driverID, routeID *kernel.UUID,
) (*Delivery, error) {
	delivery := &Delivery{
		requestedAt: requestedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setTrackingCode(trackingCode),
		delivery.setCustomerID(customerID),
		delivery.setAddresses(originAddress, destinationAddress),
		delivery.setStatus(status),
		delivery.setRequiredCapacity(requiredCapacity),
		delivery.setFreightValue(freightValue),
	); err != nil {
		return nil, err
	}

	delivery.originPostal = originPostal
	delivery.destinationPostal = destinationPostal
	delivery.expectedDate = expectedDate
	delivery.deliveredAt = deliveredAt
	delivery.notes = notes
	delivery.driverID = driverID
	delivery.routeID = routeID

	return delivery, nil
}

// Validate checks that the Delivery was created via one of the constructors.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by ID.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Delivery) ID() kernel.UUID                   { return d.id }
func (d *Delivery) TrackingCode() kernel.TrackingCode { return d.trackingCode }
func (d *Delivery) CustomerID() kernel.UUID           { return d.customerID }
func (d *Delivery) OriginAddress() string             { return d.originAddress }
func (d *Delivery) DestinationAddress() string        { return d.destinationAddress }
func (d *Delivery) OriginPostal() string              { return d.originPostal }
func (d *Delivery) DestinationPostal() string         { return d.destinationPostal }
func (d *Delivery) Status() Status                    { return d.status }
func (d *Delivery) RequiredCapacity() int             { return d.requiredCapacity }
func (d *Delivery) FreightValue() float64             { return d.freightValue }
func (d *Delivery) RequestedAt() time.Time            { return d.requestedAt }
func (d *Delivery) ExpectedDate() *time.Time          { return d.expectedDate }
func (d *Delivery) DeliveredAt() *time.Time           { return d.deliveredAt }
func (d *Delivery) Notes() string                     { return d.notes }
func (d *Delivery) DriverID() *kernel.UUID            { return d.driverID }
func (d *Delivery) RouteID() *kernel.UUID             { return d.routeID }

// ChangeStatus moves the delivery to newStatus and returns the history entry
// recording the change. actorDriverID identifies the driver performing the
// change, nil for back-office changes. The first transition to delivered
// stamps the delivered timestamp.
func (d *Delivery) ChangeStatus(newStatus Status, note string, actorDriverID *kernel.UUID) (*StatusHistory, error) {
	if err := newStatus.Validate(); err != nil {
		return nil, err
	}

	history, err := NewStatusHistory(kernel.NewUUID(), d.id, d.status, newStatus, note, actorDriverID)
	if err != nil {
		return nil, err
	}

	d.status = newStatus
	if newStatus == StatusDelivered && d.deliveredAt == nil {
		now := time.Now().UTC()
		d.deliveredAt = &now
	}

	return history, nil
}

// AssignDriver assigns the delivery to a driver and returns the history entry
// noting the assignment. The status does not change.
func (d *Delivery) AssignDriver(driverID kernel.UUID, driverName string) (*StatusHistory, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	note := fmt.Sprintf("Motorista %s atribuído à entrega", driverName)
	history, err := NewStatusHistory(kernel.NewUUID(), d.id, d.status, d.status, note, &driverID)
	if err != nil {
		return nil, err
	}

	d.driverID = &driverID
	return history, nil
}

// AttachToRoute records the delivery's membership on a route.
func (d *Delivery) AttachToRoute(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	d.routeID = &routeID
	return nil
}

// DetachFromRoute clears the delivery's route membership.
func (d *Delivery) DetachFromRoute() {
	d.routeID = nil
}

// BelongsToDriver reports whether the delivery is assigned to the given driver.
func (d *Delivery) BelongsToDriver(driverID kernel.UUID) bool {
	return d.driverID != nil && d.driverID.IsEqual(driverID)
}

// Update replaces the delivery's mutable attributes. The tracking code,
// customer, status and timestamps stay untouched; status changes go through
// ChangeStatus so they always leave a history trail.
func (d *Delivery) Update(
	originAddress, destinationAddress, originPostal, destinationPostal string,
	requiredCapacity int,
	freightValue float64,
	expectedDate *time.Time,
	notes string,
) error {
	if err := errors.Join(
		d.setAddresses(originAddress, destinationAddress),
		d.setRequiredCapacity(requiredCapacity),
		d.setFreightValue(freightValue),
	); err != nil {
		return err
	}
	d.originPostal = originPostal
	d.destinationPostal = destinationPostal
	d.expectedDate = expectedDate
	d.notes = notes
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setTrackingCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	d.trackingCode = code
	return nil
}

func (d *Delivery) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	d.customerID = id
	return nil
}

func (d *Delivery) setAddresses(origin, destination string) error {
	if strings.TrimSpace(origin) == "" {
		return errs.NewValueIsRequiredError("originAddress")
	}
	if strings.TrimSpace(destination) == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}
	d.originAddress = origin
	d.destinationAddress = destination
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) setRequiredCapacity(capacity int) error {
	if capacity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("requiredCapacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	d.requiredCapacity = capacity
	return nil
}

func (d *Delivery) setFreightValue(value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("freightValue",
			fmt.Errorf("%.2f is negative", value))
	}
	d.freightValue = value
	return nil
}
