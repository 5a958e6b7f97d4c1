package delivery

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

// ErrStatusHistoryIsNotConstructed is returned when using an improperly
// initialized StatusHistory.
var ErrStatusHistoryIsNotConstructed = errors.New(
	"StatusHistory must be created via NewStatusHistory constructor")

// StatusHistory is an append-only record of a delivery status change.
// Entries are produced by the Delivery aggregate and never updated or
// deleted, except when the owning delivery is removed.
type StatusHistory struct {
	id             kernel.UUID
	deliveryID     kernel.UUID
	previousStatus Status
	newStatus      Status
	note           string
	driverID       *kernel.UUID
	recordedAt     time.Time

	guard guard.ConstructorGuard
}

// NewStatusHistory records a status change at the current time.
// driverID identifies the acting driver, nil for back-office changes.
func NewStatusHistory(
	id, deliveryID kernel.UUID,
	previousStatus, newStatus Status,
	note string,
	driverID *kernel.UUID,
) (*StatusHistory, error) {
	history := &StatusHistory{
		recordedAt: time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		history.setID(id),
		history.setDeliveryID(deliveryID),
		history.setStatuses(previousStatus, newStatus),
	); err != nil {
		return nil, err
	}

	history.note = note
	history.driverID = driverID

	return history, nil
}

// RestoreStatusHistory reconstructs a history entry from persistent storage.
func RestoreStatusHistory(
	id, deliveryID kernel.UUID,
	previousStatus, newStatus Status,
	note string,
	driverID *kernel.UUID,
	recordedAt time.Time,
) (*StatusHistory, error) {
	history := &StatusHistory{
		recordedAt: recordedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		history.setID(id),
		history.setDeliveryID(deliveryID),
		history.setStatuses(previousStatus, newStatus),
	); err != nil {
		return nil, err
	}

	history.note = note
	history.driverID = driverID

	return history, nil
}

// Validate checks that the entry was created via one of the constructors.
func (h *StatusHistory) Validate() error {
	if h == nil {
		return ErrStatusHistoryIsNotConstructed
	}
	return h.guard.Validate(ErrStatusHistoryIsNotConstructed)
}

func (h *StatusHistory) ID() kernel.UUID         { return h.id }
func (h *StatusHistory) DeliveryID() kernel.UUID { return h.deliveryID }
func (h *StatusHistory) PreviousStatus() Status  { return h.previousStatus }
func (h *StatusHistory) NewStatus() Status       { return h.newStatus }
func (h *StatusHistory) Note() string            { return h.note }
func (h *StatusHistory) DriverID() *kernel.UUID  { return h.driverID }
func (h *StatusHistory) RecordedAt() time.Time   { return h.recordedAt }

func (h *StatusHistory) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *StatusHistory) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.deliveryID = id
	return nil
}

func (h *StatusHistory) setStatuses(previous, next Status) error {
	if err := errors.Join(previous.Validate(), next.Validate()); err != nil {
		return err
	}
	h.previousStatus = previous
	h.newStatus = next
	return nil
}
