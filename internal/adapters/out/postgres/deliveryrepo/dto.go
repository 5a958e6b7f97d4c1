// Package deliveryrepo implements delivery persistence over GORM, including
// the append-only status history table.
package deliveryrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the database representation of a delivery aggregate.
// Deliveries are removed together with their customer; a deleted driver only
// clears the reference. The route reference is constrained from the route
// side to keep the package dependencies one-directional.
type DeliveryDTO struct {
	ID                 uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	TrackingCode       string                    `gorm:"uniqueIndex;not null"`
	CustomerID         uuid.UUID                 `gorm:"type:uuid;index;not null"`
	Customer           *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	OriginAddress      string                    `gorm:"not null"`
	DestinationAddress string                    `gorm:"not null"`
	OriginPostal       string
	DestinationPostal  string
	Status             string `gorm:"index;not null"`
	RequiredCapacity   int    `gorm:"not null"`
	FreightValue       float64
	RequestedAt        time.Time
	ExpectedDate       *time.Time
	DeliveredAt        *time.Time
	Notes              string
	DriverID           *uuid.UUID            `gorm:"type:uuid;index"`
	Driver             *driverrepo.DriverDTO `gorm:"foreignKey:DriverID;constraint:OnDelete:SET NULL"`
	RouteID            *uuid.UUID            `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// StatusHistoryDTO is one row of a delivery's status trail. Rows are only
// ever inserted.
type StatusHistoryDTO struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	DeliveryID     uuid.UUID    `gorm:"type:uuid;index;not null"`
	Delivery       *DeliveryDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
	PreviousStatus string       `gorm:"not null"`
	NewStatus      string       `gorm:"not null"`
	Note           string
	DriverID       *uuid.UUID            `gorm:"type:uuid"`
	Driver         *driverrepo.DriverDTO `gorm:"foreignKey:DriverID;constraint:OnDelete:SET NULL"`
	RecordedAt     time.Time             `gorm:"index"`
}

// TableName overrides GORM's default naming to use "delivery_status_history".
func (StatusHistoryDTO) TableName() string {
	return "delivery_status_history"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var driverID, routeID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}
	if id := aggregate.RouteID(); id != nil {
		raw := id.Bytes()
		routeID = &raw
	}

	return DeliveryDTO{
		ID:                 aggregate.ID().Bytes(),
		TrackingCode:       aggregate.TrackingCode().String(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		OriginAddress:      aggregate.OriginAddress(),
		DestinationAddress: aggregate.DestinationAddress(),
		OriginPostal:       aggregate.OriginPostal(),
		DestinationPostal:  aggregate.DestinationPostal(),
		Status:             aggregate.Status().String(),
		RequiredCapacity:   aggregate.RequiredCapacity(),
		FreightValue:       aggregate.FreightValue(),
		RequestedAt:        aggregate.RequestedAt(),
		ExpectedDate:       aggregate.ExpectedDate(),
		DeliveredAt:        aggregate.DeliveredAt(),
		Notes:              aggregate.Notes(),
		DriverID:           driverID,
		RouteID:            routeID,
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingCode, err := kernel.TrackingCodeFromString(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverID, routeID *kernel.UUID
	if dto.DriverID != nil {
		converted, drvErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if drvErr != nil {
			return nil, drvErr
		}
		driverID = &converted
	}
	if dto.RouteID != nil {
		converted, rtErr := kernel.UUIDFromBytes((*dto.RouteID)[:])
		if rtErr != nil {
			return nil, rtErr
		}
		routeID = &converted
	}

	return delivery.RestoreDelivery(
		id, trackingCode, customerID,
		dto.OriginAddress, dto.DestinationAddress, dto.OriginPostal, dto.DestinationPostal,
		status, dto.RequiredCapacity, dto.FreightValue,
		dto.RequestedAt, dto.ExpectedDate, dto.DeliveredAt,
		dto.Notes, driverID, routeID,
	)
}

func historyFromDomain(entry *delivery.StatusHistory) StatusHistoryDTO {
	var driverID *uuid.UUID
	if id := entry.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return StatusHistoryDTO{
		ID:             entry.ID().Bytes(),
		DeliveryID:     entry.DeliveryID().Bytes(),
		PreviousStatus: entry.PreviousStatus().String(),
		NewStatus:      entry.NewStatus().String(),
		Note:           entry.Note(),
		DriverID:       driverID,
		RecordedAt:     entry.RecordedAt(),
	}
}
