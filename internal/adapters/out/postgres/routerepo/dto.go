// Package routerepo implements route persistence over GORM. A route's
// delivery set lives in an ordered association table that is rewritten
// whenever the aggregate is saved.
package routerepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/deliveryrepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/vehiclerepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO is the database representation of a route aggregate. UsedCapacity
// is denormalized from the association table; the reconciliation job keeps
// it honest. Deleting a route detaches its deliveries instead of removing
// them; the Deliveries association exists only to declare that constraint.
type RouteDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"not null"`
	Description      string
	DriverID         *uuid.UUID                 `gorm:"type:uuid;index"`
	Driver           *driverrepo.DriverDTO      `gorm:"foreignKey:DriverID;constraint:OnDelete:SET NULL"`
	VehicleID        *uuid.UUID                 `gorm:"type:uuid;index"`
	Vehicle          *vehiclerepo.VehicleDTO    `gorm:"foreignKey:VehicleID;constraint:OnDelete:SET NULL"`
	Deliveries       []deliveryrepo.DeliveryDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:SET NULL"`
	RouteDate        time.Time                  `gorm:"index"`
	Status           string                     `gorm:"index;not null"`
	EstimatedKm      float64
	ActualKm         *float64
	EstimatedMinutes int
	ActualMinutes    *int
	UsedCapacity     int
	CreatedAt        time.Time
	StartedAt        *time.Time
	CompletedAt      *time.Time
}

// TableName overrides GORM's default naming to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

// RouteDeliveryDTO is one ordered delivery slot on a route. Slots vanish
// with either side of the association.
type RouteDeliveryDTO struct {
	RouteID          uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	Route            *RouteDTO                 `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
	DeliveryID       uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	Delivery         *deliveryrepo.DeliveryDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
	Position         int                       `gorm:"not null"`
	RequiredCapacity int                       `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "route_deliveries".
func (RouteDeliveryDTO) TableName() string {
	return "route_deliveries"
}

func fromDomain(aggregate *route.Route) (RouteDTO, []RouteDeliveryDTO) {
	var driverID, vehicleID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}
	if id := aggregate.VehicleID(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	dto := RouteDTO{
		ID:               aggregate.ID().Bytes(),
		Name:             aggregate.Name(),
		Description:      aggregate.Description(),
		DriverID:         driverID,
		VehicleID:        vehicleID,
		RouteDate:        aggregate.RouteDate(),
		Status:           aggregate.Status().String(),
		EstimatedKm:      aggregate.EstimatedKm(),
		ActualKm:         aggregate.ActualKm(),
		EstimatedMinutes: aggregate.EstimatedMinutes(),
		ActualMinutes:    aggregate.ActualMinutes(),
		UsedCapacity:     aggregate.UsedCapacity(),
		CreatedAt:        aggregate.CreatedAt(),
		StartedAt:        aggregate.StartedAt(),
		CompletedAt:      aggregate.CompletedAt(),
	}

	items := aggregate.Items()
	itemDTOs := make([]RouteDeliveryDTO, 0, len(items))
	for position, item := range items {
		itemDTOs = append(itemDTOs, RouteDeliveryDTO{
			RouteID:          aggregate.ID().Bytes(),
			DeliveryID:       item.DeliveryID().Bytes(),
			Position:         position,
			RequiredCapacity: item.RequiredCapacity(),
		})
	}

	return dto, itemDTOs
}

func toDomain(dto RouteDTO, itemDTOs []RouteDeliveryDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := route.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverID, vehicleID *kernel.UUID
	if dto.DriverID != nil {
		converted, drvErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if drvErr != nil {
			return nil, drvErr
		}
		driverID = &converted
	}
	if dto.VehicleID != nil {
		converted, vehErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vehErr != nil {
			return nil, vehErr
		}
		vehicleID = &converted
	}

	items := make([]route.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		deliveryID, itemErr := kernel.UUIDFromBytes(itemDTO.DeliveryID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := route.NewItem(deliveryID, itemDTO.RequiredCapacity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return route.RestoreRoute(
		id, dto.Name, dto.Description, driverID, vehicleID,
		dto.RouteDate, status,
		dto.EstimatedKm, dto.ActualKm, dto.EstimatedMinutes, dto.ActualMinutes,
		items, dto.CreatedAt, dto.StartedAt, dto.CompletedAt,
	)
}
