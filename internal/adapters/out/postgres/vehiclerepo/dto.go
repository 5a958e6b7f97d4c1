// Package vehiclerepo implements vehicle persistence over GORM.
package vehiclerepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO is the database representation of a vehicle aggregate. Deleting
// the current driver clears the reference.
type VehicleDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate           string    `gorm:"uniqueIndex;not null"`
	Model           string    `gorm:"not null"`
	Brand           string
	Kind            string `gorm:"not null"`
	MaxCapacity     int    `gorm:"not null"`
	Year            int
	OdometerKm      float64
	Status          string                `gorm:"index;not null"`
	CurrentDriverID *uuid.UUID            `gorm:"type:uuid;index"`
	CurrentDriver   *driverrepo.DriverDTO `gorm:"foreignKey:CurrentDriverID;constraint:OnDelete:SET NULL"`
	RegisteredAt    time.Time
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	var currentDriverID *uuid.UUID
	if id := aggregate.CurrentDriverID(); id != nil {
		raw := id.Bytes()
		currentDriverID = &raw
	}

	return VehicleDTO{
		ID:              aggregate.ID().Bytes(),
		Plate:           aggregate.Plate(),
		Model:           aggregate.Model(),
		Brand:           aggregate.Brand(),
		Kind:            aggregate.Kind().String(),
		MaxCapacity:     aggregate.MaxCapacity(),
		Year:            aggregate.Year(),
		OdometerKm:      aggregate.OdometerKm(),
		Status:          aggregate.Status().String(),
		CurrentDriverID: currentDriverID,
		RegisteredAt:    aggregate.RegisteredAt(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := vehicle.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	status, err := vehicle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var currentDriverID *kernel.UUID
	if dto.CurrentDriverID != nil {
		converted, drvErr := kernel.UUIDFromBytes((*dto.CurrentDriverID)[:])
		if drvErr != nil {
			return nil, drvErr
		}
		currentDriverID = &converted
	}

	return vehicle.RestoreVehicle(
		id, dto.Plate, dto.Model, dto.Brand, kind,
		dto.MaxCapacity, dto.Year, dto.OdometerKm,
		status, currentDriverID, dto.RegisteredAt,
	)
}
