// Package driverrepo implements driver persistence over GORM.
package driverrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/accountrepo"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the database representation of a driver aggregate.
// Statuses and license categories are stored as their string forms.
type DriverDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"not null"`
	TaxID           string    `gorm:"uniqueIndex;not null"`
	LicenseCategory string    `gorm:"not null"`
	LicenseNumber   string    `gorm:"uniqueIndex;not null"`
	Phone           string
	Email           string `gorm:"uniqueIndex"`
	Status          string `gorm:"index;not null"`
	BirthDate       *time.Time
	AccountID       *uuid.UUID              `gorm:"type:uuid;index"`
	Account         *accountrepo.AccountDTO `gorm:"foreignKey:AccountID;constraint:OnDelete:SET NULL"`
	RegisteredAt    time.Time
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	var accountID *uuid.UUID
	if id := aggregate.AccountID(); id != nil {
		raw := id.Bytes()
		accountID = &raw
	}

	return DriverDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		TaxID:           aggregate.TaxID(),
		LicenseCategory: aggregate.LicenseCategory().String(),
		LicenseNumber:   aggregate.LicenseNumber(),
		Phone:           aggregate.Phone(),
		Email:           aggregate.Email(),
		Status:          aggregate.Status().String(),
		BirthDate:       aggregate.BirthDate(),
		AccountID:       accountID,
		RegisteredAt:    aggregate.RegisteredAt(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := driver.LicenseCategoryFromString(dto.LicenseCategory)
	if err != nil {
		return nil, err
	}

	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var accountID *kernel.UUID
	if dto.AccountID != nil {
		converted, accErr := kernel.UUIDFromBytes((*dto.AccountID)[:])
		if accErr != nil {
			return nil, accErr
		}
		accountID = &converted
	}

	return driver.RestoreDriver(
		id, dto.Name, dto.TaxID, category, dto.LicenseNumber,
		dto.Phone, dto.Email, status, dto.BirthDate, accountID, dto.RegisteredAt,
	)
}
