// Package customerrepo implements customer persistence over GORM.
package customerrepo

import (
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the database representation of a customer aggregate.
// Email and tax ID carry unique indexes so duplicates fail at the database.
type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Phone        string
	TaxID        string `gorm:"uniqueIndex;not null"`
	Address      string
	PostalCode   string
	RegisteredAt time.Time
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		TaxID:        aggregate.TaxID(),
		Address:      aggregate.Address(),
		PostalCode:   aggregate.PostalCode(),
		RegisteredAt: aggregate.RegisteredAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id, dto.Name, dto.Email, dto.Phone, dto.TaxID,
		dto.Address, dto.PostalCode, dto.RegisteredAt,
	)
}
