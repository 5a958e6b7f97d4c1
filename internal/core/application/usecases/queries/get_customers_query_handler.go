package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersQueryHandler retrieves customer read models from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer queries.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the query. When the query names a single customer and no
// row matches, an object-not-found error is returned.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			email,
			phone,
			tax_id,
			address,
			postal_code,
			registered_at
		FROM customers
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.CustomerID() != nil {
		sql += ` AND id = ?`
		args = append(args, query.CustomerID().String())
	}
	if query.DriverID() != nil {
		sql += ` AND id IN (SELECT customer_id FROM deliveries WHERE driver_id = ?)`
		args = append(args, query.DriverID().String())
	}
	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerResponse, 0)

	for rows.Next() {
		var resp CustomerResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&resp.Phone,
			&resp.TaxID,
			&resp.Address,
			&resp.PostalCode,
			&resp.RegisteredAt,
		); err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = customerID

		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if query.CustomerID() != nil && len(customers) == 0 {
		return nil, errs.NewObjectNotFoundError("customerId", query.CustomerID().String())
	}

	return customers, nil
}
