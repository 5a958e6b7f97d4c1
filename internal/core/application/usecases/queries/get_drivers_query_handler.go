package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriversQueryHandler retrieves driver read models from the database.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for driver queries.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle executes the query. When the query names a single driver and no row
// matches, an object-not-found error is returned.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context,
	query GetDriversQuery,
) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			tax_id,
			license_category,
			license_number,
			phone,
			email,
			status,
			birth_date,
			registered_at
		FROM drivers
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.DriverID() != nil {
		sql += ` AND id = ?`
		args = append(args, query.DriverID().String())
	}
	if query.Status() != "" {
		sql += ` AND status = ?`
		args = append(args, query.Status())
	}
	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]DriverResponse, 0)

	for rows.Next() {
		var resp DriverResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.TaxID,
			&resp.LicenseCategory,
			&resp.LicenseNumber,
			&resp.Phone,
			&resp.Email,
			&resp.Status,
			&resp.BirthDate,
			&resp.RegisteredAt,
		); err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = driverID

		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if query.DriverID() != nil && len(drivers) == 0 {
		return nil, errs.NewObjectNotFoundError("driverId", query.DriverID().String())
	}

	return drivers, nil
}
