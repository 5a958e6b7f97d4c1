package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAccountProfileQueryHandler loads the account read model used by the
// authentication endpoints.
type GetAccountProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountProfileQueryHandler creates a handler for account profile queries.
func NewGetAccountProfileQueryHandler(db *gorm.DB) GetAccountProfileQueryHandler {
	return GetAccountProfileQueryHandler{db: db}
}

// Handle executes the query. Unknown usernames return an object-not-found
// error so callers can turn it into a uniform credential failure.
func (h GetAccountProfileQueryHandler) Handle(
	ctx context.Context,
	query GetAccountProfileQuery,
) (*AccountProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.username,
			a.email,
			a.password_hash,
			a.role,
			a.created_at,
			d.id,
			d.name,
			d.status
		FROM accounts a
		LEFT JOIN drivers d ON d.account_id = a.id
		WHERE a.username = ?
	`, query.Username()).Row()

	var resp AccountProfileResponse
	var accountID uuid.UUID
	var driverID *uuid.UUID

	err := row.Scan(
		&accountID,
		&resp.Username,
		&resp.Email,
		&resp.PasswordHash,
		&resp.Role,
		&resp.CreatedAt,
		&driverID,
		&resp.DriverName,
		&resp.DriverStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("username", query.Username())
	}
	if err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromBytes(accountID[:])
	if err != nil {
		return nil, err
	}
	resp.AccountID = id

	if driverID != nil {
		converted, idErr := kernel.UUIDFromBytes((*driverID)[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.DriverID = &converted
	}

	return &resp, nil
}
