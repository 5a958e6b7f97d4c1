package queries

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrGetAccountProfileQueryIsNotConstructed is returned when the query was not
// created through its constructor.
var ErrGetAccountProfileQueryIsNotConstructed = errors.New(
	"GetAccountProfileQuery must be created via NewGetAccountProfileQuery constructor")

// GetAccountProfileQuery looks up a login account by username, together with
// the driver profile linked to it, if any.
//
//nolint:recvcheck //using for validation
type GetAccountProfileQuery struct {
	username string

	guard guard.ConstructorGuard
}

// NewGetAccountProfileQuery creates a query for one account profile.
func NewGetAccountProfileQuery(username string) (GetAccountProfileQuery, error) {
	if strings.TrimSpace(username) == "" {
		return GetAccountProfileQuery{}, errs.NewValueIsRequiredError("username")
	}

	return GetAccountProfileQuery{
		username: username,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountProfileQueryIsNotConstructed)
}

func (q GetAccountProfileQuery) Username() string { return q.username }

// AccountProfileResponse is the authentication read model. PasswordHash is
// exposed so the login flow can verify credentials without loading the
// aggregate.
type AccountProfileResponse struct {
	AccountID    kernel.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	DriverID     *kernel.UUID
	DriverName   *string
	DriverStatus *string
}
