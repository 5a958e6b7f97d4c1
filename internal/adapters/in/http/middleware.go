package http

import (
	"net/http"
	"strings"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// principal is the authenticated caller as extracted from the access token.
// DriverID is nil for back-office accounts.
type principal struct {
	Username string
	Role     account.Role
	DriverID *kernel.UUID
}

func (p principal) isAdmin() bool {
	return p.Role == account.RoleAdmin
}

// ownsDriver reports whether the caller is the driver identified by id.
// Admins own every record.
func (p principal) ownsDriver(id kernel.UUID) bool {
	if p.isAdmin() {
		return true
	}
	return p.DriverID != nil && p.DriverID.IsEqual(id)
}

// scopeDriverID returns the driver id queries must be filtered to: nil for
// admins (unscoped), the caller's own id for drivers.
func (p principal) scopeDriverID() *kernel.UUID {
	if p.isAdmin() {
		return nil
	}
	return p.DriverID
}

// authenticate parses the bearer token and stores the principal in the
// request context. Requests without a valid access token get 401.
func authenticate(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				return respondErrorStatus(ctx, http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := tokens.ParseAccess(strings.TrimSpace(token))
			if err != nil {
				return respondErrorStatus(ctx, http.StatusUnauthorized, "invalid or expired token")
			}

			if claims.Subject == "" {
				return respondErrorStatus(ctx, http.StatusUnauthorized, "invalid token subject")
			}

			role, err := account.RoleFromString(claims.Role)
			if err != nil {
				return respondErrorStatus(ctx, http.StatusUnauthorized, "invalid token role")
			}

			caller := principal{Username: claims.Subject, Role: role}
			if claims.DriverID != "" {
				driverID, idErr := kernel.UUIDFromString(claims.DriverID)
				if idErr != nil {
					return respondErrorStatus(ctx, http.StatusUnauthorized, "invalid token driver")
				}
				caller.DriverID = &driverID
			}

			ctx.Set(principalContextKey, caller)

			return next(ctx)
		}
	}
}

// requireAdmin rejects non-admin callers with 403.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if !callerFrom(ctx).isAdmin() {
			return respondForbidden(ctx)
		}
		return next(ctx)
	}
}

// callerFrom returns the principal stored by the authenticate middleware.
func callerFrom(ctx echo.Context) principal {
	caller, _ := ctx.Get(principalContextKey).(principal)
	return caller
}
