package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret", "logistics", time.Hour, 24*time.Hour)
	require.NoError(t, err)
	return tokens
}

func invokeAuthenticated(t *testing.T, tokens *auth.TokenService, header string) (*httptest.ResponseRecorder, principal) {
	t.Helper()

	var captured principal
	handler := authenticate(tokens)(func(ctx echo.Context) error {
		captured = callerFrom(ctx)
		return ctx.NoContent(http.StatusOK)
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec, captured
}

func TestAuthenticate_MissingToken(t *testing.T) {
	rec, _ := invokeAuthenticated(t, newTestTokenService(t), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	rec, _ := invokeAuthenticated(t, newTestTokenService(t), "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_RefreshTokenRejectedAsAccess(t *testing.T) {
	tokens := newTestTokenService(t)
	pair, err := tokens.IssuePair("admin", account.RoleAdmin.String(), "")
	require.NoError(t, err)

	rec, _ := invokeAuthenticated(t, tokens, "Bearer "+pair.RefreshToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_AdminPrincipal(t *testing.T) {
	tokens := newTestTokenService(t)
	pair, err := tokens.IssuePair("admin", account.RoleAdmin.String(), "")
	require.NoError(t, err)

	rec, caller := invokeAuthenticated(t, tokens, "Bearer "+pair.AccessToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", caller.Username)
	assert.True(t, caller.isAdmin())
	assert.Nil(t, caller.DriverID)
	assert.Nil(t, caller.scopeDriverID())
}

func TestAuthenticate_DriverPrincipalIsScoped(t *testing.T) {
	tokens := newTestTokenService(t)
	driverID := kernel.NewUUID()
	pair, err := tokens.IssuePair("motorista_123", account.RoleDriver.String(), driverID.String())
	require.NoError(t, err)

	rec, caller := invokeAuthenticated(t, tokens, "Bearer "+pair.AccessToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, caller.isAdmin())
	require.NotNil(t, caller.DriverID)
	assert.True(t, caller.DriverID.IsEqual(driverID))
	require.NotNil(t, caller.scopeDriverID())

	assert.True(t, caller.ownsDriver(driverID))
	assert.False(t, caller.ownsDriver(kernel.NewUUID()))
}

func TestRequireAdmin(t *testing.T) {
	handler := requireAdmin(func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusOK)
	})

	run := func(caller principal) int {
		e := echo.New()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		ctx.Set(principalContextKey, caller)
		require.NoError(t, handler(ctx))
		return rec.Code
	}

	driverID := kernel.NewUUID()
	assert.Equal(t, http.StatusOK, run(principal{Username: "admin", Role: account.RoleAdmin}))
	assert.Equal(t, http.StatusForbidden, run(principal{Username: "drv", Role: account.RoleDriver, DriverID: &driverID}))
}

func TestAdminOwnsEveryDriver(t *testing.T) {
	admin := principal{Username: "admin", Role: account.RoleAdmin}
	assert.True(t, admin.ownsDriver(kernel.NewUUID()))
}
