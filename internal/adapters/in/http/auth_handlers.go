package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// IssueToken handles POST /api/v1/auth/token. Invalid credentials always
// answer 401 with the same message, whether the username or the password
// was wrong.
func (s *Server) IssueToken(ctx echo.Context) error {
	var req tokenRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	query, err := queries.NewGetAccountProfileQuery(req.Username)
	if err != nil {
		return respondErrorStatus(ctx, http.StatusUnauthorized, "invalid credentials")
	}

	profile, err := s.queries.GetAccountProfile.Handle(ctx.Request().Context(), query)
	if err != nil || !auth.CheckPassword(profile.PasswordHash, req.Password) {
		return respondErrorStatus(ctx, http.StatusUnauthorized, "invalid credentials")
	}

	return s.respondTokenPair(ctx, profile)
}

// RefreshToken handles POST /api/v1/auth/refresh. The account is reloaded
// so a driver unlinked since the last issue stops receiving driver claims.
func (s *Server) RefreshToken(ctx echo.Context) error {
	var req refreshRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	claims, err := s.tokens.ParseRefresh(req.RefreshToken)
	if err != nil {
		return respondErrorStatus(ctx, http.StatusUnauthorized, "invalid or expired refresh token")
	}

	query, err := queries.NewGetAccountProfileQuery(claims.Subject)
	if err != nil {
		return respondErrorStatus(ctx, http.StatusUnauthorized, "invalid or expired refresh token")
	}

	profile, err := s.queries.GetAccountProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondErrorStatus(ctx, http.StatusUnauthorized, "invalid or expired refresh token")
	}

	return s.respondTokenPair(ctx, profile)
}

func (s *Server) respondTokenPair(ctx echo.Context, profile *queries.AccountProfileResponse) error {
	driverID := ""
	if profile.DriverID != nil {
		driverID = profile.DriverID.String()
	}

	pair, err := s.tokens.IssuePair(profile.Username, profile.Role, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	user := userSummary{
		ID:       profile.AccountID.String(),
		Username: profile.Username,
		Email:    profile.Email,
		Role:     profile.Role,
	}
	if profile.DriverID != nil {
		user.Motorista = &motoristaSummary{
			ID:     profile.DriverID.String(),
			Nome:   derefString(profile.DriverName),
			Status: derefString(profile.DriverStatus),
		}
	}

	return ctx.JSON(http.StatusOK, tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
		User:         user,
	})
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
