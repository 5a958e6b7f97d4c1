package auth

import (
	"strings"
	"time"

	"logistics/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims carries the authenticated principal inside a signed token.
// Role distinguishes back-office operators from drivers; DriverID is set
// only for driver accounts and scopes their reads to their own route.
type Claims struct {
	Role      string `json:"role"`
	DriverID  string `json:"driver_id,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is the result of a successful authentication.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// TokenService issues and verifies HS256 signed tokens.
type TokenService struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService creates a TokenService. TTLs fall back to sane defaults
// when non-positive so a missing env var cannot produce instantly expired tokens.
func NewTokenService(secret, issuer string, accessTTL, refreshTTL time.Duration) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// IssuePair signs a new access/refresh token pair for the given principal.
func (s *TokenService) IssuePair(subject, role, driverID string) (TokenPair, error) {
	if strings.TrimSpace(subject) == "" {
		return TokenPair{}, errs.NewValueIsRequiredError("subject")
	}

	now := time.Now()
	accessExpires := now.Add(s.accessTTL)

	access, err := s.sign(subject, role, driverID, tokenTypeAccess, now, accessExpires)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.sign(subject, role, driverID, tokenTypeRefresh, now, now.Add(s.refreshTTL))
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    accessExpires,
	}, nil
}

func (s *TokenService) sign(subject, role, driverID, tokenType string, now, expiresAt time.Time) (string, error) {
	claims := Claims{
		Role:      role,
		DriverID:  driverID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseAccess verifies an access token and returns its claims.
func (s *TokenService) ParseAccess(tokenStr string) (*Claims, error) {
	return s.parse(tokenStr, tokenTypeAccess)
}

// ParseRefresh verifies a refresh token and returns its claims.
func (s *TokenService) ParseRefresh(tokenStr string) (*Claims, error) {
	return s.parse(tokenStr, tokenTypeRefresh)
}

func (s *TokenService) parse(tokenStr, wantType string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errs.NewValueIsInvalidError("signingMethod")
		}
		return s.secret, nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || parsed == nil || !parsed.Valid {
		return nil, errs.NewValueIsInvalidErrorWithCause("token", err)
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return nil, errs.NewValueIsInvalidError("issuer")
	}
	if claims.TokenType != wantType {
		return nil, errs.NewValueIsInvalidError("tokenType")
	}
	return claims, nil
}
