package account

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Role determines what an account is allowed to do. Admins manage the whole
// system; drivers only see and update their own deliveries and routes.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDriver Role = "driver"
)

// RoleFromString parses and normalizes a role.
func RoleFromString(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks if the role is one of the enumerated values.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleDriver:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
