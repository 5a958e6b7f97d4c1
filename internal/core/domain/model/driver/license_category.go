package driver

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// LicenseCategory is the driving license class required to operate vehicles.
// Categories follow the Brazilian CNH scheme: B covers cars, C light trucks,
// D buses, E articulated trucks.
type LicenseCategory string

const (
	LicenseB LicenseCategory = "B"
	LicenseC LicenseCategory = "C"
	LicenseD LicenseCategory = "D"
	LicenseE LicenseCategory = "E"
)

// LicenseCategoryFromString parses and normalizes a license category.
func LicenseCategoryFromString(s string) (LicenseCategory, error) {
	category := LicenseCategory(strings.ToUpper(strings.TrimSpace(s)))
	if err := category.Validate(); err != nil {
		return "", err
	}
	return category, nil
}

// Validate checks if the category is one of the enumerated classes.
func (c LicenseCategory) Validate() error {
	switch c {
	case LicenseB, LicenseC, LicenseD, LicenseE:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"licenseCategory", fmt.Errorf("%q is not a valid license category", string(c)))
	}
}

func (c LicenseCategory) String() string {
	return string(c)
}
