package vehicle

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Kind classifies the vehicle body type.
type Kind string

const (
	KindCar   Kind = "car"
	KindVan   Kind = "van"
	KindTruck Kind = "truck"
)

// KindFromString parses and normalizes a vehicle kind.
func KindFromString(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	if err := kind.Validate(); err != nil {
		return "", err
	}
	return kind, nil
}

// Validate checks if the kind is one of the enumerated body types.
func (k Kind) Validate() error {
	switch k {
	case KindCar, KindVan, KindTruck:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"kind", fmt.Errorf("%q is not a valid vehicle kind", string(k)))
	}
}

func (k Kind) String() string {
	return string(k)
}
