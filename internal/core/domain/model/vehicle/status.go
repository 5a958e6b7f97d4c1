package vehicle

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the operational state of a vehicle.
//
// State transitions:
//
//	available ──> in_use ──> available
//	available <──> maintenance
//
// The string values are the wire and storage representation.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable marks a vehicle ready to be assigned. Default for new vehicles.
	StatusAvailable

	// StatusInUse marks a vehicle currently assigned to a driver or route.
	StatusInUse

	// StatusMaintenance marks a vehicle out of service.
	StatusMaintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "unknown",
		StatusAvailable:   "available",
		StatusInUse:       "in_use",
		StatusMaintenance: "maintenance",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable:   "available",
		StatusInUse:       "in_use",
		StatusMaintenance: "maintenance",
	}
}

// StatusFromString parses a wire representation into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid vehicle status", s))
}

// Validate checks if the Status value is one of the enumerated states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid vehicle status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
