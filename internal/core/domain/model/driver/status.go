package driver

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the operational state of a driver.
//
// State transitions:
//
//	available ──> en_route ──> available
//	active/inactive are administrative flags set through updates
//
// The string values are the wire and storage representation.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive marks a driver enabled for work but not yet scheduled.
	StatusActive

	// StatusInactive marks a driver administratively disabled.
	StatusInactive

	// StatusEnRoute marks a driver currently executing a route.
	StatusEnRoute

	// StatusAvailable marks a driver ready to receive deliveries. Default for new drivers.
	StatusAvailable
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusActive:    "active",
		StatusInactive:  "inactive",
		StatusEnRoute:   "en_route",
		StatusAvailable: "available",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:    "active",
		StatusInactive:  "inactive",
		StatusEnRoute:   "en_route",
		StatusAvailable: "available",
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
		"status", fmt.Errorf("%q is not a valid driver status", s))
}

// Validate checks if the Status value is one of the enumerated states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid driver status", s))
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

// CanReceiveDeliveries reports whether deliveries may be assigned to a driver
// in this status. Only active and available drivers qualify.
func (s Status) CanReceiveDeliveries() bool {
	return s == StatusActive || s == StatusAvailable
}
