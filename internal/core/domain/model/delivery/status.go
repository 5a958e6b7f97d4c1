package delivery

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// Any status may move to any other status within the enumerated set; the
// business keeps the history trail instead of restricting transitions, so a
// cancelled delivery can be rescheduled and put back in transit. The first
// transition into delivered stamps the delivery timestamp.
//
// The string values are the wire and storage representation.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a new delivery.
	StatusPending

	// StatusInTransit marks a delivery on a started route.
	StatusInTransit

	// StatusDelivered marks a delivery handed to the customer.
	StatusDelivered

	// StatusCancelled marks a delivery that will not happen.
	StatusCancelled

	// StatusRescheduled marks a delivery postponed to a new date.
	StatusRescheduled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "unknown",
		StatusPending:     "pending",
		StatusInTransit:   "in_transit",
		StatusDelivered:   "delivered",
		StatusCancelled:   "cancelled",
		StatusRescheduled: "rescheduled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:     "pending",
		StatusInTransit:   "in_transit",
		StatusDelivered:   "delivered",
		StatusCancelled:   "cancelled",
		StatusRescheduled: "rescheduled",
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
		"status", fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the Status value is one of the enumerated states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid delivery status", s))
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
