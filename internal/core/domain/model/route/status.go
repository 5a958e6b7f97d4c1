package route

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a route is started, completed or
// cancelled from a state that does not allow it. It maps to a conflict at the
// HTTP boundary, unlike plain validation errors.
var ErrInvalidStatusTransition = errors.New("invalid route status transition")

// Status represents the lifecycle state of a route.
//
// State transitions:
//
//	planned ──> in_progress ──> completed
//	   │             │
//	   └──> cancelled <──┘
//
// Unlike deliveries, route transitions are enforced: a completed or
// cancelled route is final.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPlanned is the initial status of a new route.
	StatusPlanned

	// StatusInProgress marks a started route.
	StatusInProgress

	// StatusCompleted marks a finished route. Final.
	StatusCompleted

	// StatusCancelled marks an abandoned route. Final.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPlanned:    "planned",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPlanned:    "planned",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
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
		"status", fmt.Errorf("%q is not a valid route status", s))
}

// Validate checks if the Status value is one of the enumerated states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid route status", s))
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

// Start transitions the status to InProgress. Only planned routes can start.
func (s Status) Start() (Status, error) {
	if s != StatusPlanned {
		return 0, fmt.Errorf("%w: %s is not a valid status to start", ErrInvalidStatusTransition, s)
	}
	return StatusInProgress, nil
}

// Complete transitions the status to Completed. Only in-progress routes can complete.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return 0, fmt.Errorf("%w: %s is not a valid status to complete", ErrInvalidStatusTransition, s)
	}
	return StatusCompleted, nil
}

// Cancel transitions the status to Cancelled from planned or in_progress.
func (s Status) Cancel() (Status, error) {
	if s != StatusPlanned && s != StatusInProgress {
		return 0, fmt.Errorf("%w: %s is not a valid status to cancel", ErrInvalidStatusTransition, s)
	}
	return StatusCancelled, nil
}
