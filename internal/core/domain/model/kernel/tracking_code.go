package kernel

import (
	"regexp"
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTrackingCodeIsNotConstructed indicates that a TrackingCode was not properly
// initialized through one of the constructor functions.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingCode must be created via NewTrackingCode or TrackingCodeFromString")

var trackingCodePattern = regexp.MustCompile(`^[0-9A-F]{8}$`)

// TrackingCode is a value object that represents the short public identifier of a
// delivery. Customers use it to follow a delivery without authenticating, so it
// never exposes the internal UUID.
//
// A tracking code is always 8 uppercase hexadecimal characters, derived from the
// first segment of a freshly generated UUID.
//
// The zero value of TrackingCode is invalid and must be constructed using
// NewTrackingCode or TrackingCodeFromString.
type TrackingCode struct {
	code string
}

// NewTrackingCode generates a new random tracking code.
func NewTrackingCode() TrackingCode {
	return TrackingCode{
		code: strings.ToUpper(uuid.NewString()[:8]),
	}
}

// TrackingCodeFromString parses a tracking code from its string representation.
// Lowercase input is accepted and normalized to uppercase.
// Returns an error if the string is not 8 hexadecimal characters.
func TrackingCodeFromString(s string) (TrackingCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if !trackingCodePattern.MatchString(normalized) {
		return TrackingCode{}, errs.NewValueIsInvalidError("trackingCode")
	}
	return TrackingCode{code: normalized}, nil
}

// String returns the 8-character uppercase representation of the tracking code.
func (t TrackingCode) String() string {
	return t.code
}

// IsEqual compares two tracking codes for equality.
func (t TrackingCode) IsEqual(other TrackingCode) bool {
	return t.code == other.code
}

// Validate checks if the TrackingCode is properly constructed.
// Returns ErrTrackingCodeIsNotConstructed for a zero value.
func (t TrackingCode) Validate() error {
	if t.code == "" {
		return ErrTrackingCodeIsNotConstructed
	}
	return nil
}
