package shipment

import (
	"fmt"
	"strings"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
)

// trackingNumberPrefix is the fixed prefix of every tracking number.
const trackingNumberPrefix = "AX-"

// trackingNumberCodeLength is the length of the code following the prefix.
const trackingNumberCodeLength = 8

// TrackingNumber is a value object for a shipment's public tracking code,
// formatted "AX-XXXXXXXX" with an eight-character uppercase hex code.
// A tracking number is immutable once issued.
//
// The zero value is invalid; construct via TrackingNumberFromString or the
// tracking-number generator port.
type TrackingNumber struct {
	value string
}

// TrackingNumberFromUUID derives a tracking number from a UUID, taking the
// first eight hex characters of its canonical form uppercased.
func TrackingNumberFromUUID(id kernel.UUID) (TrackingNumber, error) {
	if err := id.Validate(); err != nil {
		return TrackingNumber{}, err
	}

	code := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:trackingNumberCodeLength]
	return TrackingNumber{value: trackingNumberPrefix + code}, nil
}

// TrackingNumberFromString parses and validates a tracking number.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	code, ok := strings.CutPrefix(s, trackingNumberPrefix)
	if !ok || len(code) != trackingNumberCodeLength {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("%s does not match the %sXXXXXXXX format", s, trackingNumberPrefix),
		)
	}

	for _, r := range code {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
				"trackingNumber",
				fmt.Errorf("%s contains characters outside uppercase hex", s),
			)
		}
	}

	return TrackingNumber{value: s}, nil
}

// String returns the full tracking number, e.g. "AX-1A2B3C4D".
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks if the tracking number was properly constructed.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	return nil
}
