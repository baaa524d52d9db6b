package warehouse

import (
	"fmt"

	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
)

// Status represents the operational state of a warehouse.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Operational means the warehouse accepts inventory movements.
	Operational

	// Closed means the warehouse rejects all inventory movements.
	Closed
)

var statusStrings = map[Status]string{
	StatusUnknown: "UNKNOWN",
	Operational:   "OPERATIONAL",
	Closed:        "CLOSED",
}

// StatusFromString parses a wire representation into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"warehouse status",
		fmt.Errorf("%s is not a valid warehouse status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > Closed {
		return errs.NewValueIsInvalidErrorWithCause(
			"warehouse status",
			fmt.Errorf("%d is not a valid warehouse status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "UNKNOWN"
}
