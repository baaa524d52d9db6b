package truck

import (
	"fmt"

	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
)

// Status represents the operational state of a truck.
//
// State transitions:
//
//	Available ──> InUse        (only through driver assignment)
//	Available ──> Maintenance
//	InUse ──> Available        (only through driver release)
//	Maintenance ──> Available
//
// Maintenance -> InUse is never permitted; the truck must pass through
// Available first. InUse is entered and left exclusively by the Assignment
// Coordinator, never by a bare status update.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Available means the truck can be assigned to a driver.
	Available

	// InUse means the truck is held by exactly one on-duty driver.
	InUse

	// Maintenance means the truck is being serviced and cannot be assigned.
	Maintenance
)

var statusStrings = map[Status]string{
	StatusUnknown: "UNKNOWN",
	Available:     "AVAILABLE",
	InUse:         "IN_USE",
	Maintenance:   "MAINTENANCE",
}

// statusTransitions holds the transitions reachable through a bare status
// update. InUse is deliberately absent as a target: it is only entered via
// the assignment slot.
var statusTransitions = map[Status]map[Status]bool{
	Available:   {Maintenance: true},
	InUse:       {},
	Maintenance: {Available: true},
}

// StatusFromString parses a wire representation into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"truck status",
		fmt.Errorf("%s is not a valid truck status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > Maintenance {
		return errs.NewValueIsInvalidErrorWithCause(
			"truck status",
			fmt.Errorf("%d is not a valid truck status", s),
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

// CanTransition reports whether a bare status update may move to next.
func (s Status) CanTransition(next Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	return allowed[next]
}
