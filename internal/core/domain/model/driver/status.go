package driver

import (
	"fmt"

	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
)

// Status represents the lifecycle state of a driver.
// It implements a state machine with defined transitions to ensure
// drivers follow the correct availability workflow.
//
// State transitions:
//
//	           ┌──> OffDuty ──┐
//	Available ─┤              ├──> Available
//	           └──> OnLeave ──┘
//	Available ──> OnDuty (only with an assigned truck)
//	OnDuty ──> Available (only after the truck is released)
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Available means the driver is free to take a truck assignment.
	Available

	// OnDuty means the driver currently holds a truck and may carry shipments.
	OnDuty

	// OffDuty means the driver is not working. Reachable from Available only.
	OffDuty

	// OnLeave means the driver is on leave. Reachable from Available only.
	OnLeave
)

// statusStrings maps Status values to their wire representations.
var statusStrings = map[Status]string{
	StatusUnknown: "UNKNOWN",
	Available:     "AVAILABLE",
	OnDuty:        "ON_DUTY",
	OffDuty:       "OFF_DUTY",
	OnLeave:       "ON_LEAVE",
}

// statusTransitions is the legal-transition table, built once and consulted
// before any mutation. A missing pair means the transition is rejected.
// The Available -> OnDuty edge carries an extra precondition (an assigned
// truck) that only the aggregate can check; see Driver.ChangeStatus.
var statusTransitions = map[Status]map[Status]bool{
	Available: {OnDuty: true, OffDuty: true, OnLeave: true},
	OnDuty:    {},
	OffDuty:   {Available: true},
	OnLeave:   {Available: true},
}

// StatusFromString parses a wire representation into a Status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"driver status",
		fmt.Errorf("%s is not a valid driver status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Available, OnDuty, OffDuty, OnLeave.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > OnLeave {
		return errs.NewValueIsInvalidErrorWithCause(
			"driver status",
			fmt.Errorf("%d is not a valid driver status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
// Returns "UNKNOWN" for invalid status values.
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateCanHoldTruck validates the consistency between driver status and
// the assignment slot. OnDuty drivers must hold a truck; drivers in any other
// status must not.
func (s Status) ValidateCanHoldTruck(hasTruck bool) error {
	if hasTruck && s != OnDuty {
		return errs.NewValueIsInvalidErrorWithCause(
			"driver status",
			fmt.Errorf("%s is not a valid status to hold a truck", s.String()),
		)
	}

	if !hasTruck && s == OnDuty {
		return errs.NewValueIsInvalidErrorWithCause(
			"driver status",
			fmt.Errorf("%s is not a valid status without a truck", s.String()),
		)
	}

	return nil
}

// CanTransition reports whether the table permits moving to next.
// It is pure and side-effect-free; the aggregate layers the truck-related
// preconditions on top of it.
func (s Status) CanTransition(next Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	return allowed[next]
}
