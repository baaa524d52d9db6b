package shipment

import (
	"fmt"

	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// The canonical forward flow is:
//
//	Pending ──> PickedUp ──> InTransit ──> OutForDelivery ──> Delivered
//
// A shipment may move forward along this chain, skipping intermediate stages,
// except that Delivered requires the shipment to have reached InTransit.
// Cancelled is reachable from any non-terminal state. Delivered and Cancelled
// are terminal: no further transitions are permitted.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending is the initial status of a newly created shipment.
	Pending

	// PickedUp means the shipment has been collected at its origin.
	PickedUp

	// InTransit means the shipment is moving between origin and destination.
	InTransit

	// OutForDelivery means the shipment is on its final leg to the destination.
	OutForDelivery

	// Delivered is the terminal success status.
	Delivered

	// Cancelled is the terminal failure status.
	Cancelled
)

// Domain errors for shipment status transitions.
var (
	// ErrTerminalState is returned for any transition attempt out of Delivered or Cancelled.
	ErrTerminalState = fmt.Errorf("shipment is in a terminal state")
	// ErrNotInTransit is returned when delivery is requested before the shipment is in transit.
	ErrNotInTransit = fmt.Errorf("must be in transit before delivery")
)

var statusStrings = map[Status]string{
	StatusUnknown:  "UNKNOWN",
	Pending:        "PENDING",
	PickedUp:       "PICKED_UP",
	InTransit:      "IN_TRANSIT",
	OutForDelivery: "OUT_FOR_DELIVERY",
	Delivered:      "DELIVERED",
	Cancelled:      "CANCELLED",
}

// statusTransitions is the legal-transition table, built once and consulted
// before any mutation.
var statusTransitions = map[Status]map[Status]bool{
	Pending:        {PickedUp: true, InTransit: true, Cancelled: true},
	PickedUp:       {InTransit: true, OutForDelivery: true, Cancelled: true},
	InTransit:      {OutForDelivery: true, Delivered: true, Cancelled: true},
	OutForDelivery: {Delivered: true, Cancelled: true},
	Delivered:      {},
	Cancelled:      {},
}

// ForwardFlow returns the canonical forward status sequence used by the
// tracking projection. The returned slice is a fresh copy.
func ForwardFlow() []Status {
	return []Status{Pending, PickedUp, InTransit, OutForDelivery, Delivered}
}

// StatusFromString parses a wire representation into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shipment status",
		fmt.Errorf("%s is not a valid shipment status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("%d is not a valid shipment status", s),
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

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Transition validates moving to next and returns the new status.
//
// Returns a typed business-rule violation when:
//   - the current status is terminal (ErrTerminalState)
//   - delivery is requested before InTransit (ErrNotInTransit)
//   - the table does not contain the requested edge
//
// Transition is pure: it never mutates the receiver.
func (s Status) Transition(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionErrorWithCause("shipment status", ErrTerminalState)
	}

	if next == Delivered && s != InTransit && s != OutForDelivery {
		return 0, errs.NewInvalidTransitionErrorWithCause("shipment status", ErrNotInTransit)
	}

	if !statusTransitions[s][next] {
		return 0, errs.NewInvalidTransitionError(
			"shipment status " + s.String() + " -> " + next.String(),
		)
	}

	return next, nil
}
