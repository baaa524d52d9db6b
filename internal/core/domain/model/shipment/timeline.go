package shipment

import (
	"errors"
	"time"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

// ErrTimelineEntryIsNotConstructed is returned when using an improperly
// initialized TimelineEntry.
var ErrTimelineEntryIsNotConstructed = errors.New(
	"TimelineEntry must be created via NewTimelineEntry constructor",
)

// TimelineEntry is one immutable, timestamped record of a shipment's status
// at a point in time. Entries form the shipment's append-only audit ledger:
// one is written for every accepted status change, including creation, and
// none is ever edited or removed.
type TimelineEntry struct {
	id        kernel.UUID
	status    Status
	location  string
	timestamp time.Time
	note      string
	guard     guard.ConstructorGuard
}

// NewTimelineEntry creates a timeline entry for the given status change.
// The timestamp is supplied by the caller so the clock stays injectable.
func NewTimelineEntry(id kernel.UUID, status Status, location string, timestamp time.Time, note string) (TimelineEntry, error) {
	if err := id.Validate(); err != nil {
		return TimelineEntry{}, err
	}
	if err := status.Validate(); err != nil {
		return TimelineEntry{}, err
	}
	if location == "" {
		return TimelineEntry{}, errs.NewValueIsRequiredError("location")
	}
	if timestamp.IsZero() {
		return TimelineEntry{}, errs.NewValueIsRequiredError("timestamp")
	}

	return TimelineEntry{
		id:        id,
		status:    status,
		location:  location,
		timestamp: timestamp,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreTimelineEntry reconstructs a timeline entry from persistent storage.
func RestoreTimelineEntry(id kernel.UUID, status Status, location string, timestamp time.Time, note string) (TimelineEntry, error) {
	return NewTimelineEntry(id, status, location, timestamp, note)
}

// Validate checks if the entry was properly constructed.
func (e TimelineEntry) Validate() error {
	return e.guard.Validate(ErrTimelineEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e TimelineEntry) ID() kernel.UUID {
	return e.id
}

// Status returns the shipment status this entry records.
func (e TimelineEntry) Status() Status {
	return e.status
}

// Location returns the location recorded for this entry.
func (e TimelineEntry) Location() string {
	return e.location
}

// Timestamp returns the wall-clock time the status change was recorded.
func (e TimelineEntry) Timestamp() time.Time {
	return e.timestamp
}

// Note returns the optional free-text note attached to the entry.
func (e TimelineEntry) Note() string {
	return e.note
}

// transitLocation derives the ledger location for a status change from the
// shipment's origin and destination. Table-driven: one rule per status,
// built once, queried per transition.
var transitLocations = map[Status]func(origin, destination string) string{
	Pending:        func(origin, _ string) string { return origin },
	PickedUp:       func(origin, _ string) string { return origin + " (Pickup Location)" },
	InTransit:      func(_, _ string) string { return "In Transit" },
	OutForDelivery: func(_, destination string) string { return destination + " (Local Hub)" },
	Delivered:      func(_, destination string) string { return destination },
	Cancelled:      func(_, _ string) string { return "Cancelled" },
}

// TransitLocation returns the ledger location recorded for the given status.
func TransitLocation(status Status, origin, destination string) string {
	rule, ok := transitLocations[status]
	if !ok {
		return origin
	}
	return rule(origin, destination)
}
