package shipment

import (
	"errors"
	"fmt"
	"time"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

// Domain errors for shipment operations.
var (
	// ErrShipmentIsNotConstructed is returned when using an improperly initialized Shipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrShipmentNotPending is returned when assigning a shipment that is past its initial state.
	ErrShipmentNotPending = errors.New("can only assign shipments in PENDING status")
	// ErrUnassignDelivered is returned when unassigning a delivered shipment.
	ErrUnassignDelivered = errors.New("cannot unassign delivered shipment")
)

// Shipment is the aggregate root for a tracked shipment. It owns the
// shipment's identity and routing details, the status state machine, weak
// references to the carrying driver/truck pair, and the append-only timeline
// ledger that records every accepted status change.
//
// Key invariants:
//   - the tracking number is immutable once issued
//   - status only moves forward along the canonical chain; Delivered and
//     Cancelled are terminal
//   - driver and truck references are set and cleared together; they are a
//     snapshot of the driver's assignment at dispatch time, not live pointers
//   - exactly one timeline entry exists per accepted status change, plus one
//     for creation, ordered by timestamp
type Shipment struct {
	id                kernel.UUID
	trackingNumber    TrackingNumber
	origin            string
	destination       string
	weight            float64
	status            Status
	driverID          *kernel.UUID
	truckID           *kernel.UUID
	warehouseID       *kernel.UUID
	estimatedDelivery time.Time
	actualDelivery    *time.Time
	timeline          []TimelineEntry
	guard             guard.ConstructorGuard
}

// NewShipment creates a new Shipment in Pending status and writes the
// creation entry into its timeline ledger.
//
// The clock value createdAt is supplied by the caller; warehouseID is
// optional and records where the shipment is currently held.
func NewShipment(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	origin, destination string,
	weight float64,
	warehouseID *kernel.UUID,
	estimatedDelivery time.Time,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setWeight(weight),
		s.setEstimatedDelivery(estimatedDelivery),
	); err != nil {
		return nil, err
	}

	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return nil, err
		}
		s.warehouseID = warehouseID
	}

	if err := s.appendTimelineEntry(Pending, createdAt, "Shipment created"); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment aggregate from persistent storage,
// including its status, references and full timeline ledger.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	origin, destination string,
	weight float64,
	status Status,
	driverID, truckID, warehouseID *kernel.UUID,
	estimatedDelivery time.Time,
	actualDelivery *time.Time,
	timeline []TimelineEntry,
) (*Shipment, error) {
	s := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setWeight(weight),
		s.setStatus(status),
		s.setEstimatedDelivery(estimatedDelivery),
	); err != nil {
		return nil, err
	}

	if (driverID != nil) != (truckID != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"shipment assignment",
			fmt.Errorf("driver and truck references must be set together"),
		)
	}
	for _, ref := range []*kernel.UUID{driverID, truckID, warehouseID} {
		if ref != nil {
			if err := ref.Validate(); err != nil {
				return nil, err
			}
		}
	}
	for _, entry := range timeline {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
	}

	s.driverID = driverID
	s.truckID = truckID
	s.warehouseID = warehouseID
	s.actualDelivery = actualDelivery
	s.timeline = append(s.timeline, timeline...)
	return s, nil
}

// Validate checks if the Shipment was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingNumber returns the shipment's public tracking code.
func (s *Shipment) TrackingNumber() TrackingNumber {
	return s.trackingNumber
}

// Origin returns the shipment's origin location.
func (s *Shipment) Origin() string {
	return s.origin
}

// Destination returns the shipment's destination location.
func (s *Shipment) Destination() string {
	return s.destination
}

// Weight returns the shipment's weight.
func (s *Shipment) Weight() float64 {
	return s.weight
}

// Status returns the shipment's current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// Driver returns the ID of the driver carrying the shipment, nil if unassigned.
func (s *Shipment) Driver() *kernel.UUID {
	return s.driverID
}

// Truck returns the ID of the truck carrying the shipment, nil if unassigned.
func (s *Shipment) Truck() *kernel.UUID {
	return s.truckID
}

// Warehouse returns the ID of the warehouse holding the shipment, nil if none.
func (s *Shipment) Warehouse() *kernel.UUID {
	return s.warehouseID
}

// EstimatedDelivery returns the estimated delivery date.
func (s *Shipment) EstimatedDelivery() time.Time {
	return s.estimatedDelivery
}

// ActualDelivery returns the recorded delivery time, nil until delivered.
func (s *Shipment) ActualDelivery() *time.Time {
	return s.actualDelivery
}

// Timeline returns the shipment's timeline entries in insertion order.
// The returned slice is a copy; the ledger itself is append-only.
func (s *Shipment) Timeline() []TimelineEntry {
	out := make([]TimelineEntry, len(s.timeline))
	copy(out, s.timeline)
	return out
}

// IsActive reports whether the shipment is in a non-terminal state with a
// driver assigned, i.e. currently being carried.
func (s *Shipment) IsActive() bool {
	return s.driverID != nil && !s.status.IsTerminal()
}

// Assign records the carrying driver/truck pair and moves the shipment to
// InTransit. The references are a snapshot of the driver's assignment at
// dispatch time; the Assignment Coordinator verifies that the driver actually
// holds the given truck before calling this.
//
// Rejected with ErrShipmentNotPending unless the shipment is in its initial
// state. No field is mutated on rejection.
func (s *Shipment) Assign(driverID, truckID kernel.UUID, at time.Time) error {
	if err := errors.Join(driverID.Validate(), truckID.Validate()); err != nil {
		return err
	}

	if s.status != Pending {
		return errs.NewInvalidTransitionErrorWithCause("shipment status", ErrShipmentNotPending)
	}

	newStatus, err := s.status.Transition(InTransit)
	if err != nil {
		return err
	}

	s.driverID = &driverID
	s.truckID = &truckID
	s.status = newStatus
	return s.appendTimelineEntry(newStatus, at, "Shipment assigned to driver")
}

// ChangeStatus advances the shipment along the canonical forward flow and
// records a timeline entry. Delivery and cancellation are routed through
// MarkDelivered and Cancel so their extra bookkeeping always happens.
func (s *Shipment) ChangeStatus(next Status, at time.Time) error {
	switch next {
	case Delivered:
		return s.MarkDelivered(at)
	case Cancelled:
		return s.Cancel(at, "Shipment cancelled")
	default:
	}

	previous := s.status
	newStatus, err := s.status.Transition(next)
	if err != nil {
		return err
	}

	s.status = newStatus
	return s.appendTimelineEntry(
		newStatus, at,
		fmt.Sprintf("Status changed from %s to %s", previous, newStatus),
	)
}

// MarkDelivered completes the shipment: status moves to Delivered, the
// actual delivery time is recorded and a timeline entry is written.
//
// Rejected unless the shipment is InTransit or OutForDelivery; rejected for
// terminal states. No field is mutated on rejection.
func (s *Shipment) MarkDelivered(at time.Time) error {
	newStatus, err := s.status.Transition(Delivered)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.actualDelivery = &at
	return s.appendTimelineEntry(newStatus, at, "Shipment delivered")
}

// Unassign reverts the shipment to Pending and clears its driver/truck
// references, recording a timeline entry. This is the one deliberate
// backward move in the lifecycle; terminal shipments are still protected.
//
// Rejected with ErrUnassignDelivered for delivered shipments and with
// ErrTerminalState for cancelled ones.
func (s *Shipment) Unassign(at time.Time) error {
	if s.status == Delivered {
		return errs.NewInvalidTransitionErrorWithCause("shipment status", ErrUnassignDelivered)
	}
	if s.status == Cancelled {
		return errs.NewInvalidTransitionErrorWithCause("shipment status", ErrTerminalState)
	}

	s.driverID = nil
	s.truckID = nil
	s.status = Pending
	return s.appendTimelineEntry(Pending, at, "Shipment unassigned")
}

// Cancel moves the shipment to Cancelled, clears its driver/truck references
// and records a timeline entry. Rejected for terminal states.
func (s *Shipment) Cancel(at time.Time, note string) error {
	newStatus, err := s.status.Transition(Cancelled)
	if err != nil {
		return err
	}

	s.driverID = nil
	s.truckID = nil
	s.status = newStatus
	if note == "" {
		note = "Shipment cancelled"
	}
	return s.appendTimelineEntry(newStatus, at, note)
}

// CanBeDeleted reports whether the shipment may be removed from the system.
// Only shipments that never left their initial state, or were cancelled,
// are deletable; everything else is part of the auditable history.
func (s *Shipment) CanBeDeleted() bool {
	return s.status == Pending || s.status == Cancelled
}

// appendTimelineEntry writes one ledger entry for the given status at the
// given time. The entry location comes from the per-status lookup table.
func (s *Shipment) appendTimelineEntry(status Status, at time.Time, note string) error {
	entry, err := NewTimelineEntry(
		kernel.NewUUID(),
		status,
		TransitLocation(status, s.origin, s.destination),
		at,
		note,
	)
	if err != nil {
		return err
	}

	s.timeline = append(s.timeline, entry)
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	s.origin = origin
	return nil
}

func (s *Shipment) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%f is not greater than 0", weight),
		)
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setEstimatedDelivery(estimatedDelivery time.Time) error {
	if estimatedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDelivery")
	}
	s.estimatedDelivery = estimatedDelivery
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
