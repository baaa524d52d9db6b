package services

import (
	"errors"
	"time"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/driver"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/truck"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
)

// Errors returned by the fleet assignment service.
var (
	// ErrDriverNotOnDuty is returned when dispatching a shipment to a driver
	// that is not currently on duty.
	ErrDriverNotOnDuty = errors.New("driver must be ON_DUTY to carry a shipment")
	// ErrTruckMismatch is returned when the requested truck is not the one the
	// driver currently holds.
	ErrTruckMismatch = errors.New("truck is not the one assigned to the driver")
)

// FleetAssignment is a domain service coordinating the operations that span
// the Driver, Truck and Shipment aggregates: pairing drivers with trucks,
// dispatching shipments, and completing deliveries.
//
// Key responsibilities:
//   - Keeping the two halves of the driver-truck assignment consistent
//   - Verifying dispatch preconditions across all three aggregates
//   - Applying every cross-aggregate change to all participants so a caller
//     persisting them inside one transaction observes no partial state
//
// Business rules:
//   - A driver holds at most one truck and a truck is held by at most one
//     driver; both sides change together
//   - A shipment is dispatched only to an ON_DUTY driver holding exactly the
//     requested truck
//   - A driver with an active shipment cannot release their truck
//
// The service is stateless; callers load the aggregates, invoke one
// operation, and persist every touched aggregate in the same transaction.
type FleetAssignment struct{}

// NewFleetAssignment creates a new FleetAssignment instance.
func NewFleetAssignment() FleetAssignment {
	return FleetAssignment{}
}

// AssignTruck pairs a driver with a truck, writing both halves of the
// assignment: the driver's slot and duty status, and the truck's slot and
// operational status.
//
// Preconditions checked before any mutation:
//   - the driver can take a truck (not ON_DUTY, not ON_LEAVE)
//   - the truck is AVAILABLE and held by no one
//
// On success the driver is ON_DUTY and the truck is IN_USE. On rejection
// neither aggregate is mutated.
func (FleetAssignment) AssignTruck(d *driver.Driver, t *truck.Truck) error {
	if err := errors.Join(d.Validate(), t.Validate()); err != nil {
		return err
	}

	// Check the driver side before mutating the truck half so a rejection
	// leaves both aggregates untouched.
	if d.Status() == driver.OnDuty {
		return errs.NewInvalidTransitionErrorWithCause("driver status", driver.ErrDriverAlreadyOnDuty)
	}
	if d.Status() == driver.OnLeave {
		return errs.NewInvalidTransitionErrorWithCause("driver status", driver.ErrDriverOnLeave)
	}

	if err := t.AssignDriver(d.ID()); err != nil {
		return err
	}
	return d.AssignTruck(t.ID())
}

// ReleaseTruck breaks a driver-truck pair, clearing both halves of the
// assignment. The driver returns to AVAILABLE and the truck to AVAILABLE.
//
// The activeShipment argument is the driver's current shipment, nil if none.
// Release is rejected while the driver is carrying an active shipment; the
// shipment must be delivered, cancelled or unassigned first.
func (FleetAssignment) ReleaseTruck(d *driver.Driver, t *truck.Truck, activeShipment *shipment.Shipment) error {
	if err := errors.Join(d.Validate(), t.Validate()); err != nil {
		return err
	}

	if activeShipment != nil && activeShipment.IsActive() {
		return errs.NewConflictErrorWithCause(
			"shipment", activeShipment.TrackingNumber().String(),
			errors.New("driver has an active shipment"),
		)
	}

	if err := d.ReleaseTruck(); err != nil {
		return err
	}
	return t.ReleaseDriver()
}

// AssignShipment dispatches a shipment to a driver-truck pair.
//
// Preconditions checked before any mutation:
//   - the shipment is PENDING
//   - the driver is ON_DUTY
//   - the requested truck is exactly the truck the driver holds
//
// On success the shipment is IN_TRANSIT, references the pair, and carries a
// new timeline entry stamped at. The driver and truck are not mutated; their
// assignment to each other predates the dispatch.
func (FleetAssignment) AssignShipment(s *shipment.Shipment, d *driver.Driver, t *truck.Truck, at time.Time) error {
	if err := errors.Join(s.Validate(), d.Validate(), t.Validate()); err != nil {
		return err
	}

	if d.Status() != driver.OnDuty {
		return errs.NewInvalidTransitionErrorWithCause("driver status", ErrDriverNotOnDuty)
	}
	held := d.AssignedTruck()
	if held == nil || !held.IsEqual(t.ID()) {
		return errs.NewConflictErrorWithCause(
			"truck", t.ID().String(), ErrTruckMismatch,
		)
	}

	return s.Assign(d.ID(), t.ID(), at)
}

// CompleteDelivery marks a shipment delivered and credits the driver's
// delivery counter. The driver stays ON_DUTY holding their truck, ready for
// the next dispatch; releasing the truck is a separate operation.
//
// Rejected unless the shipment is IN_TRANSIT or OUT_FOR_DELIVERY.
func (FleetAssignment) CompleteDelivery(s *shipment.Shipment, d *driver.Driver, at time.Time) error {
	if err := errors.Join(s.Validate(), d.Validate()); err != nil {
		return err
	}

	if err := s.MarkDelivered(at); err != nil {
		return err
	}

	d.RecordDelivery()
	return nil
}
