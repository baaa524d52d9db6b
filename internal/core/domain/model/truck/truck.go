package truck

import (
	"errors"
	"fmt"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

// Domain errors for truck operations.
var (
	// ErrTruckIsNotConstructed is returned when using an improperly initialized Truck.
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")
	// ErrTruckNotAvailable is returned when assigning a truck that is not Available.
	ErrTruckNotAvailable = errors.New("truck not available")
	// ErrTruckAlreadyAssigned is returned when assigning a truck that another driver holds.
	ErrTruckAlreadyAssigned = errors.New("truck is already assigned to another driver")
	// ErrTruckNotAssigned is returned when releasing a truck that no driver holds.
	ErrTruckNotAssigned = errors.New("truck is not assigned to a driver")
	// ErrMaintenanceToInUse is returned when moving a truck from Maintenance directly to InUse.
	ErrMaintenanceToInUse = errors.New("truck in maintenance must pass through AVAILABLE first")
	// ErrInUseViaStatusUpdate is returned when a bare status update targets InUse.
	ErrInUseViaStatusUpdate = errors.New("truck can only enter IN_USE through driver assignment")
)

// Truck is the aggregate root for a fleet truck. It owns the truck's identity,
// the operational state machine, and the truck's half of the exclusive
// driver-truck assignment slot.
//
// Key invariants:
//   - a truck is held by at most one driver at any time
//   - status == InUse if and only if the truck is held by a driver
//   - the assignment slot is written only through AssignDriver / ReleaseDriver
type Truck struct {
	id           kernel.UUID
	licensePlate string
	model        string
	capacity     float64
	status       Status
	driverID     *kernel.UUID
	mileage      int64
	guard        guard.ConstructorGuard
}

// NewTruck creates a new Truck with the specified plate, model and capacity.
// The truck starts Available with no driver and zero mileage.
func NewTruck(id kernel.UUID, licensePlate, model string, capacity float64) (*Truck, error) {
	t := &Truck{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setLicensePlate(licensePlate),
		t.setModel(model),
		t.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTruck reconstructs a Truck aggregate from persistent storage,
// including its status, assignment slot and mileage.
func RestoreTruck(
	id kernel.UUID,
	licensePlate, model string,
	capacity float64,
	status Status,
	driverID *kernel.UUID,
	mileage int64,
) (*Truck, error) {
	t := &Truck{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setLicensePlate(licensePlate),
		t.setModel(model),
		t.setCapacity(capacity),
		t.setStatus(status),
		t.setMileage(mileage),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}
	if (driverID != nil) != (status == InUse) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"truck status",
			fmt.Errorf("%s is inconsistent with the assignment slot", status.String()),
		)
	}

	t.driverID = driverID
	return t, nil
}

// Validate checks if the Truck was properly constructed via NewTruck or RestoreTruck.
func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

// IsEqual compares two trucks by their unique identifiers.
func (t *Truck) IsEqual(other *Truck) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the truck's unique identifier.
func (t *Truck) ID() kernel.UUID {
	return t.id
}

// LicensePlate returns the truck's license plate. Plates are unique fleet-wide.
func (t *Truck) LicensePlate() string {
	return t.licensePlate
}

// Model returns the truck's model designation.
func (t *Truck) Model() string {
	return t.model
}

// Capacity returns the truck's cargo capacity.
func (t *Truck) Capacity() float64 {
	return t.capacity
}

// Status returns the truck's current operational status.
func (t *Truck) Status() Status {
	return t.status
}

// Driver returns the ID of the driver currently holding the truck.
// Returns nil when the truck is unheld.
func (t *Truck) Driver() *kernel.UUID {
	return t.driverID
}

// Mileage returns the truck's recorded mileage.
func (t *Truck) Mileage() int64 {
	return t.mileage
}

// AssignDriver takes the truck's half of the assignment slot and moves the
// truck to InUse. The Assignment Coordinator calls this together with the
// driver's half inside one transaction.
//
// Rejected with ErrTruckNotAvailable when the truck is not Available and with
// ErrTruckAlreadyAssigned when another driver already holds it. No field is
// mutated on rejection.
func (t *Truck) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if t.driverID != nil {
		return errs.NewInvalidTransitionErrorWithCause("truck status", ErrTruckAlreadyAssigned)
	}
	if t.status != Available {
		return errs.NewInvalidTransitionErrorWithCause("truck status", ErrTruckNotAvailable)
	}

	t.driverID = &driverID
	t.status = InUse
	return nil
}

// ReleaseDriver clears the truck's half of the assignment slot and returns
// the truck to Available.
//
// Rejected with ErrTruckNotAssigned when no driver holds the truck.
func (t *Truck) ReleaseDriver() error {
	if t.driverID == nil {
		return errs.NewInvalidTransitionErrorWithCause("truck status", ErrTruckNotAssigned)
	}

	t.driverID = nil
	t.status = Available
	return nil
}

// ChangeStatus moves the truck to the requested status after consulting the
// transition table.
//
// Business rules:
//   - InUse can never be the target of a bare status update
//     (rejected with ErrInUseViaStatusUpdate)
//   - Maintenance -> InUse is rejected with ErrMaintenanceToInUse
//   - a truck that is InUse must be released by its driver first
//
// A rejected transition returns a typed business-rule violation and mutates nothing.
func (t *Truck) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if next == InUse {
		if t.status == Maintenance {
			return errs.NewInvalidTransitionErrorWithCause("truck status", ErrMaintenanceToInUse)
		}
		return errs.NewInvalidTransitionErrorWithCause("truck status", ErrInUseViaStatusUpdate)
	}

	if t.status != next && !t.status.CanTransition(next) {
		return errs.NewInvalidTransitionError(
			"truck status " + t.status.String() + " -> " + next.String(),
		)
	}

	t.status = next
	return nil
}

// RecordMileage adds the given distance to the truck's mileage.
func (t *Truck) RecordMileage(distance int64) error {
	if distance < 0 {
		return errs.NewValueIsInvalidError("distance")
	}
	t.mileage += distance
	return nil
}

func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truck) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}
	t.licensePlate = licensePlate
	return nil
}

func (t *Truck) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	t.model = model
	return nil
}

func (t *Truck) setCapacity(capacity float64) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%f is not greater than 0", capacity),
		)
	}
	t.capacity = capacity
	return nil
}

func (t *Truck) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

func (t *Truck) setMileage(mileage int64) error {
	if mileage < 0 {
		return errs.NewValueIsInvalidError("mileage")
	}
	t.mileage = mileage
	return nil
}
