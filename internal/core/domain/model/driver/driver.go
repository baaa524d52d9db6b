package driver

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrNoTruckAssigned is returned when an operation requires an assigned truck.
	ErrNoTruckAssigned = errors.New("no truck assigned")
	// ErrDriverAlreadyOnDuty is returned when assigning a truck to a driver that already holds one.
	ErrDriverAlreadyOnDuty = errors.New("driver already on duty")
	// ErrDriverOnLeave is returned when assigning a truck to a driver on leave.
	ErrDriverOnLeave = errors.New("cannot assign truck to driver on leave")
	// ErrTruckStillAssigned is returned when changing status away from OnDuty with a truck still held.
	ErrTruckStillAssigned = errors.New("must unassign truck before changing status")
)

// Driver is the aggregate root for a fleet driver. It owns the driver's
// identity and contact details, the availability state machine, and the
// driver's half of the exclusive driver-truck assignment slot.
//
// Key invariants:
//   - status == OnDuty if and only if a truck is assigned
//   - the assignment slot is written only through AssignTruck / ReleaseTruck,
//     which the Assignment Coordinator calls together with the truck's half
//   - the delivery counter never decreases
type Driver struct {
	id              kernel.UUID
	name            string
	email           string
	phone           string
	licenseNumber   string
	status          Status
	assignedTruck   *kernel.UUID
	totalDeliveries int
	guard           guard.ConstructorGuard
}

// NewDriver creates a new Driver with the specified identity and contact details.
// The driver starts Available with no truck and zero completed deliveries.
//
// Returns a validation error if any required field is missing.
func NewDriver(id kernel.UUID, name, email, phone, licenseNumber string) (*Driver, error) {
	d := &Driver{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setEmail(email),
		d.setPhone(phone),
		d.setLicenseNumber(licenseNumber),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// including its availability status, assignment slot and delivery counter.
// The restored driver behaves identically to one created through normal
// domain operations.
func RestoreDriver(
	id kernel.UUID,
	name, email, phone, licenseNumber string,
	status Status,
	assignedTruck *kernel.UUID,
	totalDeliveries int,
) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setEmail(email),
		d.setPhone(phone),
		d.setLicenseNumber(licenseNumber),
		d.setStatus(status),
		d.setTotalDeliveries(totalDeliveries),
	); err != nil {
		return nil, err
	}

	if assignedTruck != nil {
		if err := assignedTruck.Validate(); err != nil {
			return nil, err
		}
	}
	if err := status.ValidateCanHoldTruck(assignedTruck != nil); err != nil {
		return nil, err
	}

	d.assignedTruck = assignedTruck
	return d, nil
}

// Validate checks if the Driver was properly constructed via NewDriver or RestoreDriver.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Email returns the driver's email address.
func (d *Driver) Email() string {
	return d.email
}

// Phone returns the driver's phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// LicenseNumber returns the driver's license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// Status returns the driver's current availability status.
func (d *Driver) Status() Status {
	return d.status
}

// AssignedTruck returns the ID of the truck the driver currently holds.
// Returns nil when no truck is assigned.
func (d *Driver) AssignedTruck() *kernel.UUID {
	return d.assignedTruck
}

// TotalDeliveries returns the number of deliveries the driver has completed.
func (d *Driver) TotalDeliveries() int {
	return d.totalDeliveries
}

// AssignTruck takes the driver's half of the assignment slot and moves the
// driver to OnDuty. The Assignment Coordinator calls this together with the
// truck's half inside one transaction so the slot can never diverge.
//
// Rejected with ErrDriverAlreadyOnDuty when the driver already holds a truck
// and with ErrDriverOnLeave when the driver is on leave. No field is mutated
// on rejection.
func (d *Driver) AssignTruck(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}

	if d.status == OnDuty {
		return errs.NewInvalidTransitionErrorWithCause("driver status", ErrDriverAlreadyOnDuty)
	}
	if d.status == OnLeave {
		return errs.NewInvalidTransitionErrorWithCause("driver status", ErrDriverOnLeave)
	}

	d.assignedTruck = &truckID
	d.status = OnDuty
	return nil
}

// ReleaseTruck clears the driver's half of the assignment slot and returns
// the driver to Available. The caller is responsible for checking that the
// driver is not carrying an active shipment first.
//
// Rejected with ErrNoTruckAssigned when the driver holds no truck.
func (d *Driver) ReleaseTruck() error {
	if d.assignedTruck == nil {
		return errs.NewInvalidTransitionErrorWithCause("driver status", ErrNoTruckAssigned)
	}

	d.assignedTruck = nil
	d.status = Available
	return nil
}

// ChangeStatus moves the driver to the requested availability status after
// consulting the transition table.
//
// Business rules:
//   - OnDuty requires an assigned truck (rejected with ErrNoTruckAssigned)
//   - leaving OnDuty requires the truck to be released first
//     (rejected with ErrTruckStillAssigned)
//   - OffDuty and OnLeave are reachable from Available only
//
// A rejected transition returns a typed business-rule violation and mutates nothing.
func (d *Driver) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if next == OnDuty && d.assignedTruck == nil {
		return errs.NewInvalidTransitionErrorWithCause("driver status", ErrNoTruckAssigned)
	}
	if d.status == OnDuty && next != OnDuty {
		return errs.NewInvalidTransitionErrorWithCause("driver status", ErrTruckStillAssigned)
	}

	if d.status != next && !d.status.CanTransition(next) {
		return errs.NewInvalidTransitionError(
			"driver status " + d.status.String() + " -> " + next.String(),
		)
	}

	d.status = next
	return nil
}

// RecordDelivery increments the driver's completed-delivery counter.
// Called by the Assignment Coordinator when a carried shipment is delivered.
func (d *Driver) RecordDelivery() {
	d.totalDeliveries++
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	d.email = email
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	d.phone = phone
	return nil
}

func (d *Driver) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	d.licenseNumber = licenseNumber
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Driver) setTotalDeliveries(totalDeliveries int) error {
	if totalDeliveries < 0 {
		return errs.NewValueIsOutOfRangeError("totalDeliveries", totalDeliveries, 0, int(^uint(0)>>1))
	}
	d.totalDeliveries = totalDeliveries
	return nil
}
