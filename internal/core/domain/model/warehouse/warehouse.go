package warehouse

import (
	"errors"
	"fmt"
	"math"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

// Domain errors for warehouse operations.
var (
	// ErrWarehouseIsNotConstructed is returned when using an improperly initialized Warehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")
	// ErrWarehouseClosed is returned when an inventory movement targets a closed warehouse.
	ErrWarehouseClosed = errors.New("warehouse is closed")
	// ErrInsufficientInventory is returned when a removal exceeds the current inventory.
	ErrInsufficientInventory = errors.New("insufficient inventory")
	// ErrWarehouseNotEmpty is returned when closing a warehouse that still holds inventory.
	ErrWarehouseNotEmpty = errors.New("warehouse still holds inventory")
)

// Warehouse is the aggregate root for a storage facility. It owns the
// warehouse identity, the operational state and the capacity ledger: a pair
// of counters (capacity, current inventory) whose invariant
// 0 <= currentInventory <= capacity holds after every accepted operation.
//
// All ledger mutations go through AddInventory / RemoveInventory /
// UpdateCapacity, which check the invariant before writing; a rejected
// operation mutates nothing.
type Warehouse struct {
	id               kernel.UUID
	name             string
	location         string
	capacity         int64
	currentInventory int64
	status           Status
	guard            guard.ConstructorGuard
}

// NewWarehouse creates a new Warehouse with the given name, location and
// capacity. The warehouse starts Operational with empty inventory.
// Names are unique system-wide; uniqueness is enforced by the repository.
func NewWarehouse(id kernel.UUID, name, location string, capacity int64) (*Warehouse, error) {
	w := &Warehouse{
		status: Operational,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setLocation(location),
		w.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWarehouse reconstructs a Warehouse aggregate from persistent storage.
func RestoreWarehouse(
	id kernel.UUID,
	name, location string,
	capacity, currentInventory int64,
	status Status,
) (*Warehouse, error) {
	w := &Warehouse{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setLocation(location),
		w.setCapacity(capacity),
		w.setStatus(status),
	); err != nil {
		return nil, err
	}

	if currentInventory < 0 || currentInventory > capacity {
		return nil, errs.NewValueIsOutOfRangeError("currentInventory", currentInventory, 0, capacity)
	}

	w.currentInventory = currentInventory
	return w, nil
}

// Validate checks if the Warehouse was properly constructed.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// IsEqual compares two warehouses by their unique identifiers.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Name returns the warehouse's name. Names are unique system-wide.
func (w *Warehouse) Name() string {
	return w.name
}

// Location returns the warehouse's physical location.
func (w *Warehouse) Location() string {
	return w.location
}

// Capacity returns the warehouse's total storage capacity in units.
func (w *Warehouse) Capacity() int64 {
	return w.capacity
}

// CurrentInventory returns the number of units currently stored.
func (w *Warehouse) CurrentInventory() int64 {
	return w.currentInventory
}

// Status returns the warehouse's operational status.
func (w *Warehouse) Status() Status {
	return w.status
}

// AvailableSpace returns the number of units the warehouse can still accept.
func (w *Warehouse) AvailableSpace() int64 {
	return w.capacity - w.currentInventory
}

// OccupancyPercentage returns how full the warehouse is, rounded to the
// nearest whole percent. A zero-capacity warehouse reports 0.
func (w *Warehouse) OccupancyPercentage() int64 {
	if w.capacity == 0 {
		return 0
	}
	return int64(math.Round(float64(w.currentInventory) * 100 / float64(w.capacity)))
}

// AddInventory records quantity units arriving at the warehouse.
//
// Rejected when the warehouse is closed, when quantity is not positive, and
// when the addition would push the ledger past capacity. No field is mutated
// on rejection.
func (w *Warehouse) AddInventory(quantity int64) error {
	if err := w.checkMovement(quantity); err != nil {
		return err
	}

	if w.currentInventory+quantity > w.capacity {
		return errs.NewCapacityExceededError("quantity", quantity, w.AvailableSpace())
	}

	w.currentInventory += quantity
	return nil
}

// RemoveInventory records quantity units leaving the warehouse.
//
// Rejected when the warehouse is closed, when quantity is not positive, and
// when the removal would take the ledger below zero. No field is mutated on
// rejection.
func (w *Warehouse) RemoveInventory(quantity int64) error {
	if err := w.checkMovement(quantity); err != nil {
		return err
	}

	if quantity > w.currentInventory {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%w: %d requested, %d stored", ErrInsufficientInventory, quantity, w.currentInventory),
		)
	}

	w.currentInventory -= quantity
	return nil
}

// UpdateCapacity resizes the warehouse. The new capacity must not be smaller
// than the current inventory.
func (w *Warehouse) UpdateCapacity(capacity int64) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%d is not greater than 0", capacity),
		)
	}
	if capacity < w.currentInventory {
		return errs.NewCapacityExceededError("currentInventory", w.currentInventory, capacity)
	}

	w.capacity = capacity
	return nil
}

// Close stops the warehouse from accepting inventory movements. Rejected
// while the warehouse still holds inventory; closing an empty warehouse is
// idempotent.
func (w *Warehouse) Close() error {
	if w.currentInventory > 0 {
		return errs.NewConflictErrorWithCause("currentInventory", w.currentInventory, ErrWarehouseNotEmpty)
	}

	w.status = Closed
	return nil
}

// Reopen returns a closed warehouse to Operational. Reopening is idempotent.
func (w *Warehouse) Reopen() {
	w.status = Operational
}

// checkMovement validates the shared preconditions of inventory movements.
func (w *Warehouse) checkMovement(quantity int64) error {
	if w.status == Closed {
		return errs.NewInvalidTransitionErrorWithCause("warehouse status", ErrWarehouseClosed)
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return nil
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}

func (w *Warehouse) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	w.location = location
	return nil
}

func (w *Warehouse) setCapacity(capacity int64) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%d is not greater than 0", capacity),
		)
	}
	w.capacity = capacity
	return nil
}

func (w *Warehouse) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	w.status = status
	return nil
}
