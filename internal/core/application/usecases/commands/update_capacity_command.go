package commands

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrUpdateCapacityCommandIsNotConstructed = errors.New(
	"UpdateCapacityCommand must be created via NewUpdateCapacityCommand constructor",
)

// UpdateCapacityCommand represents a request to resize a warehouse.
type UpdateCapacityCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	capacity    int64

	guard guard.ConstructorGuard
}

// NewUpdateCapacityCommand creates a command to resize the given warehouse.
func NewUpdateCapacityCommand(warehouseID kernel.UUID, capacity int64) (UpdateCapacityCommand, error) {
	command := UpdateCapacityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWarehouseID(warehouseID),
		command.setCapacity(capacity),
	); err != nil {
		return UpdateCapacityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCapacityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCapacityCommandIsNotConstructed)
}

// WarehouseID returns the warehouse ID from the command.
func (c UpdateCapacityCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Capacity returns the new capacity from the command.
func (c UpdateCapacityCommand) Capacity() int64 {
	return c.capacity
}

func (c *UpdateCapacityCommand) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.warehouseID = id
	return nil
}

func (c *UpdateCapacityCommand) setCapacity(capacity int64) error {
	if capacity <= 0 {
		return ErrWarehouseCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
