package commands

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrCloseWarehouseCommandIsNotConstructed = errors.New(
	"CloseWarehouseCommand must be created via NewCloseWarehouseCommand constructor",
)

// CloseWarehouseCommand represents a request to close a warehouse so it
// stops accepting inventory movements. Stored inventory is kept.
type CloseWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseWarehouseCommand creates a command to close the given warehouse.
func NewCloseWarehouseCommand(warehouseID kernel.UUID) (CloseWarehouseCommand, error) {
	command := CloseWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWarehouseID(warehouseID); err != nil {
		return CloseWarehouseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCloseWarehouseCommandIsNotConstructed)
}

// WarehouseID returns the warehouse ID from the command.
func (c CloseWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c *CloseWarehouseCommand) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.warehouseID = id
	return nil
}
