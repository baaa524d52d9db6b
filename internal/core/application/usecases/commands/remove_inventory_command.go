package commands

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrRemoveInventoryCommandIsNotConstructed = errors.New(
	"RemoveInventoryCommand must be created via NewRemoveInventoryCommand constructor",
)

// RemoveInventoryCommand represents a request to record units leaving a warehouse.
type RemoveInventoryCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	quantity    int64

	guard guard.ConstructorGuard
}

// NewRemoveInventoryCommand creates a command to remove inventory from a warehouse.
func NewRemoveInventoryCommand(warehouseID kernel.UUID, quantity int64) (RemoveInventoryCommand, error) {
	command := RemoveInventoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWarehouseID(warehouseID),
		command.setQuantity(quantity),
	); err != nil {
		return RemoveInventoryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveInventoryCommand) Validate() error {
	return c.guard.Validate(ErrRemoveInventoryCommandIsNotConstructed)
}

// WarehouseID returns the warehouse ID from the command.
func (c RemoveInventoryCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Quantity returns the number of units from the command.
func (c RemoveInventoryCommand) Quantity() int64 {
	return c.quantity
}

func (c *RemoveInventoryCommand) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.warehouseID = id
	return nil
}

func (c *RemoveInventoryCommand) setQuantity(quantity int64) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
