package commands

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var (
	ErrAddInventoryCommandIsNotConstructed = errors.New(
		"AddInventoryCommand must be created via NewAddInventoryCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddInventoryCommand represents a request to record units arriving at a warehouse.
type AddInventoryCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	quantity    int64

	guard guard.ConstructorGuard
}

// NewAddInventoryCommand creates a command to add inventory to a warehouse.
func NewAddInventoryCommand(warehouseID kernel.UUID, quantity int64) (AddInventoryCommand, error) {
	command := AddInventoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWarehouseID(warehouseID),
		command.setQuantity(quantity),
	); err != nil {
		return AddInventoryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddInventoryCommand) Validate() error {
	return c.guard.Validate(ErrAddInventoryCommandIsNotConstructed)
}

// WarehouseID returns the warehouse ID from the command.
func (c AddInventoryCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Quantity returns the number of units from the command.
func (c AddInventoryCommand) Quantity() int64 {
	return c.quantity
}

func (c *AddInventoryCommand) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.warehouseID = id
	return nil
}

func (c *AddInventoryCommand) setQuantity(quantity int64) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
