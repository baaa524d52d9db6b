package commands

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrDeleteTruckCommandIsNotConstructed = errors.New(
	"DeleteTruckCommand must be created via NewDeleteTruckCommand constructor",
)

// DeleteTruckCommand represents a request to remove a truck from the fleet.
type DeleteTruckCommand struct { //nolint:recvcheck //using for validation
	truckID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteTruckCommand creates a command to remove the given truck.
func NewDeleteTruckCommand(truckID kernel.UUID) (DeleteTruckCommand, error) {
	command := DeleteTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTruckID(truckID); err != nil {
		return DeleteTruckCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTruckCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTruckCommandIsNotConstructed)
}

// TruckID returns the truck ID from the command.
func (c DeleteTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c *DeleteTruckCommand) setTruckID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.truckID = id
	return nil
}
