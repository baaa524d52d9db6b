package commands

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrUnassignTruckCommandIsNotConstructed = errors.New(
	"UnassignTruckCommand must be created via NewUnassignTruckCommand constructor",
)

// UnassignTruckCommand represents a request to break a driver-truck pair.
// On success both return to AVAILABLE.
type UnassignTruckCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnassignTruckCommand creates a command to release the truck held by the
// given driver.
func NewUnassignTruckCommand(driverID kernel.UUID) (UnassignTruckCommand, error) {
	command := UnassignTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return UnassignTruckCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignTruckCommand) Validate() error {
	return c.guard.Validate(ErrUnassignTruckCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c UnassignTruckCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *UnassignTruckCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}
