package commands

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrAssignTruckCommandIsNotConstructed = errors.New(
	"AssignTruckCommand must be created via NewAssignTruckCommand constructor",
)

// AssignTruckCommand represents a request to pair a driver with a truck.
// On success the driver is ON_DUTY and the truck IN_USE; both halves of the
// assignment are written in one transaction.
type AssignTruckCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	truckID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignTruckCommand creates a command to pair the given driver and truck.
func NewAssignTruckCommand(driverID, truckID kernel.UUID) (AssignTruckCommand, error) {
	command := AssignTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setTruckID(truckID),
	); err != nil {
		return AssignTruckCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTruckCommand) Validate() error {
	return c.guard.Validate(ErrAssignTruckCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c AssignTruckCommand) DriverID() kernel.UUID {
	return c.driverID
}

// TruckID returns the truck ID from the command.
func (c AssignTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c *AssignTruckCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *AssignTruckCommand) setTruckID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.truckID = id
	return nil
}
