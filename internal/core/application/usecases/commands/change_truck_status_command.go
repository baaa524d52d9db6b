package commands

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/truck"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrChangeTruckStatusCommandIsNotConstructed = errors.New(
	"ChangeTruckStatusCommand must be created via NewChangeTruckStatusCommand constructor",
)

// ChangeTruckStatusCommand represents a request to move a truck to a new
// operational status through the state machine.
type ChangeTruckStatusCommand struct { //nolint:recvcheck //using for validation
	truckID kernel.UUID
	status  truck.Status

	guard guard.ConstructorGuard
}

// NewChangeTruckStatusCommand creates a command to change a truck's status.
func NewChangeTruckStatusCommand(truckID kernel.UUID, status truck.Status) (ChangeTruckStatusCommand, error) {
	command := ChangeTruckStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTruckID(truckID),
		command.setStatus(status),
	); err != nil {
		return ChangeTruckStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeTruckStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeTruckStatusCommandIsNotConstructed)
}

// TruckID returns the truck ID from the command.
func (c ChangeTruckStatusCommand) TruckID() kernel.UUID {
	return c.truckID
}

// Status returns the requested status from the command.
func (c ChangeTruckStatusCommand) Status() truck.Status {
	return c.status
}

func (c *ChangeTruckStatusCommand) setTruckID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.truckID = id
	return nil
}

func (c *ChangeTruckStatusCommand) setStatus(status truck.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
