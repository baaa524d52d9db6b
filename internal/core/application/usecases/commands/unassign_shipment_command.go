package commands

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrUnassignShipmentCommandIsNotConstructed = errors.New(
	"UnassignShipmentCommand must be created via NewUnassignShipmentCommand constructor",
)

// UnassignShipmentCommand represents a request to pull a shipment back from
// its carrying pair and return it to PENDING.
type UnassignShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnassignShipmentCommand creates a command to unassign the given shipment.
func NewUnassignShipmentCommand(shipmentID kernel.UUID) (UnassignShipmentCommand, error) {
	command := UnassignShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setShipmentID(shipmentID); err != nil {
		return UnassignShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUnassignShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment ID from the command.
func (c UnassignShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *UnassignShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}
