package commands

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrAssignShipmentCommandIsNotConstructed = errors.New(
	"AssignShipmentCommand must be created via NewAssignShipmentCommand constructor",
)

// AssignShipmentCommand represents a request to dispatch a pending shipment
// to a driver-truck pair.
type AssignShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	driverID   kernel.UUID
	truckID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignShipmentCommand creates a command to dispatch the given shipment
// to the given driver-truck pair.
func NewAssignShipmentCommand(shipmentID, driverID, truckID kernel.UUID) (AssignShipmentCommand, error) {
	command := AssignShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setDriverID(driverID),
		command.setTruckID(truckID),
	); err != nil {
		return AssignShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAssignShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment ID from the command.
func (c AssignShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// DriverID returns the driver ID from the command.
func (c AssignShipmentCommand) DriverID() kernel.UUID {
	return c.driverID
}

// TruckID returns the truck ID from the command.
func (c AssignShipmentCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c *AssignShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *AssignShipmentCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *AssignShipmentCommand) setTruckID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.truckID = id
	return nil
}
