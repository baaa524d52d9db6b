package commands

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand represents a request to cancel a shipment.
// The optional note is written into the cancellation timeline entry.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	note       string

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command to cancel the given shipment.
func NewCancelShipmentCommand(shipmentID kernel.UUID, note string) (CancelShipmentCommand, error) {
	command := CancelShipmentCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setShipmentID(shipmentID); err != nil {
		return CancelShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment ID from the command.
func (c CancelShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Note returns the optional cancellation note from the command.
func (c CancelShipmentCommand) Note() string {
	return c.note
}

func (c *CancelShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}
