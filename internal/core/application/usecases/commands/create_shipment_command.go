package commands

import (
	"errors"
	"time"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrOriginIsRequired            = errors.New("origin is required")
	ErrDestinationIsRequired       = errors.New("destination is required")
	ErrWeightIsInvalid             = errors.New("weight must be greater than 0")
	ErrEstimatedDeliveryIsRequired = errors.New("estimated delivery is required")
)

// CreateShipmentCommand represents a request to register a new shipment.
// The tracking number is issued by the handler, not supplied by the caller.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID        kernel.UUID
	origin            string
	destination       string
	weight            float64
	warehouseID       *kernel.UUID
	estimatedDelivery time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Automatically generates a unique ID for the shipment; warehouseID is
// optional and names the warehouse holding the shipment.
func NewCreateShipmentCommand(
	origin, destination string,
	weight float64,
	warehouseID *kernel.UUID,
	estimatedDelivery time.Time,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(kernel.NewUUID()),
		command.setOrigin(origin),
		command.setDestination(destination),
		command.setWeight(weight),
		command.setWarehouseID(warehouseID),
		command.setEstimatedDelivery(estimatedDelivery),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the generated shipment ID from the command.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Origin returns the shipment origin from the command.
func (c CreateShipmentCommand) Origin() string {
	return c.origin
}

// Destination returns the shipment destination from the command.
func (c CreateShipmentCommand) Destination() string {
	return c.destination
}

// Weight returns the shipment weight from the command.
func (c CreateShipmentCommand) Weight() float64 {
	return c.weight
}

// WarehouseID returns the optional holding warehouse ID from the command.
func (c CreateShipmentCommand) WarehouseID() *kernel.UUID {
	return c.warehouseID
}

// EstimatedDelivery returns the estimated delivery date from the command.
func (c CreateShipmentCommand) EstimatedDelivery() time.Time {
	return c.estimatedDelivery
}

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}

	c.origin = origin
	return nil
}

func (c *CreateShipmentCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *CreateShipmentCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CreateShipmentCommand) setWarehouseID(warehouseID *kernel.UUID) error {
	if warehouseID == nil {
		return nil
	}
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *CreateShipmentCommand) setEstimatedDelivery(estimatedDelivery time.Time) error {
	if estimatedDelivery.IsZero() {
		return ErrEstimatedDeliveryIsRequired
	}

	c.estimatedDelivery = estimatedDelivery
	return nil
}
