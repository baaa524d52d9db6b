package commands

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var (
	ErrCreateTruckCommandIsNotConstructed = errors.New(
		"CreateTruckCommand must be created via NewCreateTruckCommand constructor",
	)
	ErrLicensePlateIsRequired = errors.New("license plate is required")
	ErrModelIsRequired        = errors.New("model is required")
	ErrCapacityIsInvalid      = errors.New("capacity must be greater than 0")
)

// CreateTruckCommand represents a request to register a new truck in the fleet.
type CreateTruckCommand struct { //nolint:recvcheck //using for validation
	truckID      kernel.UUID
	licensePlate string
	model        string
	capacity     float64

	guard guard.ConstructorGuard
}

// NewCreateTruckCommand creates a command to register a new truck.
// Automatically generates a unique ID for the truck.
func NewCreateTruckCommand(licensePlate, model string, capacity float64) (CreateTruckCommand, error) {
	command := CreateTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTruckID(kernel.NewUUID()),
		command.setLicensePlate(licensePlate),
		command.setModel(model),
		command.setCapacity(capacity),
	); err != nil {
		return CreateTruckCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTruckCommand) Validate() error {
	return c.guard.Validate(ErrCreateTruckCommandIsNotConstructed)
}

// TruckID returns the generated truck ID from the command.
func (c CreateTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

// LicensePlate returns the truck license plate from the command.
func (c CreateTruckCommand) LicensePlate() string {
	return c.licensePlate
}

// Model returns the truck model from the command.
func (c CreateTruckCommand) Model() string {
	return c.model
}

// Capacity returns the truck capacity from the command.
func (c CreateTruckCommand) Capacity() float64 {
	return c.capacity
}

func (c *CreateTruckCommand) setTruckID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.truckID = id
	return nil
}

func (c *CreateTruckCommand) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return ErrLicensePlateIsRequired
	}

	c.licensePlate = licensePlate
	return nil
}

func (c *CreateTruckCommand) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}

	c.model = model
	return nil
}

func (c *CreateTruckCommand) setCapacity(capacity float64) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
