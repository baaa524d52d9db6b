package commands

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var (
	ErrCreateWarehouseCommandIsNotConstructed = errors.New(
		"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
	)
	ErrLocationIsRequired         = errors.New("location is required")
	ErrWarehouseCapacityIsInvalid = errors.New("capacity must be greater than 0")
)

// CreateWarehouseCommand represents a request to register a new warehouse.
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	name        string
	location    string
	capacity    int64

	guard guard.ConstructorGuard
}

// NewCreateWarehouseCommand creates a command to register a new warehouse.
// Automatically generates a unique ID for the warehouse.
func NewCreateWarehouseCommand(name, location string, capacity int64) (CreateWarehouseCommand, error) {
	command := CreateWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWarehouseID(kernel.NewUUID()),
		command.setName(name),
		command.setLocation(location),
		command.setCapacity(capacity),
	); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

// WarehouseID returns the generated warehouse ID from the command.
func (c CreateWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Name returns the warehouse name from the command.
func (c CreateWarehouseCommand) Name() string {
	return c.name
}

// Location returns the warehouse location from the command.
func (c CreateWarehouseCommand) Location() string {
	return c.location
}

// Capacity returns the warehouse capacity from the command.
func (c CreateWarehouseCommand) Capacity() int64 {
	return c.capacity
}

func (c *CreateWarehouseCommand) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.warehouseID = id
	return nil
}

func (c *CreateWarehouseCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateWarehouseCommand) setLocation(location string) error {
	if location == "" {
		return ErrLocationIsRequired
	}

	c.location = location
	return nil
}

func (c *CreateWarehouseCommand) setCapacity(capacity int64) error {
	if capacity <= 0 {
		return ErrWarehouseCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
