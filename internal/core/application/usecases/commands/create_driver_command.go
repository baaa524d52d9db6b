package commands

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrNameIsRequired          = errors.New("name is required")
	ErrEmailIsRequired         = errors.New("email is required")
	ErrPhoneIsRequired         = errors.New("phone is required")
	ErrLicenseNumberIsRequired = errors.New("license number is required")
)

// CreateDriverCommand represents a request to register a new driver in the fleet.
// Encapsulates all data needed to create a driver entity.
//
// Example:
//
//	cmd, err := NewCreateDriverCommand("Alice Carter", "alice@example.com", "+15550100", "DL-1001")
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewCreateDriverCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create driver: %w", err)
//	}
//	fmt.Printf("Created driver with ID: %s", cmd.DriverID())
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          string
	email         string
	phone         string
	licenseNumber string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Automatically generates a unique ID for the driver.
func NewCreateDriverCommand(name, email, phone, licenseNumber string) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(kernel.NewUUID()),
		command.setName(name),
		command.setEmail(email),
		command.setPhone(phone),
		command.setLicenseNumber(licenseNumber),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the generated driver ID from the command.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver name from the command.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Email returns the driver email from the command.
func (c CreateDriverCommand) Email() string {
	return c.email
}

// Phone returns the driver phone from the command.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

// LicenseNumber returns the driver license number from the command.
func (c CreateDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

func (c *CreateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreateDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreateDriverCommand) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}

	c.licenseNumber = licenseNumber
	return nil
}
