package commands

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/driver"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
)

// CreateDriverCommandHandler handles the business logic for driver registration.
// Enforces fleet-wide uniqueness of emails and license numbers before persisting.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
// Requires a DriverUoWFactory for transactional persistence operations.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver creation command.
// Rejects duplicate emails and license numbers with a conflict error, then
// creates and persists the driver within a transaction.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	exists, err := driverRepo.ExistsByEmail(ctx, cmd.Email())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewConflictError("email", cmd.Email())
	}

	exists, err = driverRepo.ExistsByLicenseNumber(ctx, cmd.LicenseNumber())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewConflictError("licenseNumber", cmd.LicenseNumber())
	}

	driverEntity, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.LicenseNumber())
	if err != nil {
		return err
	}

	if err = driverRepo.Add(ctx, driverEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
