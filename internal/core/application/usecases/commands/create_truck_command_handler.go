package commands

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/truck"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
)

// CreateTruckCommandHandler handles the business logic for truck registration.
// Enforces fleet-wide uniqueness of license plates before persisting.
type CreateTruckCommandHandler struct {
	uowFactory TruckUoWFactory
}

// NewCreateTruckCommandHandler creates a handler for truck registration.
func NewCreateTruckCommandHandler(uowFactory TruckUoWFactory) CreateTruckCommandHandler {
	return CreateTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck creation command.
// Rejects duplicate license plates with a conflict error, then creates and
// persists the truck within a transaction.
func (h CreateTruckCommandHandler) Handle(ctx context.Context, cmd CreateTruckCommand) error {
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

	truckRepo := uow.TruckRepository()

	exists, err := truckRepo.ExistsByLicensePlate(ctx, cmd.LicensePlate())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewConflictError("licensePlate", cmd.LicensePlate())
	}

	truckEntity, err := truck.NewTruck(cmd.TruckID(), cmd.LicensePlate(), cmd.Model(), cmd.Capacity())
	if err != nil {
		return err
	}

	if err = truckRepo.Add(ctx, truckEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
