package commands

import (
	"context"
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
)

// ErrDriverStillAssigned is returned when deleting a driver that still holds
// a truck. The pair must be broken first so the truck's half of the
// assignment cannot dangle.
var ErrDriverStillAssigned = errors.New("driver still holds a truck")

// DeleteDriverCommandHandler handles driver removal.
type DeleteDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver removal.
func NewDeleteDriverCommandHandler(uowFactory DriverUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver removal command.
// Rejected while the driver holds a truck.
func (h DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
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

	driverEntity, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if driverEntity.AssignedTruck() != nil {
		return errs.NewConflictErrorWithCause("driver", cmd.DriverID().String(), ErrDriverStillAssigned)
	}

	if err = driverRepo.Delete(ctx, cmd.DriverID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
