package commands

import (
	"context"
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
)

// ErrTruckStillHeld is returned when deleting a truck that a driver still
// holds. The pair must be broken first.
var ErrTruckStillHeld = errors.New("truck is still held by a driver")

// DeleteTruckCommandHandler handles truck removal.
type DeleteTruckCommandHandler struct {
	uowFactory TruckUoWFactory
}

// NewDeleteTruckCommandHandler creates a handler for truck removal.
func NewDeleteTruckCommandHandler(uowFactory TruckUoWFactory) DeleteTruckCommandHandler {
	return DeleteTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck removal command.
// Rejected while a driver holds the truck.
func (h DeleteTruckCommandHandler) Handle(ctx context.Context, cmd DeleteTruckCommand) error {
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

	truckEntity, err := truckRepo.Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}

	if truckEntity.Driver() != nil {
		return errs.NewConflictErrorWithCause("truck", cmd.TruckID().String(), ErrTruckStillHeld)
	}

	if err = truckRepo.Delete(ctx, cmd.TruckID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
