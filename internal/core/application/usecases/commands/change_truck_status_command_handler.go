package commands

import (
	"context"
)

// ChangeTruckStatusCommandHandler handles truck status updates.
// IN_USE can never be reached through this handler; it is entered only by
// the truck assignment command.
type ChangeTruckStatusCommandHandler struct {
	uowFactory TruckUoWFactory
}

// NewChangeTruckStatusCommandHandler creates a handler for truck status updates.
func NewChangeTruckStatusCommandHandler(uowFactory TruckUoWFactory) ChangeTruckStatusCommandHandler {
	return ChangeTruckStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck status change command.
func (h ChangeTruckStatusCommandHandler) Handle(ctx context.Context, cmd ChangeTruckStatusCommand) error {
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

	if err = truckEntity.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = truckRepo.Update(ctx, truckEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
