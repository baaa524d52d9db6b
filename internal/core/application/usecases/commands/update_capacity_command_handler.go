package commands

import (
	"context"
)

// UpdateCapacityCommandHandler handles warehouse resizing.
// Shrinking below the currently stored inventory is rejected so the ledger
// invariant survives the resize.
type UpdateCapacityCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewUpdateCapacityCommandHandler creates a handler for warehouse resizing.
func NewUpdateCapacityCommandHandler(uowFactory WarehouseUoWFactory) UpdateCapacityCommandHandler {
	return UpdateCapacityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the capacity update command.
func (h UpdateCapacityCommandHandler) Handle(ctx context.Context, cmd UpdateCapacityCommand) error {
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

	warehouseRepo := uow.WarehouseRepository()

	warehouseEntity, err := warehouseRepo.Get(ctx, cmd.WarehouseID())
	if err != nil {
		return err
	}

	if err = warehouseEntity.UpdateCapacity(cmd.Capacity()); err != nil {
		return err
	}

	if err = warehouseRepo.Update(ctx, warehouseEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
