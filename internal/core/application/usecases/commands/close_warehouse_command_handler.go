package commands

import (
	"context"
)

// CloseWarehouseCommandHandler handles warehouse closure.
type CloseWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewCloseWarehouseCommandHandler creates a handler for warehouse closure.
func NewCloseWarehouseCommandHandler(uowFactory WarehouseUoWFactory) CloseWarehouseCommandHandler {
	return CloseWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse closure command.
// Rejected while the warehouse still holds inventory.
func (h CloseWarehouseCommandHandler) Handle(ctx context.Context, cmd CloseWarehouseCommand) error {
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

	if err = warehouseEntity.Close(); err != nil {
		return err
	}

	if err = warehouseRepo.Update(ctx, warehouseEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
