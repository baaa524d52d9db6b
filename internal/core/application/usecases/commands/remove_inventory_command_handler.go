package commands

import (
	"context"
)

// RemoveInventoryCommandHandler handles inventory departures.
// Runs under the same row lock discipline as additions so the ledger can
// never go below zero under concurrency.
type RemoveInventoryCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewRemoveInventoryCommandHandler creates a handler for inventory departures.
func NewRemoveInventoryCommandHandler(uowFactory WarehouseUoWFactory) RemoveInventoryCommandHandler {
	return RemoveInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inventory removal command.
// Rejected when the removal exceeds the stored inventory or the warehouse
// is closed.
func (h RemoveInventoryCommandHandler) Handle(ctx context.Context, cmd RemoveInventoryCommand) error {
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

	if err = warehouseEntity.RemoveInventory(cmd.Quantity()); err != nil {
		return err
	}

	if err = warehouseRepo.Update(ctx, warehouseEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
