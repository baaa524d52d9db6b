package commands

import (
	"context"
)

// AddInventoryCommandHandler handles inventory arrivals.
// The warehouse row is locked for the duration of the transaction so the
// capacity check and the counter update commit atomically; concurrent
// arrivals serialize and the capacity ledger can never overshoot.
type AddInventoryCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewAddInventoryCommandHandler creates a handler for inventory arrivals.
func NewAddInventoryCommandHandler(uowFactory WarehouseUoWFactory) AddInventoryCommandHandler {
	return AddInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inventory addition command.
// Rejected with a capacity error when the addition would push the ledger
// past capacity, and with a transition error for closed warehouses.
func (h AddInventoryCommandHandler) Handle(ctx context.Context, cmd AddInventoryCommand) error {
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

	if err = warehouseEntity.AddInventory(cmd.Quantity()); err != nil {
		return err
	}

	if err = warehouseRepo.Update(ctx, warehouseEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
