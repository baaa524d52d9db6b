package commands

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/warehouse"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
)

// CreateWarehouseCommandHandler handles the business logic for warehouse
// registration. Enforces system-wide uniqueness of warehouse names.
type CreateWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewCreateWarehouseCommandHandler creates a handler for warehouse registration.
func NewCreateWarehouseCommandHandler(uowFactory WarehouseUoWFactory) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse creation command.
// Rejects duplicate names with a conflict error, then creates and persists
// the warehouse within a transaction.
func (h CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseCommand) error {
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

	exists, err := warehouseRepo.ExistsByName(ctx, cmd.Name())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewConflictError("name", cmd.Name())
	}

	warehouseEntity, err := warehouse.NewWarehouse(cmd.WarehouseID(), cmd.Name(), cmd.Location(), cmd.Capacity())
	if err != nil {
		return err
	}

	if err = warehouseRepo.Add(ctx, warehouseEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
