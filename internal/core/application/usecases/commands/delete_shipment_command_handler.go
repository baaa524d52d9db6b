package commands

import (
	"context"
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
)

// ErrShipmentNotDeletable is returned when deleting a shipment that has left
// its initial state. Dispatched and delivered shipments are part of the
// auditable history and can only be cancelled, never erased.
var ErrShipmentNotDeletable = errors.New("only pending or cancelled shipments can be deleted")

// DeleteShipmentCommandHandler handles shipment removal.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment removal.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment removal command.
// Only PENDING and CANCELLED shipments may be removed.
func (h DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()

	shipmentEntity, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if !shipmentEntity.CanBeDeleted() {
		return errs.NewConflictErrorWithCause("shipment", cmd.ShipmentID().String(), ErrShipmentNotDeletable)
	}

	if err = shipmentRepo.Delete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
