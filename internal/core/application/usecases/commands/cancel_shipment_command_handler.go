package commands

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/ports"
)

// CancelShipmentCommandHandler orchestrates shipment cancellation.
// The shipment moves to CANCELLED with its driver/truck references cleared
// and a final timeline entry written.
type CancelShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

// NewCancelShipmentCommandHandler creates a handler for shipment cancellation.
func NewCancelShipmentCommandHandler(uowFactory ShipmentUoWFactory, clock ports.Clock) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the shipment cancellation command.
// Rejected for shipments already in a terminal state.
func (h CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
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

	if err = shipmentEntity.Cancel(h.clock.Now(), cmd.Note()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, shipmentEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
