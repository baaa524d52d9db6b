package commands

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/ports"
)

// UnassignShipmentCommandHandler orchestrates pulling a shipment back from
// its carrying pair. The shipment reverts to PENDING with its references
// cleared; the driver and truck keep their pairing and stay available for
// the next dispatch.
type UnassignShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

// NewUnassignShipmentCommandHandler creates a handler for shipment unassignment.
func NewUnassignShipmentCommandHandler(uowFactory ShipmentUoWFactory, clock ports.Clock) UnassignShipmentCommandHandler {
	return UnassignShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the shipment unassignment command.
// Rejected for DELIVERED and CANCELLED shipments.
func (h UnassignShipmentCommandHandler) Handle(ctx context.Context, cmd UnassignShipmentCommand) error {
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

	if err = shipmentEntity.Unassign(h.clock.Now()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, shipmentEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
