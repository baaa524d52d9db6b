package commands

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/services"
	"github.com/zaidkabb/aerologix-backend/internal/core/ports"
)

// MarkDeliveredCommandHandler orchestrates delivery completion.
// Moves the shipment to DELIVERED, records the delivery time, and credits
// the carrying driver's delivery counter, all in one transaction. The driver
// keeps their truck and stays on duty.
type MarkDeliveredCommandHandler struct {
	uowFactory FleetUoWFactory
	clock      ports.Clock
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
func NewMarkDeliveredCommandHandler(uowFactory FleetUoWFactory, clock ports.Clock) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the delivery completion command.
// Rejected unless the shipment is IN_TRANSIT or OUT_FOR_DELIVERY; on
// rejection the transaction rolls back and no counter moves.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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
	driverRepo := uow.DriverRepository()

	shipmentEntity, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	deliveredAt := h.clock.Now()

	if carrier := shipmentEntity.Driver(); carrier != nil {
		driverEntity, err := driverRepo.Get(ctx, *carrier)
		if err != nil {
			return err
		}

		if err = services.NewFleetAssignment().CompleteDelivery(shipmentEntity, driverEntity, deliveredAt); err != nil {
			return err
		}

		if err = driverRepo.Update(ctx, driverEntity); err != nil {
			return err
		}
	} else {
		if err = shipmentEntity.MarkDelivered(deliveredAt); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Update(ctx, shipmentEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
