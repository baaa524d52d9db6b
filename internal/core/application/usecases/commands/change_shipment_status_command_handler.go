package commands

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"
	"github.com/zaidkabb/aerologix-backend/internal/core/ports"
)

// ChangeShipmentStatusCommandHandler handles shipment lifecycle advances.
// Every accepted change appends exactly one timeline entry stamped by the
// injected clock; DELIVERED requests are routed through the delivery
// handler path so the driver's counter is credited.
type ChangeShipmentStatusCommandHandler struct {
	uowFactory FleetUoWFactory
	clock      ports.Clock
}

// NewChangeShipmentStatusCommandHandler creates a handler for shipment status updates.
func NewChangeShipmentStatusCommandHandler(uowFactory FleetUoWFactory, clock ports.Clock) ChangeShipmentStatusCommandHandler {
	return ChangeShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the shipment status change command.
// Rejected transitions (backward moves, terminal states, delivery before
// IN_TRANSIT) roll the transaction back with no timeline entry written.
func (h ChangeShipmentStatusCommandHandler) Handle(ctx context.Context, cmd ChangeShipmentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Status() == shipment.Delivered {
		delivered, err := NewMarkDeliveredCommand(cmd.ShipmentID())
		if err != nil {
			return err
		}
		handler := NewMarkDeliveredCommandHandler(h.uowFactory, h.clock)
		return handler.Handle(ctx, delivered)
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

	if err = shipmentEntity.ChangeStatus(cmd.Status(), h.clock.Now()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, shipmentEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
