package commands

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/services"
	"github.com/zaidkabb/aerologix-backend/internal/core/ports"
)

// AssignShipmentCommandHandler orchestrates shipment dispatch.
// Loads the shipment, driver and truck under row locks, verifies the dispatch
// preconditions through the FleetAssignment service, and persists the
// shipment with its new timeline entry in one transaction.
type AssignShipmentCommandHandler struct {
	uowFactory FleetUoWFactory
	clock      ports.Clock
}

// NewAssignShipmentCommandHandler creates a handler for shipment dispatch.
func NewAssignShipmentCommandHandler(uowFactory FleetUoWFactory, clock ports.Clock) AssignShipmentCommandHandler {
	return AssignShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the shipment dispatch command.
// Rejections (shipment not pending, driver not on duty, truck mismatch)
// surface as typed business-rule violations and roll the transaction back.
func (h AssignShipmentCommandHandler) Handle(ctx context.Context, cmd AssignShipmentCommand) error {
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

	driverEntity, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	truckEntity, err := uow.TruckRepository().Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}

	err = services.NewFleetAssignment().AssignShipment(shipmentEntity, driverEntity, truckEntity, h.clock.Now())
	if err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, shipmentEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
