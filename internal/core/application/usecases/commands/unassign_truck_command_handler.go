package commands

import (
	"context"
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/services"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
)

// UnassignTruckCommandHandler orchestrates breaking a driver-truck pair.
// The release is rejected while the driver carries an active shipment, so
// the handler loads the driver's current shipment alongside the pair.
type UnassignTruckCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewUnassignTruckCommandHandler creates a handler for truck release.
func NewUnassignTruckCommandHandler(uowFactory FleetUoWFactory) UnassignTruckCommandHandler {
	return UnassignTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck release command.
// Both halves of the assignment are cleared and persisted in one transaction.
func (h UnassignTruckCommandHandler) Handle(ctx context.Context, cmd UnassignTruckCommand) error {
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

	driverRepo := uow.DriverRepository()
	truckRepo := uow.TruckRepository()

	driverEntity, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	heldTruck := driverEntity.AssignedTruck()
	if heldTruck == nil {
		return errs.NewInvalidTransitionErrorWithCause("driver status", services.ErrDriverNotOnDuty)
	}

	truckEntity, err := truckRepo.Get(ctx, *heldTruck)
	if err != nil {
		return err
	}

	activeShipment, err := uow.ShipmentRepository().GetActiveByDriver(ctx, cmd.DriverID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	var carried *shipment.Shipment
	if err == nil {
		carried = activeShipment
	}

	if err = services.NewFleetAssignment().ReleaseTruck(driverEntity, truckEntity, carried); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, driverEntity); err != nil {
		return err
	}

	if err = truckRepo.Update(ctx, truckEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
