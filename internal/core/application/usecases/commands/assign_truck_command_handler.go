package commands

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/services"
)

// AssignTruckCommandHandler orchestrates the driver-truck pairing.
// Loads both aggregates under row locks, applies the two halves of the
// assignment through the FleetAssignment service, and persists them in one
// transaction so the exclusive-pair invariant can never be observed broken.
type AssignTruckCommandHandler struct {
	uowFactory PairUoWFactory
}

// NewAssignTruckCommandHandler creates a handler for driver-truck pairing.
func NewAssignTruckCommandHandler(uowFactory PairUoWFactory) AssignTruckCommandHandler {
	return AssignTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck assignment command.
// Rejections (driver on duty or on leave, truck unavailable or already held)
// surface as typed business-rule violations and roll the transaction back.
func (h AssignTruckCommandHandler) Handle(ctx context.Context, cmd AssignTruckCommand) error {
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

	truckEntity, err := truckRepo.Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}

	if err = services.NewFleetAssignment().AssignTruck(driverEntity, truckEntity); err != nil {
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
