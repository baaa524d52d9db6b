package commands

import (
	"context"
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"
	"github.com/zaidkabb/aerologix-backend/internal/core/ports"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles the business logic for shipment intake.
// Issues the tracking number, verifies the holding warehouse when one is
// named, and persists the shipment with its creation timeline entry.
type CreateShipmentCommandHandler struct {
	uowFactory      IntakeUoWFactory
	trackingNumbers ports.TrackingNumberGenerator
	clock           ports.Clock
}

// NewCreateShipmentCommandHandler creates a handler for shipment intake.
func NewCreateShipmentCommandHandler(
	uowFactory IntakeUoWFactory,
	trackingNumbers ports.TrackingNumberGenerator,
	clock ports.Clock,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory:      uowFactory,
		trackingNumbers: trackingNumbers,
		clock:           clock,
	}
}

// Handle processes the shipment creation command.
// The new shipment starts in PENDING status with one timeline entry stamped
// by the injected clock.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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

	if warehouseID := cmd.WarehouseID(); warehouseID != nil {
		if _, err := uow.WarehouseRepository().Get(ctx, *warehouseID); err != nil {
			return err
		}
	}

	trackingNumber, err := h.trackingNumbers.Generate()
	if err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	_, err = shipmentRepo.GetByTrackingNumber(ctx, trackingNumber)
	if err == nil {
		return errs.NewConflictError("trackingNumber", trackingNumber.String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	shipmentEntity, err := shipment.NewShipment(
		cmd.ShipmentID(),
		trackingNumber,
		cmd.Origin(),
		cmd.Destination(),
		cmd.Weight(),
		cmd.WarehouseID(),
		cmd.EstimatedDelivery(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = shipmentRepo.Add(ctx, shipmentEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
