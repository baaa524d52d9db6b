package ports

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// A shipment is always loaded and stored together with its timeline ledger.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate, including its timeline entries.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate. Timeline
	// entries are append-only: new entries are inserted, existing entries
	// are never rewritten.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier, with the
	// full timeline in insertion order.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment by its public tracking code.
	GetByTrackingNumber(ctx context.Context, trackingNumber shipment.TrackingNumber) (*shipment.Shipment, error)

	// GetAll retrieves all shipments.
	GetAll(ctx context.Context) ([]*shipment.Shipment, error)

	// GetActiveByDriver retrieves the non-terminal shipment currently carried
	// by the given driver, or errs.ObjectNotFoundError if the driver carries
	// none.
	GetActiveByDriver(ctx context.Context, driverID kernel.UUID) (*shipment.Shipment, error)

	// GetAllInTransit retrieves every shipment in a non-terminal status with
	// a driver assigned. Used by the overdue-shipment job.
	GetAllInTransit(ctx context.Context) ([]*shipment.Shipment, error)

	// Delete removes a shipment and its timeline from storage. Callers must
	// check CanBeDeleted first.
	Delete(ctx context.Context, id kernel.UUID) error
}
