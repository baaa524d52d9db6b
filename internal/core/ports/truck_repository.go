package ports

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/truck"
)

// TruckRepository defines the persistence contract for truck aggregates.
type TruckRepository interface {
	// Add persists a new truck aggregate to storage.
	// The truck must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *truck.Truck) error

	// Update persists changes to an existing truck aggregate.
	Update(ctx context.Context, aggregate *truck.Truck) error

	// Get retrieves a truck aggregate by its unique identifier.
	// Implementations running inside a transaction lock the row for update
	// so concurrent assignment operations serialize.
	Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// GetAll retrieves all trucks.
	GetAll(ctx context.Context) ([]*truck.Truck, error)

	// ExistsByLicensePlate reports whether a truck with the given license
	// plate exists. Plates are unique fleet-wide.
	ExistsByLicensePlate(ctx context.Context, licensePlate string) (bool, error)

	// Delete removes a truck from storage. Callers must verify no driver
	// holds the truck before deleting.
	Delete(ctx context.Context, id kernel.UUID) error
}
