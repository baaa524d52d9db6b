package ports

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse aggregates.
type WarehouseRepository interface {
	// Add persists a new warehouse aggregate to storage.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists changes to an existing warehouse aggregate.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse aggregate by its unique identifier.
	// Implementations running inside a transaction lock the row for update
	// so concurrent inventory movements serialize on the ledger.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetAll retrieves all warehouses.
	GetAll(ctx context.Context) ([]*warehouse.Warehouse, error)

	// ExistsByName reports whether a warehouse with the given name exists.
	// Names are unique system-wide.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
