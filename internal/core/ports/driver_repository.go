// Package ports defines repository interfaces for the fleet logistics domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/driver"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// Provides methods for storing, retrieving, and querying driver entities
// with their duty status and assignment slot.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// The driver must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	// The driver must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Implementations running inside a transaction lock the row for update
	// so concurrent assignment operations serialize.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAll retrieves all drivers.
	GetAll(ctx context.Context) ([]*driver.Driver, error)

	// ExistsByEmail reports whether a driver with the given email exists.
	// Emails are unique fleet-wide.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByLicenseNumber reports whether a driver with the given license
	// number exists. License numbers are unique fleet-wide.
	ExistsByLicenseNumber(ctx context.Context, licenseNumber string) (bool, error)

	// Delete removes a driver from storage. Callers must verify the driver
	// holds no truck before deleting.
	Delete(ctx context.Context, id kernel.UUID) error
}
