package queries

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrGetAllTrucksQueryIsNotConstructed = errors.New(
	"GetAllTrucksQuery must be created via NewGetAllTrucksQuery constructor",
)

// GetAllTrucksQuery retrieves information about all trucks in the fleet.
type GetAllTrucksQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllTrucksQuery creates a query to retrieve all trucks.
func NewGetAllTrucksQuery() GetAllTrucksQuery {
	return GetAllTrucksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllTrucksQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTrucksQueryIsNotConstructed)
}

// GetAllTrucksQueryResponse represents truck information in the read model.
type GetAllTrucksQueryResponse struct {
	ID           kernel.UUID
	LicensePlate string
	Model        string
	Capacity     float64
	Status       string
	DriverID     *kernel.UUID
	Mileage      int64
}
