package queries

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrGetAllWarehousesQueryIsNotConstructed = errors.New(
	"GetAllWarehousesQuery must be created via NewGetAllWarehousesQuery constructor",
)

// GetAllWarehousesQuery retrieves information about all warehouses, including
// the occupancy figures derived from the capacity ledger.
type GetAllWarehousesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllWarehousesQuery creates a query to retrieve all warehouses.
func NewGetAllWarehousesQuery() GetAllWarehousesQuery {
	return GetAllWarehousesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWarehousesQueryIsNotConstructed)
}

// GetAllWarehousesQueryResponse represents warehouse information in the read
// model. OccupancyPercentage is rounded to the nearest whole percent.
type GetAllWarehousesQueryResponse struct {
	ID                  kernel.UUID
	Name                string
	Location            string
	Capacity            int64
	CurrentInventory    int64
	AvailableSpace      int64
	OccupancyPercentage int64
	Status              string
}
