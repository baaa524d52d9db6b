package queries

import (
	"context"
	"math"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllWarehousesQueryHandler retrieves all warehouse information from the
// database, deriving occupancy figures from the stored ledger counters.
type GetAllWarehousesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllWarehousesQueryHandler creates a handler for warehouse retrieval queries.
func NewGetAllWarehousesQueryHandler(db *gorm.DB) GetAllWarehousesQueryHandler {
	return GetAllWarehousesQueryHandler{db: db}
}

// Handle executes the query to retrieve all warehouses.
// Returns a slice of warehouse read models sorted by name.
func (h GetAllWarehousesQueryHandler) Handle(
	ctx context.Context,
	query GetAllWarehousesQuery,
) ([]GetAllWarehousesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	warehouses := make([]GetAllWarehousesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			location,
			capacity,
			current_inventory,
			status
		FROM warehouses
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllWarehousesQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Location,
			&response.Capacity,
			&response.CurrentInventory,
			&status,
		)
		if err != nil {
			return nil, err
		}

		warehouseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = warehouseID
		response.Status = warehouse.Status(status).String()
		response.AvailableSpace = response.Capacity - response.CurrentInventory
		if response.Capacity > 0 {
			response.OccupancyPercentage = int64(
				math.Round(float64(response.CurrentInventory) * 100 / float64(response.Capacity)),
			)
		}

		warehouses = append(warehouses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return warehouses, nil
}
