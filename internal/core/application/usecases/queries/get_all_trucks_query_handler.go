package queries

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/truck"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllTrucksQueryHandler retrieves all truck information from the database.
type GetAllTrucksQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTrucksQueryHandler creates a handler for truck retrieval queries.
func NewGetAllTrucksQueryHandler(db *gorm.DB) GetAllTrucksQueryHandler {
	return GetAllTrucksQueryHandler{db: db}
}

// Handle executes the query to retrieve all trucks.
// Returns a slice of truck read models sorted by license plate.
func (h GetAllTrucksQueryHandler) Handle(
	ctx context.Context,
	query GetAllTrucksQuery,
) ([]GetAllTrucksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trucks := make([]GetAllTrucksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			license_plate,
			model,
			capacity,
			status,
			driver_id,
			mileage
		FROM trucks
		ORDER BY license_plate
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllTrucksQueryResponse
		var id uuid.UUID
		var driverID *uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&response.LicensePlate,
			&response.Model,
			&response.Capacity,
			&status,
			&driverID,
			&response.Mileage,
		)
		if err != nil {
			return nil, err
		}

		truckID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = truckID
		response.Status = truck.Status(status).String()

		if driverID != nil {
			holder, driverErr := kernel.UUIDFromBytes((*driverID)[:])
			if driverErr != nil {
				return nil, driverErr
			}
			response.DriverID = &holder
		}

		trucks = append(trucks, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trucks, nil
}
