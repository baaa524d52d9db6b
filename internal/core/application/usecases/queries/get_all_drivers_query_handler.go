package queries

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/driver"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllDriversQueryHandler retrieves all driver information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for driver retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all drivers.
// Returns a slice of driver read models sorted by name, with status values
// converted to their wire representations.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAllDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			license_number,
			status,
			assigned_truck_id,
			total_deliveries
		FROM drivers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllDriversQueryResponse
		var id uuid.UUID
		var truckID *uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Email,
			&response.Phone,
			&response.LicenseNumber,
			&status,
			&truckID,
			&response.TotalDeliveries,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = driverID
		response.Status = driver.Status(status).String()

		if truckID != nil {
			assignedTruckID, truckErr := kernel.UUIDFromBytes((*truckID)[:])
			if truckErr != nil {
				return nil, truckErr
			}
			response.AssignedTruckID = &assignedTruckID
		}

		drivers = append(drivers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
