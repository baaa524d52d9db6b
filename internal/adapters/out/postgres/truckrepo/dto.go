// Package truckrepo provides data transfer objects and mapping functions for truck persistence.
package truckrepo

import (
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

// TruckDTO represents the database structure for persisting truck aggregates.
// License plates carry a unique index to enforce fleet-wide uniqueness at the
// storage level as well.
type TruckDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	LicensePlate string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	Model        string     `gorm:"type:varchar(255);not null"`
	Capacity     float64    `gorm:"type:decimal(12,2);not null"`
	Status       int        `gorm:"type:int;not null"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	Mileage      int64      `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for truck entities.
func (TruckDTO) TableName() string {
	return "trucks"
}

// fromDomain converts a truck domain aggregate to its database representation.
func fromDomain(truck *truck.Truck) TruckDTO {
	var driverID *uuid.UUID
	if id := truck.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return TruckDTO{
		ID:           truck.ID().Bytes(),
		LicensePlate: truck.LicensePlate(),
		Model:        truck.Model(),
		Capacity:     truck.Capacity(),
		Status:       int(truck.Status()),
		DriverID:     driverID,
		Mileage:      truck.Mileage(),
	}
}

// toDomain converts a database DTO to a truck domain aggregate.
func toDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	return truck.RestoreTruck(
		id,
		dto.LicensePlate,
		dto.Model,
		dto.Capacity,
		truck.Status(dto.Status),
		driverID,
		dto.Mileage,
	)
}
