// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/driver"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// Email and license number carry unique indexes to enforce the fleet-wide
// uniqueness rules at the storage level as well.
type DriverDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name            string     `gorm:"type:varchar(255);not null"`
	Email           string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone           string     `gorm:"type:varchar(64);not null"`
	LicenseNumber   string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	Status          int        `gorm:"type:int;not null"`
	AssignedTruckID *uuid.UUID `gorm:"type:uuid;index"`
	TotalDeliveries int        `gorm:"type:int;not null"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(driver *driver.Driver) DriverDTO {
	var truckID *uuid.UUID
	if id := driver.AssignedTruck(); id != nil {
		raw := id.Bytes()
		truckID = &raw
	}

	return DriverDTO{
		ID:              driver.ID().Bytes(),
		Name:            driver.Name(),
		Email:           driver.Email(),
		Phone:           driver.Phone(),
		LicenseNumber:   driver.LicenseNumber(),
		Status:          int(driver.Status()),
		AssignedTruckID: truckID,
		TotalDeliveries: driver.TotalDeliveries(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
// Reconstructs the aggregate with its duty status and assignment slot using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var truckID *kernel.UUID
	if dto.AssignedTruckID != nil {
		tID, truckErr := kernel.UUIDFromBytes((*dto.AssignedTruckID)[:])
		if truckErr != nil {
			return nil, truckErr
		}

		truckID = &tID
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.LicenseNumber,
		driver.Status(dto.Status),
		truckID,
		dto.TotalDeliveries,
	)
}
