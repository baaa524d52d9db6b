// Package warehouserepo provides data transfer objects and mapping functions for warehouse persistence.
package warehouserepo

import (
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO represents the database structure for persisting warehouse aggregates.
// Names carry a unique index to enforce system-wide uniqueness at the storage level as well.
type WarehouseDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Location         string    `gorm:"type:varchar(255);not null"`
	Capacity         int64     `gorm:"type:bigint;not null"`
	CurrentInventory int64     `gorm:"type:bigint;not null"`
	Status           int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for warehouse entities.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// fromDomain converts a warehouse domain aggregate to its database representation.
func fromDomain(warehouse *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:               warehouse.ID().Bytes(),
		Name:             warehouse.Name(),
		Location:         warehouse.Location(),
		Capacity:         warehouse.Capacity(),
		CurrentInventory: warehouse.CurrentInventory(),
		Status:           int(warehouse.Status()),
	}
}

// toDomain converts a database DTO to a warehouse domain aggregate.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(
		id,
		dto.Name,
		dto.Location,
		dto.Capacity,
		dto.CurrentInventory,
		warehouse.Status(dto.Status),
	)
}
