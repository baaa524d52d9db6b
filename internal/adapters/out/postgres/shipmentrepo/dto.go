// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// A shipment is stored together with its timeline ledger: one parent row in
// "shipments" and one child row per recorded entry in "timeline_entries",
// ordered by an explicit position column.
package shipmentrepo

import (
	"time"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Tracking numbers carry a unique index to enforce system-wide uniqueness at
// the storage level as well.
type ShipmentDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber    string     `gorm:"type:varchar(16);not null;uniqueIndex"`
	Origin            string     `gorm:"type:varchar(255);not null"`
	Destination       string     `gorm:"type:varchar(255);not null"`
	Weight            float64    `gorm:"type:decimal(12,2);not null"`
	Status            int        `gorm:"type:int;not null"`
	DriverID          *uuid.UUID `gorm:"type:uuid;index"`
	TruckID           *uuid.UUID `gorm:"type:uuid"`
	WarehouseID       *uuid.UUID `gorm:"type:uuid"`
	EstimatedDelivery time.Time  `gorm:"not null"`
	ActualDelivery    *time.Time

	Timeline []TimelineEntryDTO `gorm:"foreignKey:ShipmentID"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// TimelineEntryDTO represents one recorded timeline entry of a shipment.
// Position holds the entry's index in the aggregate's ledger; rows are
// inserted once and never rewritten.
type TimelineEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position   int       `gorm:"type:int;not null"`
	Status     int       `gorm:"type:int;not null"`
	Location   string    `gorm:"type:varchar(255);not null"`
	Timestamp  time.Time `gorm:"not null"`
	Note       string    `gorm:"type:text"`
}

// TableName specifies the database table name for timeline entries.
func (TimelineEntryDTO) TableName() string {
	return "timeline_entries"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	timeline := aggregate.Timeline()
	entries := make([]TimelineEntryDTO, 0, len(timeline))
	for i, entry := range timeline {
		entries = append(entries, TimelineEntryDTO{
			ID:         entry.ID().Bytes(),
			ShipmentID: aggregate.ID().Bytes(),
			Position:   i,
			Status:     int(entry.Status()),
			Location:   entry.Location(),
			Timestamp:  entry.Timestamp(),
			Note:       entry.Note(),
		})
	}

	return ShipmentDTO{
		ID:                aggregate.ID().Bytes(),
		TrackingNumber:    aggregate.TrackingNumber().String(),
		Origin:            aggregate.Origin(),
		Destination:       aggregate.Destination(),
		Weight:            aggregate.Weight(),
		Status:            int(aggregate.Status()),
		DriverID:          optionalBytes(aggregate.Driver()),
		TruckID:           optionalBytes(aggregate.Truck()),
		WarehouseID:       optionalBytes(aggregate.Warehouse()),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
		Timeline:          entries,
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// The timeline rows must already be ordered by position.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := shipment.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	driverID, err := optionalRef(dto.DriverID)
	if err != nil {
		return nil, err
	}

	truckID, err := optionalRef(dto.TruckID)
	if err != nil {
		return nil, err
	}

	warehouseID, err := optionalRef(dto.WarehouseID)
	if err != nil {
		return nil, err
	}

	timeline := make([]shipment.TimelineEntry, 0, len(dto.Timeline))
	for _, entryDTO := range dto.Timeline {
		entryID, entryErr := kernel.UUIDFromBytes(entryDTO.ID[:])
		if entryErr != nil {
			return nil, entryErr
		}

		entry, entryErr := shipment.RestoreTimelineEntry(
			entryID,
			shipment.Status(entryDTO.Status),
			entryDTO.Location,
			entryDTO.Timestamp,
			entryDTO.Note,
		)
		if entryErr != nil {
			return nil, entryErr
		}

		timeline = append(timeline, entry)
	}

	return shipment.RestoreShipment(
		id,
		trackingNumber,
		dto.Origin,
		dto.Destination,
		dto.Weight,
		shipment.Status(dto.Status),
		driverID,
		truckID,
		warehouseID,
		dto.EstimatedDelivery,
		dto.ActualDelivery,
		timeline,
	)
}

// optionalBytes converts an optional domain UUID to its raw representation.
func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}

	raw := id.Bytes()
	return &raw
}

// optionalRef converts an optional raw UUID back to a domain UUID.
func optionalRef(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
