package queries

import (
	"context"
	"time"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllShipmentsQueryHandler retrieves all shipment summaries from the database.
type GetAllShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipmentsQueryHandler creates a handler for shipment retrieval queries.
func NewGetAllShipmentsQueryHandler(db *gorm.DB) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all shipments.
// Returns a slice of shipment summaries sorted by tracking number. The
// timeline is not loaded here; TrackShipmentQuery serves the full history.
func (h GetAllShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentsQuery,
) ([]ShipmentSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			origin,
			destination,
			weight,
			status,
			driver_id,
			truck_id,
			warehouse_id,
			estimated_delivery,
			actual_delivery
		FROM shipments
		ORDER BY tracking_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentSummary, 0)
	for rows.Next() {
		summary, scanErr := scanShipmentSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

// rowScanner is the subset of sql.Rows the summary scanner needs.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanShipmentSummary maps one shipments row onto the read model. Shared by
// every query that selects the summary column set.
func scanShipmentSummary(rows rowScanner) (ShipmentSummary, error) {
	var summary ShipmentSummary
	var id uuid.UUID
	var driverID, truckID, warehouseID *uuid.UUID
	var status int
	var actualDelivery *time.Time

	err := rows.Scan(
		&id,
		&summary.TrackingNumber,
		&summary.Origin,
		&summary.Destination,
		&summary.Weight,
		&status,
		&driverID,
		&truckID,
		&warehouseID,
		&summary.EstimatedDelivery,
		&actualDelivery,
	)
	if err != nil {
		return ShipmentSummary{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentSummary{}, err
	}
	summary.ID = shipmentID
	summary.Status = shipment.Status(status).String()
	summary.ActualDelivery = actualDelivery

	if summary.DriverID, err = optionalRef(driverID); err != nil {
		return ShipmentSummary{}, err
	}
	if summary.TruckID, err = optionalRef(truckID); err != nil {
		return ShipmentSummary{}, err
	}
	if summary.WarehouseID, err = optionalRef(warehouseID); err != nil {
		return ShipmentSummary{}, err
	}

	return summary, nil
}

// optionalRef converts a nullable database UUID into a kernel reference.
func optionalRef(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	ref, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
