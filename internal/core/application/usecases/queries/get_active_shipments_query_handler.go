package queries

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetActiveShipmentsQueryHandler retrieves the in-flight shipments from the
// database: driver assigned, status not terminal.
type GetActiveShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveShipmentsQueryHandler creates a handler for active shipment queries.
func NewGetActiveShipmentsQueryHandler(db *gorm.DB) GetActiveShipmentsQueryHandler {
	return GetActiveShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve active shipments.
// Returns shipment summaries sorted by estimated delivery, soonest first.
func (h GetActiveShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveShipmentsQuery,
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
		WHERE driver_id IS NOT NULL
		  AND status NOT IN (?, ?)
		ORDER BY estimated_delivery
	`, int(shipment.Delivered), int(shipment.Cancelled)).Rows()
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
