package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentTimelineQueryHandler reads the append-only timeline of a single
// shipment.
type GetShipmentTimelineQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentTimelineQueryHandler creates a handler for shipment timeline
// queries.
func NewGetShipmentTimelineQueryHandler(db *gorm.DB) GetShipmentTimelineQueryHandler {
	return GetShipmentTimelineQueryHandler{db: db}
}

// Handle executes the timeline query.
// Returns errs.ObjectNotFoundError when the shipment does not exist.
func (h GetShipmentTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentTimelineQuery,
) ([]TimelineEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var id uuid.UUID
	row := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Row()

	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
		}
		return nil, err
	}

	return loadTimeline(ctx, h.db, id)
}
