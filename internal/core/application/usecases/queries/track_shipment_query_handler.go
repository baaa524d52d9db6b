package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackShipmentQueryHandler builds the public tracking view for a shipment.
// Reads the shipment row and its append-only timeline directly; the expected
// remaining steps are derived from the canonical forward flow, not stored.
type TrackShipmentQueryHandler struct {
	db *gorm.DB
}

// NewTrackShipmentQueryHandler creates a handler for shipment tracking queries.
func NewTrackShipmentQueryHandler(db *gorm.DB) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db}
}

// Handle executes the tracking query.
// Returns errs.ObjectNotFoundError when no shipment carries the tracking
// number. Cancelled and delivered shipments report no expected steps.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	var response TrackShipmentQueryResponse
	var id uuid.UUID
	var status int
	var actualDelivery *time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			origin,
			destination,
			status,
			estimated_delivery,
			actual_delivery
		FROM shipments
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Row()

	err := row.Scan(&id, &response.Origin, &response.Destination, &status, &response.EstimatedDelivery, &actualDelivery)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackShipmentQueryResponse{}, errs.NewObjectNotFoundError(
				"trackingNumber", query.TrackingNumber().String(),
			)
		}
		return TrackShipmentQueryResponse{}, err
	}

	currentStatus := shipment.Status(status)
	response.TrackingNumber = query.TrackingNumber().String()
	response.Status = currentStatus.String()
	response.ActualDelivery = actualDelivery
	response.ExpectedSteps = expectedSteps(currentStatus)

	history, err := loadTimeline(ctx, h.db, id)
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}
	response.History = history

	return response, nil
}

// loadTimeline reads the timeline rows for a shipment in insertion order.
func loadTimeline(ctx context.Context, db *gorm.DB, shipmentID uuid.UUID) ([]TimelineEntryResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			status,
			location,
			timestamp,
			note
		FROM timeline_entries
		WHERE shipment_id = ?
		ORDER BY position
	`, shipmentID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]TimelineEntryResponse, 0)
	for rows.Next() {
		var entry TimelineEntryResponse
		var status int

		if err = rows.Scan(&status, &entry.Location, &entry.Timestamp, &entry.Note); err != nil {
			return nil, err
		}

		entry.Status = shipment.Status(status).String()
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// expectedSteps lists the statuses still ahead of current on the canonical
// forward flow. Terminal shipments have none; a cancelled shipment never
// reaches the remaining steps, so it reports none either.
func expectedSteps(current shipment.Status) []string {
	if current.IsTerminal() {
		return []string{}
	}

	flow := shipment.ForwardFlow()
	steps := make([]string, 0, len(flow))
	seen := false
	for _, s := range flow {
		if seen {
			steps = append(steps, s.String())
		}
		if s == current {
			seen = true
		}
	}

	return steps
}
