package queries

import (
	"errors"
	"time"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery retrieves the public tracking view of one shipment by
// its tracking number: the current position in the lifecycle, the recorded
// history, and the steps still expected on the canonical forward flow.
//
// Example:
//
//	query, err := NewTrackShipmentQuery("AX-1A2B3C4D")
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("Shipment %s is %s\n", view.TrackingNumber, view.Status)
//	for _, e := range view.History {
//	    fmt.Printf("  %s  %s  %s\n", e.Timestamp, e.Status, e.Location)
//	}
type TrackShipmentQuery struct { //nolint:recvcheck //using for validation
	trackingNumber shipment.TrackingNumber

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a query to track the shipment with the given
// tracking number. The number is validated against the "AX-XXXXXXXX" format.
func NewTrackShipmentQuery(trackingNumber string) (TrackShipmentQuery, error) {
	parsed, err := shipment.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return TrackShipmentQuery{}, err
	}

	return TrackShipmentQuery{
		trackingNumber: parsed,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number from the query.
func (q TrackShipmentQuery) TrackingNumber() shipment.TrackingNumber {
	return q.trackingNumber
}

// TimelineEntryResponse represents one recorded history step in the tracking
// view.
type TimelineEntryResponse struct {
	Status    string
	Location  string
	Timestamp time.Time
	Note      string
}

// TrackShipmentQueryResponse is the public tracking view of a shipment.
// History holds the recorded entries in insertion order; ExpectedSteps lists
// the statuses still ahead on the canonical forward flow, empty for terminal
// shipments.
type TrackShipmentQueryResponse struct {
	TrackingNumber    string
	Origin            string
	Destination       string
	Status            string
	EstimatedDelivery time.Time
	ActualDelivery    *time.Time
	History           []TimelineEntryResponse
	ExpectedSteps     []string
}
