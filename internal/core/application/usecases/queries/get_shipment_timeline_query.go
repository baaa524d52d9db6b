package queries

import (
	"errors"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrGetShipmentTimelineQueryIsNotConstructed = errors.New(
	"GetShipmentTimelineQuery must be created via NewGetShipmentTimelineQuery constructor",
)

// GetShipmentTimelineQuery retrieves the recorded timeline of one shipment by
// its identifier, in insertion order.
type GetShipmentTimelineQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentTimelineQuery creates a query to retrieve the timeline of the
// shipment with the given identifier.
func NewGetShipmentTimelineQuery(shipmentID kernel.UUID) (GetShipmentTimelineQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentTimelineQuery{}, err
	}

	return GetShipmentTimelineQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentTimelineQueryIsNotConstructed)
}

// ShipmentID returns the shipment identifier from the query.
func (q GetShipmentTimelineQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}
