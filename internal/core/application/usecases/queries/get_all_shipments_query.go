package queries

import (
	"errors"
	"time"

	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/guard"
)

var ErrGetAllShipmentsQueryIsNotConstructed = errors.New(
	"GetAllShipmentsQuery must be created via NewGetAllShipmentsQuery constructor",
)

// GetAllShipmentsQuery retrieves summary information about all shipments.
type GetAllShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShipmentsQuery creates a query to retrieve all shipments.
func NewGetAllShipmentsQuery() GetAllShipmentsQuery {
	return GetAllShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipmentsQueryIsNotConstructed)
}

// ShipmentSummary represents one shipment row in the read model.
type ShipmentSummary struct {
	ID                kernel.UUID
	TrackingNumber    string
	Origin            string
	Destination       string
	Weight            float64
	Status            string
	DriverID          *kernel.UUID
	TruckID           *kernel.UUID
	WarehouseID       *kernel.UUID
	EstimatedDelivery time.Time
	ActualDelivery    *time.Time
}
