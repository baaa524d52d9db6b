package ports

import (
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"
)

// TrackingNumberGenerator issues new public tracking codes for shipments.
// Generated codes follow the "AX-XXXXXXXX" format and are unique.
type TrackingNumberGenerator interface {
	Generate() (shipment.TrackingNumber, error)
}
