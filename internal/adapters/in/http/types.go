package http

import "time"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateDriverRequest is the body of POST /api/v1/drivers.
type CreateDriverRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"licenseNumber"`
}

// CreateTruckRequest is the body of POST /api/v1/trucks.
type CreateTruckRequest struct {
	LicensePlate string  `json:"licensePlate"`
	Model        string  `json:"model"`
	Capacity     float64 `json:"capacity"`
}

// CreateWarehouseRequest is the body of POST /api/v1/warehouses.
type CreateWarehouseRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int64  `json:"capacity"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
// WarehouseID is optional and records where the shipment is held.
type CreateShipmentRequest struct {
	Origin            string    `json:"origin"`
	Destination       string    `json:"destination"`
	Weight            float64   `json:"weight"`
	WarehouseID       *string   `json:"warehouseId,omitempty"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// ChangeStatusRequest is the body of the status change endpoints.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// AssignTruckRequest is the body of POST /api/v1/drivers/:id/truck.
type AssignTruckRequest struct {
	TruckID string `json:"truckId"`
}

// AssignShipmentRequest is the body of POST /api/v1/shipments/:id/assign.
type AssignShipmentRequest struct {
	DriverID string `json:"driverId"`
	TruckID  string `json:"truckId"`
}

// CancelShipmentRequest is the body of POST /api/v1/shipments/:id/cancel.
type CancelShipmentRequest struct {
	Note string `json:"note"`
}

// InventoryRequest is the body of the warehouse inventory endpoints.
type InventoryRequest struct {
	Quantity int64 `json:"quantity"`
}

// UpdateCapacityRequest is the body of PATCH /api/v1/warehouses/:id/capacity.
type UpdateCapacityRequest struct {
	Capacity int64 `json:"capacity"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// Driver is the JSON representation of a driver in list responses.
type Driver struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	LicenseNumber   string  `json:"licenseNumber"`
	Status          string  `json:"status"`
	AssignedTruckID *string `json:"assignedTruckId,omitempty"`
	TotalDeliveries int     `json:"totalDeliveries"`
}

// Truck is the JSON representation of a truck in list responses.
type Truck struct {
	ID           string  `json:"id"`
	LicensePlate string  `json:"licensePlate"`
	Model        string  `json:"model"`
	Capacity     float64 `json:"capacity"`
	Status       string  `json:"status"`
	DriverID     *string `json:"driverId,omitempty"`
	Mileage      int64   `json:"mileage"`
}

// Warehouse is the JSON representation of a warehouse in list responses.
type Warehouse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Location            string `json:"location"`
	Capacity            int64  `json:"capacity"`
	CurrentInventory    int64  `json:"currentInventory"`
	AvailableSpace      int64  `json:"availableSpace"`
	OccupancyPercentage int64  `json:"occupancyPercentage"`
	Status              string `json:"status"`
}

// Shipment is the JSON representation of a shipment in list responses.
type Shipment struct {
	ID                string     `json:"id"`
	TrackingNumber    string     `json:"trackingNumber"`
	Origin            string     `json:"origin"`
	Destination       string     `json:"destination"`
	Weight            float64    `json:"weight"`
	Status            string     `json:"status"`
	DriverID          *string    `json:"driverId,omitempty"`
	TruckID           *string    `json:"truckId,omitempty"`
	WarehouseID       *string    `json:"warehouseId,omitempty"`
	EstimatedDelivery time.Time  `json:"estimatedDelivery"`
	ActualDelivery    *time.Time `json:"actualDelivery,omitempty"`
}

// TimelineEntry is one recorded history step in the tracking view.
type TimelineEntry struct {
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// TrackingView is the public tracking response for one shipment.
type TrackingView struct {
	TrackingNumber    string          `json:"trackingNumber"`
	Origin            string          `json:"origin"`
	Destination       string          `json:"destination"`
	Status            string          `json:"status"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
	ActualDelivery    *time.Time      `json:"actualDelivery,omitempty"`
	History           []TimelineEntry `json:"history"`
	ExpectedSteps     []string        `json:"expectedSteps"`
}
