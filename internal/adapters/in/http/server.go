// Package http exposes the fleet operations as a JSON API on Echo.
// Handlers translate requests into commands and queries, delegate to the
// application layer, and map domain errors onto HTTP status codes.
package http

import (
	"net/http"
	"time"

	"github.com/zaidkabb/aerologix-backend/internal/core/application/usecases/commands"
	"github.com/zaidkabb/aerologix-backend/internal/core/application/usecases/queries"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/driver"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/truck"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateDriver       commands.CreateDriverCommandHandler
	ChangeDriverStatus commands.ChangeDriverStatusCommandHandler
	DeleteDriver       commands.DeleteDriverCommandHandler
	AssignTruck        commands.AssignTruckCommandHandler
	UnassignTruck      commands.UnassignTruckCommandHandler

	CreateTruck       commands.CreateTruckCommandHandler
	ChangeTruckStatus commands.ChangeTruckStatusCommandHandler
	DeleteTruck       commands.DeleteTruckCommandHandler

	CreateWarehouse commands.CreateWarehouseCommandHandler
	AddInventory    commands.AddInventoryCommandHandler
	RemoveInventory commands.RemoveInventoryCommandHandler
	UpdateCapacity  commands.UpdateCapacityCommandHandler
	CloseWarehouse  commands.CloseWarehouseCommandHandler

	CreateShipment       commands.CreateShipmentCommandHandler
	AssignShipment       commands.AssignShipmentCommandHandler
	UnassignShipment     commands.UnassignShipmentCommandHandler
	ChangeShipmentStatus commands.ChangeShipmentStatusCommandHandler
	MarkDelivered        commands.MarkDeliveredCommandHandler
	CancelShipment       commands.CancelShipmentCommandHandler
	DeleteShipment       commands.DeleteShipmentCommandHandler

	GetAllDrivers       queries.GetAllDriversQueryHandler
	GetAllTrucks        queries.GetAllTrucksQueryHandler
	GetAllWarehouses    queries.GetAllWarehousesQueryHandler
	GetAllShipments     queries.GetAllShipmentsQueryHandler
	GetActiveShipments  queries.GetActiveShipmentsQueryHandler
	GetShipmentTimeline queries.GetShipmentTimelineQueryHandler
	TrackShipment       queries.TrackShipmentQueryHandler
}

// Server handles the HTTP surface of the fleet service.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts all fleet endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/drivers", s.CreateDriver)
	v1.GET("/drivers", s.GetDrivers)
	v1.PATCH("/drivers/:id/status", s.ChangeDriverStatus)
	v1.DELETE("/drivers/:id", s.DeleteDriver)
	v1.POST("/drivers/:id/truck", s.AssignTruck)
	v1.DELETE("/drivers/:id/truck", s.UnassignTruck)

	v1.POST("/trucks", s.CreateTruck)
	v1.GET("/trucks", s.GetTrucks)
	v1.PATCH("/trucks/:id/status", s.ChangeTruckStatus)
	v1.DELETE("/trucks/:id", s.DeleteTruck)

	v1.POST("/warehouses", s.CreateWarehouse)
	v1.GET("/warehouses", s.GetWarehouses)
	v1.POST("/warehouses/:id/inventory/add", s.AddInventory)
	v1.POST("/warehouses/:id/inventory/remove", s.RemoveInventory)
	v1.PATCH("/warehouses/:id/capacity", s.UpdateCapacity)
	v1.POST("/warehouses/:id/close", s.CloseWarehouse)

	v1.POST("/shipments", s.CreateShipment)
	v1.GET("/shipments", s.GetShipments)
	v1.GET("/shipments/active", s.GetActiveShipments)
	v1.POST("/shipments/:id/assign", s.AssignShipment)
	v1.POST("/shipments/:id/unassign", s.UnassignShipment)
	v1.PATCH("/shipments/:id/status", s.ChangeShipmentStatus)
	v1.POST("/shipments/:id/deliver", s.MarkDelivered)
	v1.POST("/shipments/:id/cancel", s.CancelShipment)
	v1.DELETE("/shipments/:id", s.DeleteShipment)
	v1.GET("/shipments/:id/timeline", s.GetShipmentTimeline)

	v1.GET("/tracking/:trackingNumber", s.TrackShipment)
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateDriverCommand(req.Name, req.Email, req.Phone, req.LicenseNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.DriverID().String()})
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.handlers.GetAllDrivers.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = Driver{
			ID:              d.ID.String(),
			Name:            d.Name,
			Email:           d.Email,
			Phone:           d.Phone,
			LicenseNumber:   d.LicenseNumber,
			Status:          d.Status,
			AssignedTruckID: optionalID(d.AssignedTruckID),
			TotalDeliveries: d.TotalDeliveries,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeDriverStatus handles PATCH /api/v1/drivers/:id/status.
func (s *Server) ChangeDriverStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver identifier")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := driver.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeDriverStatusCommand(id, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ChangeDriverStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDriver handles DELETE /api/v1/drivers/:id.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver identifier")
	}

	cmd, err := commands.NewDeleteDriverCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignTruck handles POST /api/v1/drivers/:id/truck.
func (s *Server) AssignTruck(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver identifier")
	}

	var req AssignTruckRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	truckID, err := kernel.UUIDFromString(req.TruckID)
	if err != nil {
		return badRequest(ctx, "Invalid truck identifier")
	}

	cmd, err := commands.NewAssignTruckCommand(driverID, truckID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AssignTruck.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnassignTruck handles DELETE /api/v1/drivers/:id/truck.
func (s *Server) UnassignTruck(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver identifier")
	}

	cmd, err := commands.NewUnassignTruckCommand(driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UnassignTruck.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateTruck handles POST /api/v1/trucks.
func (s *Server) CreateTruck(ctx echo.Context) error {
	var req CreateTruckRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateTruckCommand(req.LicensePlate, req.Model, req.Capacity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateTruck.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.TruckID().String()})
}

// GetTrucks handles GET /api/v1/trucks.
func (s *Server) GetTrucks(ctx echo.Context) error {
	trucks, err := s.handlers.GetAllTrucks.Handle(ctx.Request().Context(), queries.NewGetAllTrucksQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Truck, len(trucks))
	for i, t := range trucks {
		response[i] = Truck{
			ID:           t.ID.String(),
			LicensePlate: t.LicensePlate,
			Model:        t.Model,
			Capacity:     t.Capacity,
			Status:       t.Status,
			DriverID:     optionalID(t.DriverID),
			Mileage:      t.Mileage,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeTruckStatus handles PATCH /api/v1/trucks/:id/status.
func (s *Server) ChangeTruckStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid truck identifier")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := truck.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeTruckStatusCommand(id, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ChangeTruckStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteTruck handles DELETE /api/v1/trucks/:id.
func (s *Server) DeleteTruck(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid truck identifier")
	}

	cmd, err := commands.NewDeleteTruckCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteTruck.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateWarehouse handles POST /api/v1/warehouses.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var req CreateWarehouseRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateWarehouseCommand(req.Name, req.Location, req.Capacity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateWarehouse.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.WarehouseID().String()})
}

// GetWarehouses handles GET /api/v1/warehouses.
func (s *Server) GetWarehouses(ctx echo.Context) error {
	warehouses, err := s.handlers.GetAllWarehouses.Handle(ctx.Request().Context(), queries.NewGetAllWarehousesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Warehouse, len(warehouses))
	for i, w := range warehouses {
		response[i] = Warehouse{
			ID:                  w.ID.String(),
			Name:                w.Name,
			Location:            w.Location,
			Capacity:            w.Capacity,
			CurrentInventory:    w.CurrentInventory,
			AvailableSpace:      w.AvailableSpace,
			OccupancyPercentage: w.OccupancyPercentage,
			Status:              w.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddInventory handles POST /api/v1/warehouses/:id/inventory/add.
func (s *Server) AddInventory(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid warehouse identifier")
	}

	var req InventoryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddInventoryCommand(id, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddInventory.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveInventory handles POST /api/v1/warehouses/:id/inventory/remove.
func (s *Server) RemoveInventory(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid warehouse identifier")
	}

	var req InventoryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRemoveInventoryCommand(id, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveInventory.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCapacity handles PATCH /api/v1/warehouses/:id/capacity.
func (s *Server) UpdateCapacity(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid warehouse identifier")
	}

	var req UpdateCapacityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCapacityCommand(id, req.Capacity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateCapacity.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseWarehouse handles POST /api/v1/warehouses/:id/close.
func (s *Server) CloseWarehouse(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid warehouse identifier")
	}

	cmd, err := commands.NewCloseWarehouseCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CloseWarehouse.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var warehouseID *kernel.UUID
	if req.WarehouseID != nil {
		id, err := kernel.UUIDFromString(*req.WarehouseID)
		if err != nil {
			return badRequest(ctx, "Invalid warehouse identifier")
		}
		warehouseID = &id
	}

	// Omitted estimated delivery defaults to a week out.
	if req.EstimatedDelivery.IsZero() {
		req.EstimatedDelivery = time.Now().UTC().Add(7 * 24 * time.Hour)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		req.Origin,
		req.Destination,
		req.Weight,
		warehouseID,
		req.EstimatedDelivery,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.ShipmentID().String()})
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(ctx echo.Context) error {
	shipments, err := s.handlers.GetAllShipments.Handle(ctx.Request().Context(), queries.NewGetAllShipmentsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentListResponse(shipments))
}

// GetActiveShipments handles GET /api/v1/shipments/active.
func (s *Server) GetActiveShipments(ctx echo.Context) error {
	shipments, err := s.handlers.GetActiveShipments.Handle(ctx.Request().Context(), queries.NewGetActiveShipmentsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentListResponse(shipments))
}

// AssignShipment handles POST /api/v1/shipments/:id/assign.
func (s *Server) AssignShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment identifier")
	}

	var req AssignShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver identifier")
	}

	truckID, err := kernel.UUIDFromString(req.TruckID)
	if err != nil {
		return badRequest(ctx, "Invalid truck identifier")
	}

	cmd, err := commands.NewAssignShipmentCommand(shipmentID, driverID, truckID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AssignShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnassignShipment handles POST /api/v1/shipments/:id/unassign.
func (s *Server) UnassignShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment identifier")
	}

	cmd, err := commands.NewUnassignShipmentCommand(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UnassignShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeShipmentStatus handles PATCH /api/v1/shipments/:id/status.
func (s *Server) ChangeShipmentStatus(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment identifier")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeShipmentStatusCommand(shipmentID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ChangeShipmentStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/shipments/:id/deliver.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment identifier")
	}

	cmd, err := commands.NewMarkDeliveredCommand(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.MarkDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelShipment handles POST /api/v1/shipments/:id/cancel.
func (s *Server) CancelShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment identifier")
	}

	var req CancelShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelShipmentCommand(shipmentID, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment identifier")
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipmentTimeline handles GET /api/v1/shipments/:id/timeline.
func (s *Server) GetShipmentTimeline(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment identifier")
	}

	query, err := queries.NewGetShipmentTimelineQuery(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	timeline, err := s.handlers.GetShipmentTimeline.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]TimelineEntry, len(timeline))
	for i, entry := range timeline {
		response[i] = TimelineEntry{
			Status:    entry.Status,
			Location:  entry.Location,
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrackShipment handles GET /api/v1/tracking/:trackingNumber.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewTrackShipmentQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.handlers.TrackShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	history := make([]TimelineEntry, len(view.History))
	for i, entry := range view.History {
		history[i] = TimelineEntry{
			Status:    entry.Status,
			Location:  entry.Location,
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
		}
	}

	return ctx.JSON(http.StatusOK, TrackingView{
		TrackingNumber:    view.TrackingNumber,
		Origin:            view.Origin,
		Destination:       view.Destination,
		Status:            view.Status,
		EstimatedDelivery: view.EstimatedDelivery,
		ActualDelivery:    view.ActualDelivery,
		History:           history,
		ExpectedSteps:     view.ExpectedSteps,
	})
}

// shipmentListResponse maps shipment summaries to their JSON representation.
func shipmentListResponse(shipments []queries.ShipmentSummary) []Shipment {
	response := make([]Shipment, len(shipments))
	for i, sh := range shipments {
		response[i] = Shipment{
			ID:                sh.ID.String(),
			TrackingNumber:    sh.TrackingNumber,
			Origin:            sh.Origin,
			Destination:       sh.Destination,
			Weight:            sh.Weight,
			Status:            sh.Status,
			DriverID:          optionalID(sh.DriverID),
			TruckID:           optionalID(sh.TruckID),
			WarehouseID:       optionalID(sh.WarehouseID),
			EstimatedDelivery: sh.EstimatedDelivery,
			ActualDelivery:    sh.ActualDelivery,
		}
	}
	return response
}

// optionalID renders an optional UUID reference as a string.
func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}

	s := id.String()
	return &s
}
