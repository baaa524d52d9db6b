package cmd

import (
	"log/slog"
	"time"

	httpin "github.com/zaidkabb/aerologix-backend/internal/adapters/in/http"
	"github.com/zaidkabb/aerologix-backend/internal/adapters/out/postgres"
	"github.com/zaidkabb/aerologix-backend/internal/core/application/usecases/commands"
	"github.com/zaidkabb/aerologix-backend/internal/core/application/usecases/queries"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"
	"github.com/zaidkabb/aerologix-backend/internal/core/ports"
	"github.com/zaidkabb/aerologix-backend/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the application layer to its infrastructure:
// the GORM unit of work, the wall clock, and the tracking number generator.
type CompositionRoot struct {
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	clock           ports.Clock
	trackingNumbers ports.TrackingNumberGenerator
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:           systemClock{},
		trackingNumbers: uuidTrackingNumberGenerator{},
	}
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeDriverStatusCommandHandler() commands.ChangeDriverStatusCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDriverStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignTruckCommandHandler() commands.AssignTruckCommandHandler {
	var f commands.PairUoWFactory = FuncPairUoWFactory(func() commands.PairUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateUnassignTruckCommandHandler() commands.UnassignTruckCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTruckCommandHandler() commands.CreateTruckCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeTruckStatusCommandHandler() commands.ChangeTruckStatusCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeTruckStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteTruckCommandHandler() commands.DeleteTruckCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateWarehouseCommandHandler() commands.CreateWarehouseCommandHandler {
	return commands.NewCreateWarehouseCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) CreateAddInventoryCommandHandler() commands.AddInventoryCommandHandler {
	return commands.NewAddInventoryCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) CreateRemoveInventoryCommandHandler() commands.RemoveInventoryCommandHandler {
	return commands.NewRemoveInventoryCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCapacityCommandHandler() commands.UpdateCapacityCommandHandler {
	return commands.NewUpdateCapacityCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) CreateCloseWarehouseCommandHandler() commands.CloseWarehouseCommandHandler {
	return commands.NewCloseWarehouseCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.trackingNumbers, c.clock)
}

func (c *CompositionRoot) CreateAssignShipmentCommandHandler() commands.AssignShipmentCommandHandler {
	return commands.NewAssignShipmentCommandHandler(c.fleetUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUnassignShipmentCommandHandler() commands.UnassignShipmentCommandHandler {
	return commands.NewUnassignShipmentCommandHandler(c.shipmentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangeShipmentStatusCommandHandler() commands.ChangeShipmentStatusCommandHandler {
	return commands.NewChangeShipmentStatusCommandHandler(c.fleetUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.fleetUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	return commands.NewCancelShipmentCommandHandler(c.shipmentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllTrucksQueryHandler() queries.GetAllTrucksQueryHandler {
	return queries.NewGetAllTrucksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllWarehousesQueryHandler() queries.GetAllWarehousesQueryHandler {
	return queries.NewGetAllWarehousesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllShipmentsQueryHandler() queries.GetAllShipmentsQueryHandler {
	return queries.NewGetAllShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveShipmentsQueryHandler() queries.GetActiveShipmentsQueryHandler {
	return queries.NewGetActiveShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentTimelineQueryHandler() queries.GetShipmentTimelineQueryHandler {
	return queries.NewGetShipmentTimelineQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP server with every command and query handler.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateDriver:       c.CreateCreateDriverCommandHandler(),
		ChangeDriverStatus: c.CreateChangeDriverStatusCommandHandler(),
		DeleteDriver:       c.CreateDeleteDriverCommandHandler(),
		AssignTruck:        c.CreateAssignTruckCommandHandler(),
		UnassignTruck:      c.CreateUnassignTruckCommandHandler(),

		CreateTruck:       c.CreateCreateTruckCommandHandler(),
		ChangeTruckStatus: c.CreateChangeTruckStatusCommandHandler(),
		DeleteTruck:       c.CreateDeleteTruckCommandHandler(),

		CreateWarehouse: c.CreateCreateWarehouseCommandHandler(),
		AddInventory:    c.CreateAddInventoryCommandHandler(),
		RemoveInventory: c.CreateRemoveInventoryCommandHandler(),
		UpdateCapacity:  c.CreateUpdateCapacityCommandHandler(),
		CloseWarehouse:  c.CreateCloseWarehouseCommandHandler(),

		CreateShipment:       c.CreateCreateShipmentCommandHandler(),
		AssignShipment:       c.CreateAssignShipmentCommandHandler(),
		UnassignShipment:     c.CreateUnassignShipmentCommandHandler(),
		ChangeShipmentStatus: c.CreateChangeShipmentStatusCommandHandler(),
		MarkDelivered:        c.CreateMarkDeliveredCommandHandler(),
		CancelShipment:       c.CreateCancelShipmentCommandHandler(),
		DeleteShipment:       c.CreateDeleteShipmentCommandHandler(),

		GetAllDrivers:       c.CreateGetAllDriversQueryHandler(),
		GetAllTrucks:        c.CreateGetAllTrucksQueryHandler(),
		GetAllWarehouses:    c.CreateGetAllWarehousesQueryHandler(),
		GetAllShipments:     c.CreateGetAllShipmentsQueryHandler(),
		GetActiveShipments:  c.CreateGetActiveShipmentsQueryHandler(),
		GetShipmentTimeline: c.CreateGetShipmentTimelineQueryHandler(),
		TrackShipment:       c.CreateTrackShipmentQueryHandler(),
	})
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.shipmentUoWFactory(), c.clock, logger)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) warehouseUoWFactory() commands.WarehouseUoWFactory {
	return FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fleetUoWFactory() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncTruckUoWFactory func() commands.TruckUoW

func (f FuncTruckUoWFactory) Create() commands.TruckUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncPairUoWFactory func() commands.PairUoW

func (f FuncPairUoWFactory) Create() commands.PairUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

// systemClock reads the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// uuidTrackingNumberGenerator derives tracking codes from fresh UUIDs.
type uuidTrackingNumberGenerator struct{}

func (uuidTrackingNumberGenerator) Generate() (shipment.TrackingNumber, error) {
	return shipment.TrackingNumberFromUUID(kernel.NewUUID())
}
