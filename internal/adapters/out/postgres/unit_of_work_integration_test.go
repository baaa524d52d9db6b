package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "github.com/zaidkabb/aerologix-backend/internal/adapters/out/postgres"
	"github.com/zaidkabb/aerologix-backend/internal/adapters/out/postgres/driverrepo"
	"github.com/zaidkabb/aerologix-backend/internal/adapters/out/postgres/shipmentrepo"
	"github.com/zaidkabb/aerologix-backend/internal/adapters/out/postgres/truckrepo"
	"github.com/zaidkabb/aerologix-backend/internal/adapters/out/postgres/warehouserepo"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/driver"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/truck"
	"github.com/zaidkabb/aerologix-backend/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work
// implementation against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts the PostgreSQL container and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&truckrepo.TruckDTO{},
		&warehouserepo.WarehouseDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.TimelineEntryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables so tests cannot interfere with each other.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE drivers, trucks, warehouses, shipments, timeline_entries").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory produces isolated
// instances that expose all four repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.DriverRepository())
	suite.NotNil(uow1.TruckRepository())
	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow1.WarehouseRepository())
	suite.NotNil(uow2.DriverRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies commit and rollback fail without
// an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within one transaction boundary.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := createTestDriver(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	retrieved, err := uow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(testDriver.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(testDriver.ID(), retrieved.ID())
	suite.Equal(testDriver.Email(), retrieved.Email())
}

// TestUnitOfWork_PairingWorkflow verifies the driver and truck pairing
// persists atomically across both repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PairingWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := createTestDriver(suite.T())
	testTruck := createTestTruck(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	err = uow.TruckRepository().Add(ctx, testTruck)
	suite.Require().NoError(err)

	err = testDriver.AssignTruck(testTruck.ID())
	suite.Require().NoError(err)
	err = testTruck.AssignDriver(testDriver.ID())
	suite.Require().NoError(err)

	err = uow.DriverRepository().Update(ctx, testDriver)
	suite.Require().NoError(err)
	err = uow.TruckRepository().Update(ctx, testTruck)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedDriver, err := newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.OnDuty, retrievedDriver.Status())
	suite.Require().NotNil(retrievedDriver.AssignedTruck())
	suite.True(retrievedDriver.AssignedTruck().IsEqual(testTruck.ID()))

	retrievedTruck, err := newUow.TruckRepository().Get(ctx, testTruck.ID())
	suite.Require().NoError(err)
	suite.Equal(truck.InUse, retrievedTruck.Status())
	suite.Require().NotNil(retrievedTruck.Driver())
	suite.True(retrievedTruck.Driver().IsEqual(testDriver.ID()))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := createTestDriver(suite.T())
	testTruck := createTestTruck(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	err = uow.TruckRepository().Add(ctx, testTruck)
	suite.Require().NoError(err)

	_, err = uow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)

	_, err = uow.TruckRepository().Get(ctx, testTruck.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().Error(err, "Driver should not exist after rollback")

	_, err = newUow.TruckRepository().Get(ctx, testTruck.ID())
	suite.Require().Error(err, "Truck should not exist after rollback")
}

// TestUnitOfWork_ShipmentTimelinePersistence verifies the timeline ledger
// survives the round trip and keeps its insertion order, and that updates
// only ever append entries.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentTimelinePersistence() {
	ctx := context.Background()
	uow := suite.factory.Create()

	now := time.Now().UTC().Truncate(time.Microsecond)
	testShipment := createTestShipment(suite.T(), now)
	testDriver := createTestDriver(suite.T())
	testTruck := createTestTruck(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = testShipment.Assign(testDriver.ID(), testTruck.ID(), now.Add(time.Hour))
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Update(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)

	suite.Equal(shipment.InTransit, retrieved.Status())
	timeline := retrieved.Timeline()
	suite.Require().Len(timeline, 2)
	suite.Equal(shipment.Pending, timeline[0].Status())
	suite.Equal(shipment.InTransit, timeline[1].Status())
	suite.True(timeline[0].Timestamp().Before(timeline[1].Timestamp()))

	byNumber, err := newUow.ShipmentRepository().GetByTrackingNumber(ctx, testShipment.TrackingNumber())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), byNumber.ID())

	active, err := newUow.ShipmentRepository().GetActiveByDriver(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), active.ID())

	inTransit, err := newUow.ShipmentRepository().GetAllInTransit(ctx)
	suite.Require().NoError(err)
	suite.Len(inTransit, 1)
}

// TestUnitOfWork_WithoutTransaction verifies repositories work for immediate
// operations when no transaction was begun.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := createTestDriver(suite.T())

	err := uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	exists, err := uow.DriverRepository().ExistsByEmail(ctx, testDriver.Email())
	suite.Require().NoError(err)
	suite.True(exists)

	newUow := suite.factory.Create()
	retrieved, err := newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(testDriver.ID(), retrieved.ID())
}

// createTestDriver creates a valid driver with unique contact details.
func createTestDriver(t *testing.T) *driver.Driver {
	t.Helper()

	id := kernel.NewUUID()
	email := fmt.Sprintf("driver-%s@fleet.test", id.String()[:8])
	license := fmt.Sprintf("DL-%s", id.String()[:8])
	testDriver, err := driver.NewDriver(id, "Test Driver", email, "+15550100", license)
	if err != nil {
		t.Fatal(err)
	}
	return testDriver
}

// createTestTruck creates a valid truck with a unique license plate.
func createTestTruck(t *testing.T) *truck.Truck {
	t.Helper()

	id := kernel.NewUUID()
	plate := fmt.Sprintf("TR-%s", id.String()[:8])
	testTruck, err := truck.NewTruck(id, plate, "Volvo FH16", 24000)
	if err != nil {
		t.Fatal(err)
	}
	return testTruck
}

// createTestShipment creates a valid pending shipment.
func createTestShipment(t *testing.T, now time.Time) *shipment.Shipment {
	t.Helper()

	id := kernel.NewUUID()
	trackingNumber, err := shipment.TrackingNumberFromUUID(id)
	if err != nil {
		t.Fatal(err)
	}

	testShipment, err := shipment.NewShipment(
		id,
		trackingNumber,
		"Hamburg",
		"Munich",
		120.5,
		nil,
		now.Add(72*time.Hour),
		now,
	)
	if err != nil {
		t.Fatal(err)
	}
	return testShipment
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
