package commands_test

import (
	"testing"
	"time"

	"github.com/zaidkabb/aerologix-backend/internal/core/application/usecases/commands"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/driver"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/shipment"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkDeliveredCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDriver := newTestDriver(t)
	testTruck := newTestTruck(t)
	require.NoError(t, testTruck.AssignDriver(testDriver.ID()))
	require.NoError(t, testDriver.AssignTruck(testTruck.ID()))

	testShipment := newTestShipment(t)
	require.NoError(t, testShipment.Assign(testDriver.ID(), testTruck.ID(), handlerTestNow))

	cmd, err := commands.NewMarkDeliveredCommand(testShipment.ID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockFleetUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFleetUoWFactory)
	factory.On("Create").Return(uow).Once()

	deliveredAt := handlerTestNow.Add(6 * time.Hour)
	handler := commands.NewMarkDeliveredCommandHandler(factory, fixedClock{now: deliveredAt})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Delivered, testShipment.Status())
	require.NotNil(t, testShipment.ActualDelivery())
	assert.True(t, testShipment.ActualDelivery().Equal(deliveredAt))
	assert.Equal(t, 1, testDriver.TotalDeliveries())
	// The driver keeps the truck and stays on duty for the next dispatch.
	assert.Equal(t, driver.OnDuty, testDriver.Status())
	require.NotNil(t, testDriver.AssignedTruck())
	shipmentRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_NoCarrier(t *testing.T) {
	ctx := t.Context()

	testShipment := newTestShipment(t)

	cmd, err := commands.NewMarkDeliveredCommand(testShipment.ID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockFleetUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFleetUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDeliveredCommandHandler(factory, fixedClock{now: handlerTestNow})
	err = handler.Handle(ctx, cmd)

	// A pending shipment with no carrier cannot be delivered.
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Contains(t, err.Error(), shipment.ErrNotInTransit.Error())
	assert.Equal(t, shipment.Pending, testShipment.Status())
	assert.Nil(t, testShipment.ActualDelivery())
	driverRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMarkDeliveredCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()

	testDriver := newTestDriver(t)
	testTruck := newTestTruck(t)
	require.NoError(t, testTruck.AssignDriver(testDriver.ID()))
	require.NoError(t, testDriver.AssignTruck(testTruck.ID()))

	testShipment := newTestShipment(t)
	require.NoError(t, testShipment.Assign(testDriver.ID(), testTruck.ID(), handlerTestNow))
	require.NoError(t, testShipment.MarkDelivered(handlerTestNow))

	cmd, err := commands.NewMarkDeliveredCommand(testShipment.ID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockFleetUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFleetUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDeliveredCommandHandler(factory, fixedClock{now: handlerTestNow})
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	// The counter must not move on rejection.
	assert.Equal(t, 0, testDriver.TotalDeliveries())
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMarkDeliveredCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.MarkDeliveredCommand{} // not constructed properly

	factory := new(MockFleetUoWFactory)
	handler := commands.NewMarkDeliveredCommandHandler(factory, fixedClock{now: handlerTestNow})
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMarkDeliveredCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
