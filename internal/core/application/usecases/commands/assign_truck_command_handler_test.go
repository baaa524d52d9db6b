package commands_test

import (
	"errors"
	"testing"

	"github.com/zaidkabb/aerologix-backend/internal/core/application/usecases/commands"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/driver"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/kernel"
	"github.com/zaidkabb/aerologix-backend/internal/core/domain/model/truck"
	"github.com/zaidkabb/aerologix-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "Amina Diallo", "amina@fleet.test", "+15550100", "DL-44812")
	require.NoError(t, err)
	return d
}

func newTestTruck(t *testing.T) *truck.Truck {
	t.Helper()
	tr, err := truck.NewTruck(kernel.NewUUID(), "KA-4821", "Volvo FH16", 24000)
	require.NoError(t, err)
	return tr
}

func TestAssignTruckCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDriver := newTestDriver(t)
	testTruck := newTestTruck(t)

	cmd, err := commands.NewAssignTruckCommand(testDriver.ID(), testTruck.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockPairUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		truckRepo.On("Get", ctx, testTruck.ID()).Return(testTruck, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		truckRepo.On("Update", ctx, mock.AnythingOfType("*truck.Truck")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPairUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignTruckCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, driver.OnDuty, testDriver.Status())
	assert.Equal(t, truck.InUse, testTruck.Status())
	require.NotNil(t, testDriver.AssignedTruck())
	assert.True(t, testDriver.AssignedTruck().IsEqual(testTruck.ID()))
	require.NotNil(t, testTruck.Driver())
	assert.True(t, testTruck.Driver().IsEqual(testDriver.ID()))
	driverRepo.AssertExpectations(t)
	truckRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignTruckCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignTruckCommand{} // not constructed properly

	factory := new(MockPairUoWFactory)
	handler := commands.NewAssignTruckCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignTruckCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignTruckCommandHandler_Handle_DriverNotFound(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()
	cmd, err := commands.NewAssignTruckCommand(driverID, truckID)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockPairUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(nil, errs.NewObjectNotFoundError("driverID", driverID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPairUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignTruckCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	truckRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestAssignTruckCommandHandler_Handle_DriverAlreadyOnDuty(t *testing.T) {
	ctx := t.Context()

	testDriver := newTestDriver(t)
	require.NoError(t, testDriver.AssignTruck(kernel.NewUUID()))
	testTruck := newTestTruck(t)

	cmd, err := commands.NewAssignTruckCommand(testDriver.ID(), testTruck.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockPairUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		truckRepo.On("Get", ctx, testTruck.ID()).Return(testTruck, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPairUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignTruckCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Contains(t, err.Error(), driver.ErrDriverAlreadyOnDuty.Error())
	// The requested truck must stay untouched after the rejection.
	assert.Equal(t, truck.Available, testTruck.Status())
	assert.Nil(t, testTruck.Driver())
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	truckRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignTruckCommandHandler_Handle_TruckInMaintenance(t *testing.T) {
	ctx := t.Context()

	testDriver := newTestDriver(t)
	testTruck := newTestTruck(t)
	require.NoError(t, testTruck.ChangeStatus(truck.Maintenance))

	cmd, err := commands.NewAssignTruckCommand(testDriver.ID(), testTruck.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockPairUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		truckRepo.On("Get", ctx, testTruck.ID()).Return(testTruck, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPairUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignTruckCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Contains(t, err.Error(), truck.ErrTruckNotAvailable.Error())
	assert.Equal(t, driver.Available, testDriver.Status())
	assert.Nil(t, testDriver.AssignedTruck())
}

func TestAssignTruckCommandHandler_Handle_UpdateDriverError(t *testing.T) {
	ctx := t.Context()

	testDriver := newTestDriver(t)
	testTruck := newTestTruck(t)

	cmd, err := commands.NewAssignTruckCommand(testDriver.ID(), testTruck.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockPairUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		truckRepo.On("Get", ctx, testTruck.ID()).Return(testTruck, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).
			Return(errors.New("update error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPairUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignTruckCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
