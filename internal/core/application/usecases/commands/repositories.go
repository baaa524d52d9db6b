// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/zaidkabb/aerologix-backend/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// TruckRepoFactory provides access to the truck repository within a transaction.
	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// WarehouseRepoFactory provides access to the warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// TruckUoW manages transactions for truck-only operations.
	TruckUoW interface {
		TxManager
		TruckRepoFactory
	}

	// TruckUoWFactory creates new truck unit of work instances.
	TruckUoWFactory interface {
		Create() TruckUoW
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// WarehouseUoW manages transactions for warehouse-only operations.
	// Inventory movements run inside it so the capacity ledger check and the
	// counter update commit atomically.
	WarehouseUoW interface {
		TxManager
		WarehouseRepoFactory
	}

	// WarehouseUoWFactory creates new warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// PairUoW manages transactions across the driver and truck aggregates.
	// Used for the two halves of the driver-truck assignment.
	PairUoW interface {
		TxManager
		DriverRepoFactory
		TruckRepoFactory
	}

	// PairUoWFactory creates new driver-truck unit of work instances.
	PairUoWFactory interface {
		Create() PairUoW
	}

	// IntakeUoW manages transactions across the shipment and warehouse
	// aggregates. Used at shipment intake, where the holding warehouse is
	// verified in the same transaction that persists the shipment.
	IntakeUoW interface {
		TxManager
		ShipmentRepoFactory
		WarehouseRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// FleetUoW manages transactions across the driver, truck and shipment
	// aggregates. Used for dispatch, delivery and unassignment, where all
	// three must be observed and persisted atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   driverRepo := uow.DriverRepository()
	//   truckRepo := uow.TruckRepository()
	//   shipmentRepo := uow.ShipmentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	FleetUoW interface {
		TxManager
		DriverRepoFactory
		TruckRepoFactory
		ShipmentRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances for
	// cross-aggregate operations.
	FleetUoWFactory interface {
		Create() FleetUoW
	}
)
