// Package warehouse provides domain entities and business logic for storage
// facility management in the fleet logistics system. It implements the
// Warehouse aggregate root with its capacity ledger.
//
// The package includes:
//   - Warehouse: The aggregate root that manages warehouse identity,
//     operational status and the inventory counters
//   - Status: A value object for the OPERATIONAL/CLOSED operational state
//
// Key business rules:
//   - Warehouses must have a valid unique identifier, name, location and a
//     positive capacity; names are unique system-wide
//   - The ledger invariant 0 <= currentInventory <= capacity holds after
//     every accepted operation; a rejected operation mutates nothing
//   - Closed warehouses reject all inventory movements
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package warehouse
