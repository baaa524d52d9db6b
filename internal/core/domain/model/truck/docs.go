// Package truck provides domain entities and business logic for fleet truck
// management. It implements the Truck aggregate root with its operational
// state machine and the truck's half of the exclusive driver-truck assignment.
//
// The package includes:
//   - Truck: The aggregate root that manages truck identity, operational
//     status, the holding-driver slot and mileage
//   - Status: A value object implementing the operational state machine
//
// Key business rules:
//   - Trucks must have a valid unique identifier, license plate, model and
//     capacity; license plates are unique fleet-wide
//   - A truck is IN_USE if and only if a driver holds it
//   - IN_USE is entered only through driver assignment, never through a bare
//     status update; a truck leaving maintenance must pass through AVAILABLE
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package truck
