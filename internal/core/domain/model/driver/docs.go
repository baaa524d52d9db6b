// Package driver provides domain entities and business logic for driver
// management in the fleet logistics system. It implements the Driver
// aggregate root with its duty-status state machine and the driver's half
// of the exclusive driver-truck assignment.
//
// The package includes:
//   - Driver: The aggregate root that manages driver identity, duty status,
//     the assigned-truck slot and the delivery counter
//   - Status: A value object implementing the duty-status state machine
//
// Key business rules:
//   - Drivers must have a valid unique identifier, name, email, phone and
//     license number; emails and license numbers are unique fleet-wide
//   - A driver is ON_DUTY if and only if they hold a truck
//   - The assigned-truck slot is written only through AssignTruck and
//     ReleaseTruck, never through a bare status update
//   - Status changes consult a fixed transition table; a rejected change
//     mutates nothing
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package driver
