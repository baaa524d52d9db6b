// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the fleet logistics system.
// It implements complex business workflows that don't naturally belong to a
// single aggregate root.
//
// The package includes:
//   - FleetAssignment: A domain service coordinating driver-truck pairing,
//     shipment dispatch and delivery completion
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
