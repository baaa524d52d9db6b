// Package shipment provides domain entities and business logic for shipment
// tracking in the fleet logistics system. It implements the Shipment
// aggregate root with its lifecycle state machine, the tracking number value
// object and the append-only timeline ledger.
//
// The package includes:
//   - Shipment: The aggregate root that manages shipment identity, routing,
//     lifecycle status and the carrying driver/truck references
//   - TrackingNumber: A value object for the immutable public tracking code
//   - TimelineEntry: An immutable record in the shipment's audit ledger
//
// Key business rules:
//   - Status only moves forward along the canonical chain; DELIVERED and
//     CANCELLED are terminal and permit no further transitions
//   - Delivery requires the shipment to have reached IN_TRANSIT
//   - Exactly one timeline entry is written per accepted status change, plus
//     one for creation; entries are never edited or removed
//   - Driver and truck references are set and cleared together
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
