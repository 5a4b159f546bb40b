// Package order provides domain entities and business logic for tracking meal
// orders through their delivery lifecycle. It implements the Order aggregate
// root with its append-only update history and state transitions.
//
// The package includes:
//   - Order: The aggregate root holding items, totals, destination, driver, and history
//   - Status: A state machine over the fixed nine-step progression plus Cancelled
//   - Update: An immutable, timestamped record of a status change or location ping
//   - Item, Address, Driver, TrackingPoint: Supporting value objects
//   - FormatETA: The canonical rendering of the fixed delivery estimate
//
// Key business rules:
//   - Orders are created in Pending status with a seeded first update
//   - Status only moves forward along the fixed sequence, or to Cancelled
//   - The update history is append-only and never empty
//   - Delivered and Cancelled are terminal: all further mutations are silent no-ops
//   - The OutForDelivery transition, and only that transition, carries a
//     minutes-to-delivery estimate
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
