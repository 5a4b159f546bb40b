// Package services provides domain services that orchestrate business operations
// across the meal tracking domain. It implements workflows that don't naturally
// belong to a single aggregate root.
//
// The package includes:
//   - MovementSimulator: A domain service producing simulated live-tracking
//     updates for orders in the delivery phase
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
