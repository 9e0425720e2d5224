// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - GeoPricingEngine: A pure domain service pricing shipments from coordinates
//   - Dispatcher: A domain service selecting the drivers a shipment is offered to
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
