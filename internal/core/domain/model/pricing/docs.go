// Package pricing contains the reference-data aggregates of the pricing
// catalog: cities with their geo centers, the pricing zones belonging to a
// city, the distance tiers belonging to a zone, and the vehicle types whose
// multipliers scale a tier's base price.
//
// All of this is immutable configuration data. It is loaded from the catalog
// repository and consumed by the pricing engine; nothing in this package has
// side effects.
package pricing
