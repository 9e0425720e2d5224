// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/shipment"
)

// ErrConcurrentModification is returned by status-guarded updates when the
// stored row no longer carries the expected status. It signals a lost race
// (another actor committed first) and maps to a conflict at the HTTP
// boundary.
var ErrConcurrentModification = errors.New("aggregate was modified concurrently")

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The shipment must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// UpdateInStatus persists the aggregate only if the stored row still
	// carries the expected status. The write is a single conditional
	// UPDATE guarded on (id, status); when it touches no rows the method
	// returns ErrConcurrentModification and leaves storage unchanged.
	//
	// This is the compare-and-swap backing the accept race: N drivers
	// accepting a pending shipment all issue the same guarded update, and
	// exactly one of them can flip the pending row.
	UpdateInStatus(ctx context.Context, aggregate *shipment.Shipment, expected shipment.Status) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such shipment exists.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAllInStatus retrieves every shipment currently in the given status,
	// oldest first. Used by the rebroadcast job to find stalled pending
	// shipments.
	GetAllInStatus(ctx context.Context, status shipment.Status) ([]*shipment.Shipment, error)

	// GetAllForCustomer retrieves every shipment owned by the customer,
	// newest first.
	GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*shipment.Shipment, error)

	// GetAllForDriver retrieves every shipment assigned to the driver,
	// newest first.
	GetAllForDriver(ctx context.Context, driverID kernel.UUID) ([]*shipment.Shipment, error)
}
