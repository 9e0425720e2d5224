package ports

import (
	"context"

	"trix/internal/core/domain/model/driver"
	"trix/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// Drivers are stored with their registered vehicle.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// UpdateInStatus persists the aggregate only if the stored row still
	// carries the expected status. Returns ErrConcurrentModification when
	// the guard fails. Together with ShipmentRepository.UpdateInStatus it
	// makes winning the accept race atomic: the driver row flips from
	// available to busy in the same transaction that assigns the shipment.
	UpdateInStatus(ctx context.Context, aggregate *driver.Driver, expected driver.Status) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such driver exists.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllAvailable retrieves every verified driver in available status,
	// with their vehicle loaded. This is the candidate set the dispatcher
	// filters for a new shipment broadcast.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)
}
