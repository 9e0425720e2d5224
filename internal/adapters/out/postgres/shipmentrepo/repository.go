package shipmentrepo

import (
	"context"
	"errors"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/shipment"
	"trix/internal/core/ports"
	"trix/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Updates(mutableColumns(dto))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateInStatus saves the shipment only if the stored row still carries the
// expected status. The status guard turns the write into a compare-and-swap:
// when several transactions race on the same pending shipment, the database
// lets exactly one of them touch the row.
func (r *GormShipmentRepository) UpdateInStatus(
	ctx context.Context,
	aggregate *shipment.Shipment,
	expected shipment.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expected.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(mutableColumns(dto))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrConcurrentModification
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all shipments in the given status, oldest first.
func (r *GormShipmentRepository) GetAllInStatus(
	ctx context.Context,
	status shipment.Status,
) ([]*shipment.Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status = ?", int(status)).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllForCustomer retrieves all shipments owned by the customer, newest first.
func (r *GormShipmentRepository) GetAllForCustomer(
	ctx context.Context,
	customerID kernel.UUID,
) ([]*shipment.Shipment, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllForDriver retrieves all shipments assigned to the driver, newest first.
func (r *GormShipmentRepository) GetAllForDriver(
	ctx context.Context,
	driverID kernel.UUID,
) ([]*shipment.Shipment, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "driver_id = ?", driverID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []ShipmentDTO) ([]*shipment.Shipment, error) {
	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}
