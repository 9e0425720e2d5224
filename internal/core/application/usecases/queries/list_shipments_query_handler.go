package queries

import (
	"context"
	"database/sql"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// shipmentColumns is the select list shared by the shipment read queries.
const shipmentColumns = `
		id,
		customer_id,
		driver_id,
		vehicle_type_id,
		origin_lat,
		origin_lng,
		destination_lat,
		destination_lng,
		origin_address,
		destination_address,
		weight_kg,
		distance_km,
		price,
		status,
		created_at`

// ListShipmentsQueryHandler retrieves shipments scoped to the asking actor.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewListShipmentsQueryHandler(db)
//	query, _ := NewListShipmentsQuery(customerID, RoleCustomer)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list shipments: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d shipments\n", len(shipments))
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment listing.
// Requires a GORM database connection for query execution.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the role-scoped listing.
// Customers see the shipments they created, drivers see the shipments
// assigned to them, admins see all. Newest shipments come first.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		rows *sql.Rows
		err  error
	)

	switch query.Role() {
	case RoleCustomer:
		rows, err = h.db.WithContext(ctx).Raw(`
		SELECT`+shipmentColumns+`
		FROM shipments
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.ActorID().Bytes()).Rows()
	case RoleDriver:
		rows, err = h.db.WithContext(ctx).Raw(`
		SELECT`+shipmentColumns+`
		FROM shipments
		WHERE driver_id = ?
		ORDER BY created_at DESC
	`, query.ActorID().Bytes()).Rows()
	default:
		rows, err = h.db.WithContext(ctx).Raw(`
		SELECT` + shipmentColumns + `
		FROM shipments
		ORDER BY created_at DESC
	`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentQueryResponse, 0)

	for rows.Next() {
		resp, scanErr := scanShipmentResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

// scanShipmentResponse converts one shipment row into the read model,
// translating database types to domain types.
func scanShipmentResponse(rows *sql.Rows) (ShipmentQueryResponse, error) {
	var resp ShipmentQueryResponse
	var id, customerID, vehicleTypeID uuid.UUID
	var driverID uuid.NullUUID
	var originLat, originLng, destinationLat, destinationLng float64
	var status int

	err := rows.Scan(
		&id,
		&customerID,
		&driverID,
		&vehicleTypeID,
		&originLat,
		&originLng,
		&destinationLat,
		&destinationLng,
		&resp.OriginAddress,
		&resp.DestinationAddress,
		&resp.WeightKg,
		&resp.DistanceKm,
		&resp.Price,
		&status,
		&resp.CreatedAt,
	)
	if err != nil {
		return ShipmentQueryResponse{}, err
	}

	resp.Status = shipment.Status(status).String()

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ShipmentQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return ShipmentQueryResponse{}, err
	}
	if resp.VehicleTypeID, err = kernel.UUIDFromBytes(vehicleTypeID[:]); err != nil {
		return ShipmentQueryResponse{}, err
	}
	if driverID.Valid {
		d, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return ShipmentQueryResponse{}, idErr
		}
		resp.DriverID = &d
	}

	if resp.Origin, err = kernel.NewGeoPoint(originLat, originLng); err != nil {
		return ShipmentQueryResponse{}, err
	}
	if resp.Destination, err = kernel.NewGeoPoint(destinationLat, destinationLng); err != nil {
		return ShipmentQueryResponse{}, err
	}

	return resp, nil
}
