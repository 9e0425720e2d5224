package queries

import (
	"context"

	"trix/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves a single shipment by ID, enforcing
// actor visibility: a customer may read only their own shipments, a driver
// only the ones assigned to them, an admin any shipment.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment lookups.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle fetches the shipment and checks the actor may see it.
//
// Returns an errs.ObjectNotFoundError when the shipment does not exist and
// ErrShipmentNotVisible when it exists outside the actor's scope.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (ShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+shipmentColumns+`
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return ShipmentQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentQueryResponse{}, err
		}

		return ShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
	}

	resp, err := scanShipmentResponse(rows)
	if err != nil {
		return ShipmentQueryResponse{}, err
	}

	if err = checkVisibility(resp, query); err != nil {
		return ShipmentQueryResponse{}, err
	}

	return resp, nil
}

func checkVisibility(resp ShipmentQueryResponse, query GetShipmentQuery) error {
	switch query.Role() {
	case RoleAdmin:
		return nil
	case RoleCustomer:
		if resp.CustomerID.IsEqual(query.ActorID()) {
			return nil
		}
	case RoleDriver:
		if resp.DriverID != nil && resp.DriverID.IsEqual(query.ActorID()) {
			return nil
		}
	}

	return ErrShipmentNotVisible
}
