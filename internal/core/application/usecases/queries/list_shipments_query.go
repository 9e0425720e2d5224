package queries

import (
	"errors"
	"time"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery requests the shipments visible to an actor. The role
// determines the scope; the actor ID is who is asking.
type ListShipmentsQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	role    Role

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a role-scoped shipment listing request.
func NewListShipmentsQuery(actorID kernel.UUID, role Role) (ListShipmentsQuery, error) {
	q := ListShipmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActorID(actorID),
		q.setRole(role),
	); err != nil {
		return ListShipmentsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// ActorID returns who is asking.
func (q ListShipmentsQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Role returns the actor's role.
func (q ListShipmentsQuery) Role() Role {
	return q.role
}

func (q *ListShipmentsQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	q.actorID = actorID
	return nil
}

func (q *ListShipmentsQuery) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	q.role = role
	return nil
}

// ShipmentQueryResponse is the shipment read model returned by the listing
// and get-by-id queries.
type ShipmentQueryResponse struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	DriverID           *kernel.UUID
	VehicleTypeID      kernel.UUID
	Origin             kernel.GeoPoint
	Destination        kernel.GeoPoint
	OriginAddress      string
	DestinationAddress string
	WeightKg           float64
	DistanceKm         float64
	Price              float64
	Status             string
	CreatedAt          time.Time
}
