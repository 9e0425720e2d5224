package queries

import (
	"errors"
	"fmt"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)

	// ErrShipmentNotVisible is returned when the shipment exists but the
	// asking actor is neither its customer, its assigned driver, nor an
	// admin.
	ErrShipmentNotVisible = errors.New("shipment is not visible to this actor")
)

// GetShipmentQuery requests one shipment by ID on behalf of an actor.
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID
	role       Role

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a get-by-id request scoped to an actor.
func NewGetShipmentQuery(
	shipmentID kernel.UUID,
	actorID kernel.UUID,
	role Role,
) (GetShipmentQuery, error) {
	q := GetShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setShipmentID(shipmentID),
		q.setActorID(actorID),
		q.setRole(role),
	); err != nil {
		return GetShipmentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment's identity.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// ActorID returns who is asking.
func (q GetShipmentQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Role returns the actor's role.
func (q GetShipmentQuery) Role() Role {
	return q.role
}

func (q *GetShipmentQuery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return fmt.Errorf("shipmentId: %w", err)
	}
	q.shipmentID = shipmentID
	return nil
}

func (q *GetShipmentQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return fmt.Errorf("actorId: %w", err)
	}
	q.actorID = actorID
	return nil
}

func (q *GetShipmentQuery) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	q.role = role
	return nil
}
