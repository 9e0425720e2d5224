package shipment

import (
	"errors"
	"fmt"

	"trix/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested status change is
// not allowed from the shipment's current status. The HTTP boundary maps
// this to a conflict response.
var ErrInvalidStatusTransition = errors.New("invalid shipment status transition")

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure
// shipments follow the dispatch workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> PickedUp ──> InTransit ──> Delivered
//	   │            │            │             │
//	   └────────────┴────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no further transitions are allowed.
// The driver-driven progression (Accepted through Delivered) can run in
// loose mode (any forward jump) or strict mode (one step at a time).
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: created, priced, broadcast to
	// eligible drivers, waiting for one to accept.
	StatusPending

	// StatusAccepted means exactly one driver won the accept race and is
	// now assigned to the shipment.
	StatusAccepted

	// StatusPickedUp means the assigned driver collected the cargo at the
	// origin address.
	StatusPickedUp

	// StatusInTransit means the cargo is on its way to the destination.
	StatusInTransit

	// StatusDelivered means the cargo reached the destination.
	// This is a terminal state.
	StatusDelivered

	// StatusCancelled means the owning customer cancelled the shipment
	// before delivery. This is a terminal state.
	StatusCancelled
)

// getStatusStrings returns the wire representation of every status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusPickedUp:  "picked_up",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// getValidStatusStrings returns only the statuses valid for a persisted shipment.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusPickedUp:  "picked_up",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// getProgressionRanks orders the driver-driven lifecycle statuses.
// Cancelled is absent: it is reached through Cancel, never through Advance.
func getProgressionRanks() map[Status]int {
	//nolint:exhaustive // only forward-progression statuses carry a rank
	return map[Status]int{
		StatusAccepted:  1,
		StatusPickedUp:  2,
		StatusInTransit: 3,
		StatusDelivered: 4,
	}
}

// StatusFromString parses the wire representation of a shipment status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("shipment status",
		fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks that the status is one of the persisted shipment statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipment status",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String implements fmt.Stringer using the wire representation.
// Returns "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted (a driver won the accept race)
//
// Any other starting status returns ErrInvalidStatusTransition: once one
// driver has accepted, every later accept attempt must fail.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, fmt.Errorf("%w: cannot accept a %s shipment",
			ErrInvalidStatusTransition, s)
	}

	return StatusAccepted, nil
}

// Advance transitions the status forward along the delivery progression
// (Accepted -> PickedUp -> InTransit -> Delivered).
//
// In loose mode (strict=false) any forward jump is allowed, e.g. a driver
// may report InTransit directly from Accepted. In strict mode the next
// status must be exactly one step ahead. Backward moves, repeats, and
// moves out of terminal or pending statuses return ErrInvalidStatusTransition.
func (s Status) Advance(next Status, strict bool) (Status, error) {
	ranks := getProgressionRanks()

	from, ok := ranks[s]
	if !ok {
		return StatusUnknown, fmt.Errorf("%w: cannot advance a %s shipment",
			ErrInvalidStatusTransition, s)
	}

	to, ok := ranks[next]
	if !ok {
		return StatusUnknown, fmt.Errorf("%w: %s is not a progression status",
			ErrInvalidStatusTransition, next)
	}

	if to <= from {
		return StatusUnknown, fmt.Errorf("%w: cannot move from %s back to %s",
			ErrInvalidStatusTransition, s, next)
	}

	if strict && to != from+1 {
		return StatusUnknown, fmt.Errorf("%w: cannot skip from %s to %s",
			ErrInvalidStatusTransition, s, next)
	}

	return next, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from Pending, Accepted, PickedUp and InTransit. A delivered
// shipment cannot be cancelled, and cancelling twice fails, which makes
// repeated cancellation attempts visible as conflicts rather than silent
// no-ops.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return StatusUnknown, fmt.Errorf("%w: cannot cancel a %s shipment",
			ErrInvalidStatusTransition, s)
	}

	if _, ok := getValidStatusStrings()[s]; !ok {
		return StatusUnknown, fmt.Errorf("%w: cannot cancel a %s shipment",
			ErrInvalidStatusTransition, s)
	}

	return StatusCancelled, nil
}
