// Package shipment contains the Shipment aggregate and its lifecycle
// state machine.
//
// A shipment starts pending, gets accepted by exactly one driver, moves
// through pickup and transit to delivery, or gets cancelled by the owning
// customer at any point before delivery. All transitions are enforced by
// the Status state machine; the aggregate itself guards who may perform
// which transition.
package shipment
