// Package driver contains the Driver aggregate: a verified courier with an
// availability status and at most one registered vehicle.
//
// A driver's status and a shipment's assignment are two halves of one
// invariant: every code path that links a driver to a shipment moves the
// driver to Busy in the same atomic unit, and every path that unlinks them
// releases the driver back to Available. The aggregate exposes the status
// transitions; the command layer is responsible for the atomicity.
package driver
