package driver

import (
	"fmt"

	"trix/internal/pkg/errs"
)

// Status represents a driver's availability for new shipment assignments.
//
// Transitions driven by the dispatch core:
//
//	Available ──> Busy        (driver wins the accept race)
//	Busy      ──> Available   (assignment cancelled or delivered)
//
// Offline and OnTrip are set by the driver-facing surface outside this core;
// they only matter here because a driver in either state is never eligible.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusOffline means the driver is not accepting work.
	StatusOffline

	// StatusAvailable means the driver can be offered new shipments.
	StatusAvailable

	// StatusBusy means the driver holds an active shipment assignment.
	StatusBusy

	// StatusOnTrip means the driver is occupied outside the dispatch flow.
	StatusOnTrip
)

// getStatusStrings returns the wire representation of every status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusOffline:   "offline",
		StatusAvailable: "available",
		StatusBusy:      "busy",
		StatusOnTrip:    "on_trip",
	}
}

// getValidStatusStrings returns only the statuses valid for a persisted driver.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusOffline:   "offline",
		StatusAvailable: "available",
		StatusBusy:      "busy",
		StatusOnTrip:    "on_trip",
	}
}

// StatusFromString parses the wire representation of a driver status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("driver status",
		fmt.Errorf("%q is not a valid driver status", s))
}

// Validate checks that the status is one of the persisted driver statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("driver status",
			fmt.Errorf("%d is not a valid driver status", s))
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
